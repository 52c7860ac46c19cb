package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto o servicio del catálogo.
type CreateProductRequest struct {
	Nombre            string          `json:"nombre"`
	Descripcion       string          `json:"descripcion"`
	Precio            decimal.Decimal `json:"precio"`
	EsServicio        bool            `json:"es_servicio"`
	ConsumeMateriales bool            `json:"consume_materiales"`
}

// UpdateProductRequest edición de producto; campos nil no se tocan.
type UpdateProductRequest struct {
	Nombre            *string          `json:"nombre"`
	Descripcion       *string          `json:"descripcion"`
	Precio            *decimal.Decimal `json:"precio"`
	Activo            *bool            `json:"activo"`
	ConsumeMateriales *bool            `json:"consume_materiales"`
}

// ProductMaterialDTO requerimiento de material por unidad de producto.
type ProductMaterialDTO struct {
	MaterialID        string `json:"material_id"`
	CantidadPorUnidad int    `json:"cantidad_por_unidad"`
}

// SetProductMaterialesRequest reemplaza la lista de materiales del producto.
type SetProductMaterialesRequest struct {
	Materiales []ProductMaterialDTO `json:"materiales"`
}

// ProductResponse proyección de producto del catálogo.
type ProductResponse struct {
	ID                string               `json:"id"`
	Nombre            string               `json:"nombre"`
	Descripcion       string               `json:"descripcion"`
	Precio            decimal.Decimal      `json:"precio"`
	EsServicio        bool                 `json:"es_servicio"`
	ConsumeMateriales bool                 `json:"consume_materiales"`
	Activo            bool                 `json:"activo"`
	Materiales        []ProductMaterialDTO `json:"materiales,omitempty"`
}

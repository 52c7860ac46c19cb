package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o servicio del catálogo del taller.
// Si ConsumeMateriales es true, ProductMaterial define cuánto material
// requiere cada unidad fabricada.
type Product struct {
	ID                string
	Nombre            string
	Descripcion       string
	Precio            decimal.Decimal
	EsServicio        bool
	ConsumeMateriales bool
	Activo            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ProductMaterial asocia un producto con un material y la cantidad requerida
// por unidad fabricada (lista de materiales del producto).
type ProductMaterial struct {
	ProductID         string
	MaterialID        string
	CantidadPorUnidad int // >= 1
}

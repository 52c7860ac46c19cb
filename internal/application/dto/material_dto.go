package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest alta de material.
type CreateMaterialRequest struct {
	Nombre         string          `json:"nombre"`
	Unidad         string          `json:"unidad"` // kg, g, m, cm, l, ml, unidad
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	StockInicial   int             `json:"stock_inicial"`
	StockMinimo    int             `json:"stock_minimo"`
	Proveedor      string          `json:"proveedor"`
}

// UpdateMaterialRequest edición de material; campos nil no se tocan.
// El stock no se edita aquí: cambia solo vía movimientos.
type UpdateMaterialRequest struct {
	Nombre         *string          `json:"nombre"`
	Unidad         *string          `json:"unidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
	StockMinimo    *int             `json:"stock_minimo"`
	Proveedor      *string          `json:"proveedor"`
	Activo         *bool            `json:"activo"`
}

// MaterialEntryRequest entrada de material (compra/reposición) o ajuste manual.
type MaterialEntryRequest struct {
	Tipo     string `json:"tipo"`     // entrada | ajuste
	Cantidad int    `json:"cantidad"` // ajuste admite negativos
	Motivo   string `json:"motivo"`
}

// MaterialResponse proyección de material con su nivel derivado.
type MaterialResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Unidad         string          `json:"unidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Stock          int             `json:"stock"`
	StockMinimo    int             `json:"stock_minimo"`
	Nivel          string          `json:"nivel"` // critical | low | medium | normal
	Proveedor      string          `json:"proveedor"`
	Activo         bool            `json:"activo"`
}

// MaterialMovementResponse fila del libro de movimientos.
type MaterialMovementResponse struct {
	ID            string    `json:"id"`
	MaterialID    string    `json:"material_id"`
	Tipo          string    `json:"tipo"`
	Cantidad      int       `json:"cantidad"`
	StockAnterior int       `json:"stock_anterior"`
	StockNuevo    int       `json:"stock_nuevo"`
	OperationID   string    `json:"operation_id,omitempty"`
	Fecha         time.Time `json:"fecha"`
}

// StockAlertsResponse materiales agrupados por nivel de stock.
type StockAlertsResponse struct {
	Critical []MaterialResponse `json:"critical"`
	Low      []MaterialResponse `json:"low"`
	Medium   []MaterialResponse `json:"medium"`
	Normal   []MaterialResponse `json:"normal"`
}

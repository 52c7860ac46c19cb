package entity

import "time"

// Tipos de movimiento de material.
const (
	MovimientoEntrada      = "entrada"      // compra o reposición
	MovimientoConsumo      = "consumo"      // descuento al iniciar una operación
	MovimientoRestauracion = "restauracion" // devolución al anular una operación
	MovimientoAjuste       = "ajuste"       // corrección manual de inventario
)

// MaterialMovement registra cada cambio de stock de un material.
// Cantidad es positiva en entradas/restauraciones y negativa en consumos.
type MaterialMovement struct {
	ID            string
	MaterialID    string
	Tipo          string
	Cantidad      int
	StockAnterior int
	StockNuevo    int
	OperationID   string // vacío si no está ligado a una operación
	UserID        string
	Fecha         time.Time
}

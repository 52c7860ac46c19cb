package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationLineRequest línea de una operación.
type OperationLineRequest struct {
	ProductID string `json:"product_id"`
	Cantidad  int    `json:"cantidad"`
	Detalle   string `json:"detalle"`
}

// CreateOperationRequest alta de operación (orden de trabajo).
type CreateOperationRequest struct {
	ClienteID            string                 `json:"cliente_id"`
	Lines                []OperationLineRequest `json:"lineas"`
	Descripcion          string                 `json:"descripcion"`
	Costo                *decimal.Decimal       `json:"costo"`
	AbonoInicial         *decimal.Decimal       `json:"abono_inicial"`
	FechaEntregaEstimada *time.Time             `json:"fecha_entrega_estimada"`
	EstadoInicial        string                 `json:"estado_inicial"` // vacío = pendiente
}

// UpdateOperationRequest edición de costo/descripcion/fecha/líneas.
type UpdateOperationRequest struct {
	Costo                *decimal.Decimal       `json:"costo"`
	Descripcion          *string                `json:"descripcion"`
	FechaEntregaEstimada *time.Time             `json:"fecha_entrega_estimada"`
	Lines                []OperationLineRequest `json:"lineas"` // nil = no tocar
}

// TransitionRequest cambio de estado.
type TransitionRequest struct {
	Estado string `json:"estado"`
}

// DepositRequest abono a una operación.
type DepositRequest struct {
	Monto decimal.Decimal `json:"monto"`
}

// OperationListFilter filtros de listado.
type OperationListFilter struct {
	Estado    string     `query:"estado"`
	ClienteID string     `query:"cliente_id"`
	Desde     *time.Time `query:"desde"`
	Hasta     *time.Time `query:"hasta"`
	PageRequest
}

// OperationLineResponse línea con producto referenciado.
type OperationLineResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Cantidad  int    `json:"cantidad"`
	Detalle   string `json:"detalle"`
}

// AbonoResponse abono registrado.
type AbonoResponse struct {
	ID    string          `json:"id"`
	Monto decimal.Decimal `json:"monto"`
	Fecha time.Time       `json:"fecha"`
}

// OperationResponse proyección de operación con líneas y abonos.
type OperationResponse struct {
	ID                   string                  `json:"id"`
	ClienteID            string                  `json:"cliente_id"`
	Estado               string                  `json:"estado"`
	Costo                *decimal.Decimal        `json:"costo"`
	Abonado              decimal.Decimal         `json:"abonado"`
	Saldo                *decimal.Decimal        `json:"saldo,omitempty"` // costo - abonado, si hay costo
	Descripcion          string                  `json:"descripcion"`
	FechaEntregaEstimada *time.Time              `json:"fecha_entrega_estimada"`
	FechaPrimerAbono     *time.Time              `json:"fecha_primer_abono"`
	StockComprometido    bool                    `json:"stock_comprometido"`
	Lines                []OperationLineResponse `json:"lineas"`
	Abonos               []AbonoResponse         `json:"abonos,omitempty"`
	CreatedAt            time.Time               `json:"created_at"`
}

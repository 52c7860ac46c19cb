package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operation representa una orden de trabajo del taller: liga un cliente con
// una o más líneas de producto, acumula abonos contra un costo cotizado y
// avanza por el ciclo de vida de fabricación. Nunca se elimina físicamente;
// la anulación es un estado terminal.
//
// Los estados y el grafo de transiciones viven en internal/domain/operation.
type Operation struct {
	ID                   string
	ClienteID            string
	UserID               string // usuario del taller que registró la operación
	Estado               string
	Costo                *decimal.Decimal // nil mientras no se cotiza
	Abonado              decimal.Decimal  // acumulado de abonos, >= 0
	Descripcion          string
	FechaEntregaEstimada *time.Time
	FechaPrimerAbono     *time.Time // se fija una sola vez, en el primer abono
	StockComprometido    bool       // true tras descontar materiales (entrada a en_proceso)
	Lines                []OperationLine
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// OperationLine asocia la operación con un producto del catálogo, la cantidad
// encargada y especificaciones propias de la línea.
type OperationLine struct {
	ID          string
	OperationID string
	ProductID   string
	Cantidad    int // >= 1
	Detalle     string
}

// Abono registra cada pago parcial aceptado, además del acumulado Abonado
// que lleva la cabecera.
type Abono struct {
	ID          string
	OperationID string
	Monto       decimal.Decimal
	Fecha       time.Time
	UserID      string
}

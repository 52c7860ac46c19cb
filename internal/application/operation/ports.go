package operation

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jfcastano/taller-api/internal/domain/entity"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre el cambio de
// estado de la operación, los descuentos de stock y el libro de movimientos:
// cualquier error de fn revierte todo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		opRepo repository.OperationRepository,
		materialRepo repository.MaterialRepository,
		movRepo repository.MaterialMovementRepository,
		auditRepo repository.AuditRepository,
	) error) error
}

// ReceiptLine línea del recibo en PDF (producto resuelto a nombre y precio).
type ReceiptLine struct {
	Descripcion    string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// ReceiptPDFGenerator genera el comprobante en PDF de una operación
// (orden de trabajo con su estado de cuenta).
type ReceiptPDFGenerator interface {
	GenerateReceipt(ctx context.Context, op *entity.Operation, cliente *entity.Cliente, lines []ReceiptLine) ([]byte, error)
}

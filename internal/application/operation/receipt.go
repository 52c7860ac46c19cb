package operation

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jfcastano/taller-api/internal/domain"
)

// Receipt genera el comprobante en PDF de la operación: cabecera, líneas con
// precios del catálogo y estado de cuenta (costo, abonado, saldo).
func (uc *UseCase) Receipt(ctx context.Context, operationID string, gen ReceiptPDFGenerator) ([]byte, error) {
	op, err := uc.opRepo.GetByID(operationID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	cliente, err := uc.clienteRepo.GetByID(op.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrInvalidReference
	}

	lines := make([]ReceiptLine, 0, len(op.Lines))
	for _, l := range op.Lines {
		product, err := uc.productRepo.GetByID(l.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrInvalidReference
		}
		cantidad := decimal.NewFromInt(int64(l.Cantidad))
		lines = append(lines, ReceiptLine{
			Descripcion:    product.Nombre,
			Cantidad:       l.Cantidad,
			PrecioUnitario: product.Precio,
			Subtotal:       product.Precio.Mul(cantidad),
		})
	}
	return gen.GenerateReceipt(ctx, op, cliente, lines)
}

package operation

import (
	"github.com/shopspring/decimal"

	"github.com/jfcastano/taller-api/internal/domain"
)

// ValidateDeposit aplica las reglas de acumulación de abonos: el monto debe
// ser positivo y, si el costo es conocido, el acumulado nunca lo supera.
// Se verifica antes de cualquier escritura de persistencia.
func ValidateDeposit(costo *decimal.Decimal, abonado, monto decimal.Decimal) error {
	if monto.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if costo != nil && abonado.Add(monto).GreaterThan(*costo) {
		return domain.ErrOverPayment
	}
	return nil
}

// ValidateCost valida un costo cotizado nuevo: no negativo y nunca por debajo
// de lo ya abonado (el invariante abonado <= costo debe sostenerse también al
// editar la cotización).
func ValidateCost(costo decimal.Decimal, abonado decimal.Decimal) error {
	if costo.LessThan(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if abonado.GreaterThan(costo) {
		return domain.ErrInvalidAmount
	}
	return nil
}

// CanMarkPaid verifica que la operación pueda pasar a pagada: costo conocido
// y abonado >= costo.
func CanMarkPaid(costo *decimal.Decimal, abonado decimal.Decimal) error {
	if costo == nil || abonado.LessThan(*costo) {
		return domain.ErrPaymentIncomplete
	}
	return nil
}

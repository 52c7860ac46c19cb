package operation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/operation"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Acumulación de abonos
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateDeposit_AbonoValido(t *testing.T) {
	assert.NoError(t, operation.ValidateDeposit(decPtr(100_000), dec(0), dec(30_000)))
	assert.NoError(t, operation.ValidateDeposit(decPtr(100_000), dec(70_000), dec(30_000)),
		"completar exactamente el costo debe aceptarse")
}

func TestValidateDeposit_MontoNoPositivo(t *testing.T) {
	assert.ErrorIs(t, operation.ValidateDeposit(decPtr(100_000), dec(0), dec(0)), domain.ErrInvalidAmount)
	assert.ErrorIs(t, operation.ValidateDeposit(decPtr(100_000), dec(0), dec(-5_000)), domain.ErrInvalidAmount)
}

func TestValidateDeposit_SobrepagoRechazado(t *testing.T) {
	err := operation.ValidateDeposit(decPtr(100_000), dec(80_000), dec(30_000))
	assert.ErrorIs(t, err, domain.ErrOverPayment,
		"80.000 + 30.000 supera el costo de 100.000")
}

func TestValidateDeposit_SinCostoCotizadoAcepta(t *testing.T) {
	// Sin cotización el tope no existe todavía; el costo posterior deberá
	// cubrir lo abonado (ValidateCost).
	assert.NoError(t, operation.ValidateDeposit(nil, dec(0), dec(500_000)))
}

func TestValidateDeposit_CentavosEnElBorde(t *testing.T) {
	costo := decimal.RequireFromString("100000.50")
	assert.NoError(t, operation.ValidateDeposit(&costo, dec(100_000), decimal.RequireFromString("0.50")))
	assert.ErrorIs(t,
		operation.ValidateDeposit(&costo, dec(100_000), decimal.RequireFromString("0.51")),
		domain.ErrOverPayment)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cotización
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateCost(t *testing.T) {
	assert.NoError(t, operation.ValidateCost(dec(100_000), dec(0)))
	assert.NoError(t, operation.ValidateCost(dec(100_000), dec(100_000)))
	assert.ErrorIs(t, operation.ValidateCost(dec(-1), dec(0)), domain.ErrInvalidAmount)
	assert.ErrorIs(t, operation.ValidateCost(dec(50_000), dec(80_000)), domain.ErrInvalidAmount,
		"el costo nunca puede quedar por debajo de lo ya abonado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Paso a pagada
// ──────────────────────────────────────────────────────────────────────────────

func TestCanMarkPaid(t *testing.T) {
	assert.NoError(t, operation.CanMarkPaid(decPtr(100_000), dec(100_000)))
	assert.ErrorIs(t, operation.CanMarkPaid(decPtr(100_000), dec(99_999)), domain.ErrPaymentIncomplete)
	assert.ErrorIs(t, operation.CanMarkPaid(nil, dec(100_000)), domain.ErrPaymentIncomplete,
		"sin costo cotizado no hay forma de declarar pagada la operación")
}

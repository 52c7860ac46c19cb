package material_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/entity"
	"github.com/jfcastano/taller-api/internal/domain/material"
)

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación de nivel de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify(t *testing.T) {
	casos := []struct {
		stock, minimo int
		esperado      string
	}{
		{0, 10, material.NivelCritico},
		{-1, 10, material.NivelCritico},
		{1, 10, material.NivelBajo},
		{10, 10, material.NivelBajo},
		{11, 10, material.NivelMedio},
		{20, 10, material.NivelMedio},
		{21, 10, material.NivelNormal},
		{100, 10, material.NivelNormal},
		{0, 0, material.NivelCritico},
		{1, 0, material.NivelNormal}, // sin mínimo definido, cualquier stock positivo es normal
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, material.Classify(c.stock, c.minimo),
			"stock=%d minimo=%d", c.stock, c.minimo)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Plan de reserva todo-o-nada
// ──────────────────────────────────────────────────────────────────────────────

func mat(id string, stock int) *entity.Material {
	return &entity.Material{ID: id, Nombre: "m-" + id, Stock: stock}
}

func TestReservationPlan_AcumulaEntreLineas(t *testing.T) {
	p := material.NewReservationPlan()
	p.Add("mad-01", 5)
	p.Add("mad-01", 3)
	p.Add("tor-02", 12)

	assert.Equal(t, 8, p.Required("mad-01"))
	assert.Equal(t, 12, p.Required("tor-02"))
	assert.False(t, p.Empty())
}

func TestReservationPlan_IgnoraCantidadesNoPositivas(t *testing.T) {
	p := material.NewReservationPlan()
	p.Add("mad-01", 0)
	p.Add("mad-01", -4)
	assert.True(t, p.Empty())
}

func TestReservationPlan_MaterialIDsOrdenAscendente(t *testing.T) {
	p := material.NewReservationPlan()
	p.Add("zzz", 1)
	p.Add("aaa", 1)
	p.Add("mmm", 1)
	assert.Equal(t, []string{"aaa", "mmm", "zzz"}, p.MaterialIDs(),
		"el orden fijo de bloqueo evita interbloqueos")
}

func TestReservationPlan_VerifySuficiente(t *testing.T) {
	p := material.NewReservationPlan()
	p.Add("mad-01", 5)
	p.Add("tor-02", 20)

	err := p.Verify(map[string]*entity.Material{
		"mad-01": mat("mad-01", 10),
		"tor-02": mat("tor-02", 20),
	})
	assert.NoError(t, err)
}

func TestReservationPlan_VerifyInsuficiente(t *testing.T) {
	p := material.NewReservationPlan()
	p.Add("mad-01", 5)
	p.Add("tor-02", 20)

	err := p.Verify(map[string]*entity.Material{
		"mad-01": mat("mad-01", 10),
		"tor-02": mat("tor-02", 5), // faltan 15
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestReservationPlan_VerifyMaterialDesconocido(t *testing.T) {
	p := material.NewReservationPlan()
	p.Add("mad-01", 5)

	err := p.Verify(map[string]*entity.Material{})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestReservationPlan_VerifyNoMuta(t *testing.T) {
	p := material.NewReservationPlan()
	p.Add("mad-01", 5)

	m := mat("mad-01", 10)
	_ = p.Verify(map[string]*entity.Material{"mad-01": m})
	assert.Equal(t, 10, m.Stock, "Verify solo comprueba, nunca descuenta")
}

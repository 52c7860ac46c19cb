// Package material contiene la lógica pura de inventario de materias primas:
// clasificación de nivel de stock y el plan de reserva multi-material que
// garantiza descuentos todo-o-nada.
package material

import (
	"sort"

	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/entity"
)

// Niveles de stock derivados en lectura.
const (
	NivelCritico = "critical"
	NivelBajo    = "low"
	NivelMedio   = "medium"
	NivelNormal  = "normal"
)

// Classify deriva el nivel de stock de un material: crítico en cero, bajo
// hasta el mínimo, medio hasta el doble del mínimo, normal por encima.
// Función pura, sin efectos.
func Classify(stock, stockMinimo int) string {
	switch {
	case stock <= 0:
		return NivelCritico
	case stock <= stockMinimo:
		return NivelBajo
	case stock <= stockMinimo*2:
		return NivelMedio
	default:
		return NivelNormal
	}
}

// ReservationPlan acumula los requerimientos de material de todas las líneas
// de una operación y los valida antes de aplicar cualquier descuento.
// Estrategia en dos fases: primero se verifica la suficiencia de cada
// material, después se aplican todos los descuentos; ante cualquier faltante
// no se aplica ninguno.
type ReservationPlan struct {
	needs map[string]int
}

// NewReservationPlan crea un plan vacío.
func NewReservationPlan() *ReservationPlan {
	return &ReservationPlan{needs: make(map[string]int)}
}

// Add suma cantidad requerida de un material (acumulativo entre líneas).
func (p *ReservationPlan) Add(materialID string, cantidad int) {
	if cantidad <= 0 {
		return
	}
	p.needs[materialID] += cantidad
}

// Empty indica si el plan no requiere material alguno.
func (p *ReservationPlan) Empty() bool { return len(p.needs) == 0 }

// MaterialIDs devuelve los materiales del plan en orden ascendente.
// El orden fijo evita interbloqueos al tomar los bloqueos de fila.
func (p *ReservationPlan) MaterialIDs() []string {
	ids := make([]string, 0, len(p.needs))
	for id := range p.needs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Required devuelve la cantidad requerida de un material.
func (p *ReservationPlan) Required(materialID string) int {
	return p.needs[materialID]
}

// Verify comprueba la suficiencia de stock de todos los materiales del plan.
// Los materiales deben venir ya bloqueados por el caller; si alguno falta en
// el mapa retorna ErrInvalidReference, si alguno no alcanza retorna
// ErrInsufficientStock. No muta nada.
func (p *ReservationPlan) Verify(materiales map[string]*entity.Material) error {
	for _, id := range p.MaterialIDs() {
		m, ok := materiales[id]
		if !ok || m == nil {
			return domain.ErrInvalidReference
		}
		if m.Stock < p.needs[id] {
			return domain.ErrInsufficientStock
		}
	}
	return nil
}

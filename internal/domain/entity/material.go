package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida permitidas para materiales.
const (
	UnidadKilogramo  = "kg"
	UnidadGramo      = "g"
	UnidadMetro      = "m"
	UnidadCentimetro = "cm"
	UnidadLitro      = "l"
	UnidadMililitro  = "ml"
	UnidadPieza      = "unidad"
)

var unidades = map[string]bool{
	UnidadKilogramo:  true,
	UnidadGramo:      true,
	UnidadMetro:      true,
	UnidadCentimetro: true,
	UnidadLitro:      true,
	UnidadMililitro:  true,
	UnidadPieza:      true,
}

// UnidadValida verifica que la unidad pertenezca al conjunto cerrado.
func UnidadValida(u string) bool { return unidades[u] }

// Material representa una materia prima en stock.
// El nivel (crítico/bajo/medio/normal) se deriva en lectura, no se almacena.
type Material struct {
	ID             string
	Nombre         string
	Unidad         string // ver constantes Unidad*
	PrecioUnitario decimal.Decimal
	Stock          int // >= 0
	StockMinimo    int // >= 1
	Proveedor      string
	Activo         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

package entity

import "time"

// Categorías de cliente. La categoría define el descuento sugerido en cotizaciones.
const (
	CategoriaRegular = "regular"
	CategoriaVIP     = "vip"
	CategoriaPremium = "premium"
)

// Estados de cliente. El bloqueo es reversible; la eliminación física es una
// acción distinta y solo procede si el cliente no tiene operaciones.
const (
	ClienteActivo    = "activo"
	ClienteBloqueado = "bloqueado"
)

// Cliente representa una persona o cuenta que encarga operaciones al taller.
type Cliente struct {
	ID                  string
	Nombre              string
	Documento           string // cédula o NIT, único
	Email               string
	Telefono            string
	Direccion           string
	Categoria           string // ver constantes Categoria*
	Descuento           int    // porcentaje 0-100
	ConsentimientoDatos bool   // habeas data
	Estado              string // activo, bloqueado
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CategoriaValida verifica que la categoría pertenezca al conjunto cerrado.
func CategoriaValida(c string) bool {
	return c == CategoriaRegular || c == CategoriaVIP || c == CategoriaPremium
}

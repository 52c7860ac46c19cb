package entity

import "time"

// Roles de usuario del taller.
const (
	RoleAdmin      = "admin"
	RoleVendedor   = "vendedor"
	RoleCarpintero = "carpintero"
)

// User representa un usuario del personal del taller.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	Rol          string // ver constantes Role*
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package dto

import "time"

// CreateClienteRequest alta de cliente.
type CreateClienteRequest struct {
	Nombre              string `json:"nombre"`
	Documento           string `json:"documento"`
	Email               string `json:"email"`
	Telefono            string `json:"telefono"`
	Direccion           string `json:"direccion"`
	Categoria           string `json:"categoria"` // regular | vip | premium
	Descuento           int    `json:"descuento"` // 0-100
	ConsentimientoDatos bool   `json:"consentimiento_datos"`
}

// UpdateClienteRequest edición de cliente; campos nil no se tocan.
type UpdateClienteRequest struct {
	Nombre              *string `json:"nombre"`
	Email               *string `json:"email"`
	Telefono            *string `json:"telefono"`
	Direccion           *string `json:"direccion"`
	Categoria           *string `json:"categoria"`
	Descuento           *int    `json:"descuento"`
	ConsentimientoDatos *bool   `json:"consentimiento_datos"`
}

// ClienteResponse proyección de cliente.
type ClienteResponse struct {
	ID                  string    `json:"id"`
	Nombre              string    `json:"nombre"`
	Documento           string    `json:"documento"`
	Email               string    `json:"email"`
	Telefono            string    `json:"telefono"`
	Direccion           string    `json:"direccion"`
	Categoria           string    `json:"categoria"`
	Descuento           int       `json:"descuento"`
	ConsentimientoDatos bool      `json:"consentimiento_datos"`
	Estado              string    `json:"estado"`
	CreatedAt           time.Time `json:"created_at"`
}

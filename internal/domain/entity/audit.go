package entity

import "time"

// Acciones registradas en la bitácora.
const (
	AccionCrear        = "crear"
	AccionActualizar   = "actualizar"
	AccionCambioEstado = "cambio_estado"
	AccionAbono        = "abono"
	AccionBloqueo      = "bloqueo"
	AccionEliminar     = "eliminar"
)

// AuditEntry es una entrada de la bitácora de auditoría. Las operaciones
// anuladas siguen aceptando estas anotaciones aunque sean inmutables.
type AuditEntry struct {
	ID        string
	UserID    string
	Accion    string
	Entidad   string // "operation", "cliente", "material", ...
	EntidadID string
	Detalle   string
	Fecha     time.Time
}

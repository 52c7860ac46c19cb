package repository

import "github.com/jfcastano/taller-api/internal/domain/entity"

// AuditRepository define el puerto de persistencia de la bitácora.
type AuditRepository interface {
	Create(e *entity.AuditEntry) error
	ListByEntidad(entidad, entidadID string, limit, offset int) ([]*entity.AuditEntry, error)
}

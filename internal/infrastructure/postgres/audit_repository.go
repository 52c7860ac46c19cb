package postgres

import (
	"context"
	"fmt"

	"github.com/jfcastano/taller-api/internal/domain/entity"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación de AuditRepository (usable con pool o tx).
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create registra una entrada en la bitácora.
func (r *AuditRepo) Create(e *entity.AuditEntry) error {
	query := `
		INSERT INTO audit_log (id, user_id, accion, entidad, entidad_id, detalle, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.UserID, e.Accion, e.Entidad, e.EntidadID, e.Detalle, e.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// ListByEntidad devuelve la bitácora de una entidad, reciente primero.
func (r *AuditRepo) ListByEntidad(entidad, entidadID string, limit, offset int) ([]*entity.AuditEntry, error) {
	query := `
		SELECT id, user_id, accion, entidad, entidad_id, detalle, fecha
		FROM audit_log WHERE entidad = $1 AND entidad_id = $2
		ORDER BY fecha DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, entidad, entidadID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditEntry
	for rows.Next() {
		var e entity.AuditEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Accion, &e.Entidad, &e.EntidadID, &e.Detalle, &e.Fecha); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

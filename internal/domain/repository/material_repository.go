package repository

import "github.com/jfcastano/taller-api/internal/domain/entity"

// MaterialRepository define el puerto de persistencia para Material.
// GetForUpdateByIDs bloquea las filas en orden ascendente de id
// (SELECT ... ORDER BY id FOR UPDATE) para evitar interbloqueos entre
// operaciones que comparten materiales.
type MaterialRepository interface {
	Create(m *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	GetForUpdateByIDs(ids []string) ([]*entity.Material, error)
	Update(m *entity.Material) error
	UpdateStock(id string, stock int) error
	List(limit, offset int) ([]*entity.Material, error)
	ListActive() ([]*entity.Material, error)
}

// MaterialMovementRepository registra el libro de movimientos de stock.
type MaterialMovementRepository interface {
	Create(mov *entity.MaterialMovement) error
	ListByMaterial(materialID string, limit, offset int) ([]*entity.MaterialMovement, error)
	ListByOperation(operationID string) ([]*entity.MaterialMovement, error)
}

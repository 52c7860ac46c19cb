package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appop "github.com/jfcastano/taller-api/internal/application/operation"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

var _ appop.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la
// garantía de atomicidad del motor de operaciones: cambio de estado,
// descuentos de stock, abonos y bitácora se confirman o revierten juntos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	opRepo repository.OperationRepository,
	materialRepo repository.MaterialRepository,
	movRepo repository.MaterialMovementRepository,
	auditRepo repository.AuditRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	opRepo := NewOperationRepository(tx)
	materialRepo := NewMaterialRepository(tx)
	movRepo := NewMaterialMovementRepository(tx)
	auditRepo := NewAuditRepository(tx)

	if err := fn(opRepo, materialRepo, movRepo, auditRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

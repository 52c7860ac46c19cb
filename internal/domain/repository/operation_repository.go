package repository

import (
	"time"

	"github.com/jfcastano/taller-api/internal/domain/entity"
)

// OperationFilter filtros de listado de operaciones.
type OperationFilter struct {
	Estado    string
	ClienteID string
	Desde     *time.Time
	Hasta     *time.Time
	Limit     int
	Offset    int
}

// OperationRepository define el puerto de persistencia para Operation.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y solo tiene sentido
// dentro de una transacción del TxRunner.
type OperationRepository interface {
	Create(op *entity.Operation) error
	GetByID(id string) (*entity.Operation, error)
	GetForUpdate(id string) (*entity.Operation, error)
	Update(op *entity.Operation) error
	ReplaceLines(operationID string, lines []entity.OperationLine) error
	List(f OperationFilter) ([]*entity.Operation, error)
	CountByCliente(clienteID string) (int, error)
	AddAbono(a *entity.Abono) error
	ListAbonos(operationID string) ([]*entity.Abono, error)
}

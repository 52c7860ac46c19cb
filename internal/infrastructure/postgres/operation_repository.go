package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jfcastano/taller-api/internal/domain/entity"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

var _ repository.OperationRepository = (*OperationRepo)(nil)

// OperationRepo implementación de OperationRepository (usable con pool o tx).
type OperationRepo struct {
	q Querier
}

// NewOperationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOperationRepository(q Querier) *OperationRepo {
	return &OperationRepo{q: q}
}

const operationColumns = `id, cliente_id, user_id, estado, costo, abonado, descripcion,
		fecha_entrega_estimada, fecha_primer_abono, stock_comprometido, created_at, updated_at`

// Create persiste la cabecera y sus líneas.
func (r *OperationRepo) Create(op *entity.Operation) error {
	query := `
		INSERT INTO operations (` + operationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		op.ID, op.ClienteID, op.UserID, op.Estado, nullDecimal(op.Costo), op.Abonado,
		op.Descripcion, op.FechaEntregaEstimada, op.FechaPrimerAbono,
		op.StockComprometido, op.CreatedAt, op.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return r.insertLines(op.Lines)
}

// GetByID obtiene la operación con sus líneas. Retorna nil si no existe.
func (r *OperationRepo) GetByID(id string) (*entity.Operation, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la operación y bloquea la fila (SELECT FOR UPDATE).
func (r *OperationRepo) GetForUpdate(id string) (*entity.Operation, error) {
	return r.get(id, true)
}

func (r *OperationRepo) get(id string, forUpdate bool) (*entity.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var op entity.Operation
	var costo decimal.NullDecimal
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&op.ID, &op.ClienteID, &op.UserID, &op.Estado, &costo, &op.Abonado,
		&op.Descripcion, &op.FechaEntregaEstimada, &op.FechaPrimerAbono,
		&op.StockComprometido, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operation: %w", err)
	}
	if costo.Valid {
		op.Costo = &costo.Decimal
	}
	lines, err := r.loadLines(op.ID)
	if err != nil {
		return nil, err
	}
	op.Lines = lines
	return &op, nil
}

// Update actualiza la cabecera (no toca las líneas).
func (r *OperationRepo) Update(op *entity.Operation) error {
	query := `
		UPDATE operations SET estado = $2, costo = $3, abonado = $4, descripcion = $5,
			fecha_entrega_estimada = $6, fecha_primer_abono = $7,
			stock_comprometido = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		op.ID, op.Estado, nullDecimal(op.Costo), op.Abonado, op.Descripcion,
		op.FechaEntregaEstimada, op.FechaPrimerAbono, op.StockComprometido, op.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update operation: %w", err)
	}
	return nil
}

// ReplaceLines reemplaza el conjunto de líneas de la operación.
func (r *OperationRepo) ReplaceLines(operationID string, lines []entity.OperationLine) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM operation_lines WHERE operation_id = $1`, operationID)
	if err != nil {
		return fmt.Errorf("delete operation lines: %w", err)
	}
	return r.insertLines(lines)
}

func (r *OperationRepo) insertLines(lines []entity.OperationLine) error {
	for _, l := range lines {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO operation_lines (id, operation_id, product_id, cantidad, detalle)
			VALUES ($1, $2, $3, $4, $5)`,
			l.ID, l.OperationID, l.ProductID, l.Cantidad, l.Detalle,
		)
		if err != nil {
			return fmt.Errorf("insert operation line: %w", err)
		}
	}
	return nil
}

func (r *OperationRepo) loadLines(operationID string) ([]entity.OperationLine, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, operation_id, product_id, cantidad, detalle
		FROM operation_lines WHERE operation_id = $1 ORDER BY id`, operationID)
	if err != nil {
		return nil, fmt.Errorf("load operation lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.OperationLine
	for rows.Next() {
		var l entity.OperationLine
		if err := rows.Scan(&l.ID, &l.OperationID, &l.ProductID, &l.Cantidad, &l.Detalle); err != nil {
			return nil, fmt.Errorf("scan operation line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// List lista operaciones filtradas por estado, cliente y rango de fechas.
func (r *OperationRepo) List(f repository.OperationFilter) ([]*entity.Operation, error) {
	var conds []string
	var args []any
	if f.Estado != "" {
		args = append(args, f.Estado)
		conds = append(conds, fmt.Sprintf("estado = $%d", len(args)))
	}
	if f.ClienteID != "" {
		args = append(args, f.ClienteID)
		conds = append(conds, fmt.Sprintf("cliente_id = $%d", len(args)))
	}
	if f.Desde != nil {
		args = append(args, *f.Desde)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if f.Hasta != nil {
		args = append(args, *f.Hasta)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	query := `SELECT ` + operationColumns + ` FROM operations`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, f.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Operation
	for rows.Next() {
		var op entity.Operation
		var costo decimal.NullDecimal
		if err := rows.Scan(
			&op.ID, &op.ClienteID, &op.UserID, &op.Estado, &costo, &op.Abonado,
			&op.Descripcion, &op.FechaEntregaEstimada, &op.FechaPrimerAbono,
			&op.StockComprometido, &op.CreatedAt, &op.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		if costo.Valid {
			c := costo.Decimal
			op.Costo = &c
		}
		list = append(list, &op)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, op := range list {
		lines, err := r.loadLines(op.ID)
		if err != nil {
			return nil, err
		}
		op.Lines = lines
	}
	return list, nil
}

// CountByCliente cuenta las operaciones de un cliente (retención al eliminar).
func (r *OperationRepo) CountByCliente(clienteID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM operations WHERE cliente_id = $1`, clienteID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count operations: %w", err)
	}
	return n, nil
}

// AddAbono registra un abono individual.
func (r *OperationRepo) AddAbono(a *entity.Abono) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO abonos (id, operation_id, monto, fecha, user_id)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.OperationID, a.Monto, a.Fecha, a.UserID,
	)
	if err != nil {
		return fmt.Errorf("insert abono: %w", err)
	}
	return nil
}

// ListAbonos devuelve los abonos de la operación en orden cronológico.
func (r *OperationRepo) ListAbonos(operationID string) ([]*entity.Abono, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, operation_id, monto, fecha, user_id
		FROM abonos WHERE operation_id = $1 ORDER BY fecha`, operationID)
	if err != nil {
		return nil, fmt.Errorf("list abonos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Abono
	for rows.Next() {
		var a entity.Abono
		if err := rows.Scan(&a.ID, &a.OperationID, &a.Monto, &a.Fecha, &a.UserID); err != nil {
			return nil, fmt.Errorf("scan abono: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// nullDecimal convierte *decimal.Decimal al tipo nullable del driver.
func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

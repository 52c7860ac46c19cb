package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/entity"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación de MaterialRepository (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, nombre, unidad, precio_unitario, stock, stock_minimo,
		proveedor, activo, created_at, updated_at`

// Create persiste un material nuevo.
func (r *MaterialRepo) Create(m *entity.Material) error {
	query := `
		INSERT INTO materials (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Nombre, m.Unidad, m.PrecioUnitario, m.Stock, m.StockMinimo,
		m.Proveedor, m.Activo, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material. Retorna nil si no existe.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	m, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

// GetForUpdateByIDs bloquea y devuelve los materiales indicados en orden
// ascendente de id (SELECT ... ORDER BY id FOR UPDATE). El orden fijo evita
// interbloqueos entre transacciones que comparten materiales.
func (r *MaterialRepo) GetForUpdateByIDs(ids []string) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + `
		FROM materials WHERE id = ANY($1) ORDER BY id FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("lock materials: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Update actualiza los atributos del material (el stock se toca con UpdateStock).
func (r *MaterialRepo) Update(m *entity.Material) error {
	query := `
		UPDATE materials SET nombre = $2, unidad = $3, precio_unitario = $4,
			stock_minimo = $5, proveedor = $6, activo = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Nombre, m.Unidad, m.PrecioUnitario, m.StockMinimo,
		m.Proveedor, m.Activo, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// UpdateStock fija el stock en el valor calculado sobre la fila bloqueada.
// El CHECK stock >= 0 de la tabla respalda el invariante como última línea.
func (r *MaterialRepo) UpdateStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE materials SET stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// List lista materiales con paginación.
func (r *MaterialRepo) List(limit, offset int) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + `
		FROM materials ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListActive lista todos los materiales activos (proyección de alertas).
func (r *MaterialRepo) ListActive() ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + `
		FROM materials WHERE activo ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list active materials: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *MaterialRepo) scanOne(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(
		&m.ID, &m.Nombre, &m.Unidad, &m.PrecioUnitario, &m.Stock, &m.StockMinimo,
		&m.Proveedor, &m.Activo, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *MaterialRepo) scanAll(rows pgx.Rows) ([]*entity.Material, error) {
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(
			&m.ID, &m.Nombre, &m.Unidad, &m.PrecioUnitario, &m.Stock, &m.StockMinimo,
			&m.Proveedor, &m.Activo, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

var _ repository.MaterialMovementRepository = (*MaterialMovementRepo)(nil)

// MaterialMovementRepo implementación del libro de movimientos.
type MaterialMovementRepo struct {
	q Querier
}

// NewMaterialMovementRepository construye el adaptador. Pasar pool o tx.
func NewMaterialMovementRepository(q Querier) *MaterialMovementRepo {
	return &MaterialMovementRepo{q: q}
}

// Create registra un movimiento de stock.
func (r *MaterialMovementRepo) Create(mov *entity.MaterialMovement) error {
	query := `
		INSERT INTO material_movements
			(id, material_id, tipo, cantidad, stock_anterior, stock_nuevo, operation_id, user_id, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.MaterialID, mov.Tipo, mov.Cantidad, mov.StockAnterior,
		mov.StockNuevo, mov.OperationID, mov.UserID, mov.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert material movement: %w", err)
	}
	return nil
}

// ListByMaterial devuelve los movimientos de un material, recientes primero.
func (r *MaterialMovementRepo) ListByMaterial(materialID string, limit, offset int) ([]*entity.MaterialMovement, error) {
	query := `
		SELECT id, material_id, tipo, cantidad, stock_anterior, stock_nuevo,
			COALESCE(operation_id::text, ''), user_id, fecha
		FROM material_movements WHERE material_id = $1
		ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, materialID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list material movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialMovement
	for rows.Next() {
		var mov entity.MaterialMovement
		if err := rows.Scan(
			&mov.ID, &mov.MaterialID, &mov.Tipo, &mov.Cantidad, &mov.StockAnterior,
			&mov.StockNuevo, &mov.OperationID, &mov.UserID, &mov.Fecha,
		); err != nil {
			return nil, fmt.Errorf("scan material movement: %w", err)
		}
		list = append(list, &mov)
	}
	return list, rows.Err()
}

// ListByOperation devuelve los movimientos ligados a una operación, en orden
// de registro. Es la fuente de verdad para restaurar stock al anular.
func (r *MaterialMovementRepo) ListByOperation(operationID string) ([]*entity.MaterialMovement, error) {
	query := `
		SELECT id, material_id, tipo, cantidad, stock_anterior, stock_nuevo,
			COALESCE(operation_id::text, ''), user_id, fecha
		FROM material_movements WHERE operation_id = $1
		ORDER BY fecha ASC`
	rows, err := r.q.Query(context.Background(), query, operationID)
	if err != nil {
		return nil, fmt.Errorf("list operation movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialMovement
	for rows.Next() {
		var mov entity.MaterialMovement
		if err := rows.Scan(
			&mov.ID, &mov.MaterialID, &mov.Tipo, &mov.Cantidad, &mov.StockAnterior,
			&mov.StockNuevo, &mov.OperationID, &mov.UserID, &mov.Fecha,
		); err != nil {
			return nil, fmt.Errorf("scan material movement: %w", err)
		}
		list = append(list, &mov)
	}
	return list, rows.Err()
}

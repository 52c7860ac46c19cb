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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColumns = `id, nombre, documento, email, telefono, direccion, categoria,
		descuento, consentimiento_datos, estado, created_at, updated_at`

// Create persiste un cliente nuevo.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (` + clienteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Documento, c.Email, c.Telefono, c.Direccion, c.Categoria,
		c.Descuento, c.ConsentimientoDatos, c.Estado, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Retorna nil si no existe.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.getBy("id", id)
}

// GetByDocumento obtiene un cliente por documento (cédula/NIT).
func (r *ClienteRepo) GetByDocumento(documento string) (*entity.Cliente, error) {
	return r.getBy("documento", documento)
}

func (r *ClienteRepo) getBy(column, value string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE ` + column + ` = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&c.ID, &c.Nombre, &c.Documento, &c.Email, &c.Telefono, &c.Direccion, &c.Categoria,
		&c.Descuento, &c.ConsentimientoDatos, &c.Estado, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista clientes con paginación.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + `
		FROM clientes ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(
			&c.ID, &c.Nombre, &c.Documento, &c.Email, &c.Telefono, &c.Direccion, &c.Categoria,
			&c.Descuento, &c.ConsentimientoDatos, &c.Estado, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = $2, email = $3, telefono = $4, direccion = $5,
			categoria = $6, descuento = $7, consentimiento_datos = $8, estado = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Email, c.Telefono, c.Direccion,
		c.Categoria, c.Descuento, c.ConsentimientoDatos, c.Estado, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina físicamente un cliente. El caso de uso verifica antes que no
// tenga operaciones (retención).
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

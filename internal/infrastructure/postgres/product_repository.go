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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, nombre, descripcion, precio, es_servicio, consume_materiales,
		activo, created_at, updated_at`

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Precio, p.EsServicio, p.ConsumeMateriales,
		p.Activo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto. Retorna nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.EsServicio, &p.ConsumeMateriales,
		&p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET nombre = $2, descripcion = $3, precio = $4,
			consume_materiales = $5, activo = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Precio, p.ConsumeMateriales, p.Activo, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista el catálogo con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.EsServicio, &p.ConsumeMateriales,
			&p.Activo, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SetMateriales reemplaza la lista de materiales del producto.
func (r *ProductRepo) SetMateriales(productID string, reqs []entity.ProductMaterial) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM product_materials WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete product materials: %w", err)
	}
	for _, req := range reqs {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO product_materials (product_id, material_id, cantidad_por_unidad)
			VALUES ($1, $2, $3)`,
			req.ProductID, req.MaterialID, req.CantidadPorUnidad,
		)
		if err != nil {
			return fmt.Errorf("insert product material: %w", err)
		}
	}
	return nil
}

// GetMateriales devuelve los requerimientos de material del producto.
func (r *ProductRepo) GetMateriales(productID string) ([]entity.ProductMaterial, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT product_id, material_id, cantidad_por_unidad
		FROM product_materials WHERE product_id = $1 ORDER BY material_id`, productID)
	if err != nil {
		return nil, fmt.Errorf("get product materials: %w", err)
	}
	defer rows.Close()
	var reqs []entity.ProductMaterial
	for rows.Next() {
		var req entity.ProductMaterial
		if err := rows.Scan(&req.ProductID, &req.MaterialID, &req.CantidadPorUnidad); err != nil {
			return nil, fmt.Errorf("scan product material: %w", err)
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

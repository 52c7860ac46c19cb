package repository

import "github.com/jfcastano/taller-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para el catálogo.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(p *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	// SetMateriales reemplaza la lista de materiales del producto.
	SetMateriales(productID string, reqs []entity.ProductMaterial) error
	GetMateriales(productID string) ([]entity.ProductMaterial, error)
}

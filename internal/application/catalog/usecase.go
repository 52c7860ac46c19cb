// Package catalog implementa el catálogo de productos y servicios del taller,
// incluida la lista de materiales que consume cada producto fabricado.
package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jfcastano/taller-api/internal/application/dto"
	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/entity"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

// UseCase casos de uso del catálogo.
type UseCase struct {
	repo         repository.ProductRepository
	materialRepo repository.MaterialRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProductRepository, materialRepo repository.MaterialRepository) *UseCase {
	return &UseCase{repo: repo, materialRepo: materialRepo}
}

// Create registra un producto o servicio. Un servicio no consume materiales.
func (uc *UseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	if in.EsServicio && in.ConsumeMateriales {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		ID:                uuid.New().String(),
		Nombre:            in.Nombre,
		Descripcion:       in.Descripcion,
		Precio:            in.Precio,
		EsServicio:        in.EsServicio,
		ConsumeMateriales: in.ConsumeMateriales,
		Activo:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p, nil), nil
}

// Update edita un producto del catálogo.
func (uc *UseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		if in.Precio.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidAmount
		}
		p.Precio = *in.Precio
	}
	if in.Activo != nil {
		p.Activo = *in.Activo
	}
	if in.ConsumeMateriales != nil {
		if p.EsServicio && *in.ConsumeMateriales {
			return nil, domain.ErrInvalidInput
		}
		p.ConsumeMateriales = *in.ConsumeMateriales
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p, nil), nil
}

// GetByID devuelve el producto con su lista de materiales.
func (uc *UseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	reqs, err := uc.repo.GetMateriales(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p, reqs), nil
}

// List lista el catálogo con paginación.
func (uc *UseCase) List(limit, offset int) ([]*dto.ProductResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p, nil))
	}
	return out, nil
}

// SetMateriales reemplaza la lista de materiales del producto. Valida que el
// producto consuma materiales, que cada material exista y que las cantidades
// por unidad sean >= 1.
func (uc *UseCase) SetMateriales(productID string, in dto.SetProductMaterialesRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !p.ConsumeMateriales {
		return nil, domain.ErrInvalidInput
	}
	reqs := make([]entity.ProductMaterial, 0, len(in.Materiales))
	for _, r := range in.Materiales {
		if r.CantidadPorUnidad < 1 {
			return nil, domain.ErrInvalidAmount
		}
		m, err := uc.materialRepo.GetByID(r.MaterialID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrInvalidReference
		}
		reqs = append(reqs, entity.ProductMaterial{
			ProductID:         productID,
			MaterialID:        r.MaterialID,
			CantidadPorUnidad: r.CantidadPorUnidad,
		})
	}
	if err := uc.repo.SetMateriales(productID, reqs); err != nil {
		return nil, err
	}
	return toProductResponse(p, reqs), nil
}

func toProductResponse(p *entity.Product, reqs []entity.ProductMaterial) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:                p.ID,
		Nombre:            p.Nombre,
		Descripcion:       p.Descripcion,
		Precio:            p.Precio,
		EsServicio:        p.EsServicio,
		ConsumeMateriales: p.ConsumeMateriales,
		Activo:            p.Activo,
	}
	for _, r := range reqs {
		resp.Materiales = append(resp.Materiales, dto.ProductMaterialDTO{
			MaterialID:        r.MaterialID,
			CantidadPorUnidad: r.CantidadPorUnidad,
		})
	}
	return resp
}

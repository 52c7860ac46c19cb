// Package cliente implementa la gestión de clientes del taller: CRUD,
// bloqueo reversible y eliminación física con retención de operaciones.
package cliente

import (
	"time"

	"github.com/google/uuid"

	"github.com/jfcastano/taller-api/internal/application/dto"
	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/entity"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

// UseCase casos de uso de clientes.
type UseCase struct {
	repo   repository.ClienteRepository
	opRepo repository.OperationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ClienteRepository, opRepo repository.OperationRepository) *UseCase {
	return &UseCase{repo: repo, opRepo: opRepo}
}

// Create registra un cliente. El documento es único.
func (uc *UseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" || in.Documento == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria := in.Categoria
	if categoria == "" {
		categoria = entity.CategoriaRegular
	}
	if !entity.CategoriaValida(categoria) {
		return nil, domain.ErrInvalidInput
	}
	if in.Descuento < 0 || in.Descuento > 100 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByDocumento(in.Documento)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.Cliente{
		ID:                  uuid.New().String(),
		Nombre:              in.Nombre,
		Documento:           in.Documento,
		Email:               in.Email,
		Telefono:            in.Telefono,
		Direccion:           in.Direccion,
		Categoria:           categoria,
		Descuento:           in.Descuento,
		ConsentimientoDatos: in.ConsentimientoDatos,
		Estado:              entity.ClienteActivo,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Update edita un cliente.
func (uc *UseCase) Update(id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		c.Nombre = *in.Nombre
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Telefono != nil {
		c.Telefono = *in.Telefono
	}
	if in.Direccion != nil {
		c.Direccion = *in.Direccion
	}
	if in.Categoria != nil {
		if !entity.CategoriaValida(*in.Categoria) {
			return nil, domain.ErrInvalidInput
		}
		c.Categoria = *in.Categoria
	}
	if in.Descuento != nil {
		if *in.Descuento < 0 || *in.Descuento > 100 {
			return nil, domain.ErrInvalidInput
		}
		c.Descuento = *in.Descuento
	}
	if in.ConsentimientoDatos != nil {
		c.ConsentimientoDatos = *in.ConsentimientoDatos
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByID devuelve un cliente.
func (uc *UseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(c), nil
}

// List lista clientes con paginación.
func (uc *UseCase) List(limit, offset int) ([]*dto.ClienteResponse, error) {
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
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// SetBlocked bloquea o desbloquea un cliente. El bloqueo no toca sus
// operaciones existentes.
func (uc *UseCase) SetBlocked(id string, blocked bool) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if blocked {
		c.Estado = entity.ClienteBloqueado
	} else {
		c.Estado = entity.ClienteActivo
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// HardDelete elimina físicamente un cliente. Las operaciones se retienen:
// si el cliente tiene operaciones la eliminación se rechaza con ErrConflict
// y el camino correcto es el bloqueo.
func (uc *UseCase) HardDelete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	count, err := uc.opRepo.CountByCliente(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:                  c.ID,
		Nombre:              c.Nombre,
		Documento:           c.Documento,
		Email:               c.Email,
		Telefono:            c.Telefono,
		Direccion:           c.Direccion,
		Categoria:           c.Categoria,
		Descuento:           c.Descuento,
		ConsentimientoDatos: c.ConsentimientoDatos,
		Estado:              c.Estado,
		CreatedAt:           c.CreatedAt,
	}
}

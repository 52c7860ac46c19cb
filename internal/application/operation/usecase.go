// Package operation implementa el motor de ciclo de vida y conciliación
// financiera de las órdenes de trabajo: creación, transiciones de estado con
// compromiso/restauración de materiales, abonos y consultas.
package operation

import (
	"github.com/shopspring/decimal"

	"github.com/jfcastano/taller-api/internal/application/dto"
	"github.com/jfcastano/taller-api/internal/application/ports"
	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/entity"
	"github.com/jfcastano/taller-api/internal/domain/repository"
	"github.com/jfcastano/taller-api/pkg/logger"
)

// UseCase casos de uso de operaciones. Las mutaciones corren dentro del
// TxRunner; las validaciones de referencia (cliente/producto) se hacen antes
// de abrir la transacción, como catálogo de solo lectura.
type UseCase struct {
	txRunner    TxRunner
	opRepo      repository.OperationRepository
	clienteRepo repository.ClienteRepository
	productRepo repository.ProductRepository
	notifier    ports.Notifier
	log         *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	opRepo repository.OperationRepository,
	clienteRepo repository.ClienteRepository,
	productRepo repository.ProductRepository,
	notifier ports.Notifier,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		opRepo:      opRepo,
		clienteRepo: clienteRepo,
		productRepo: productRepo,
		notifier:    notifier,
		log:         log,
	}
}

// GetByID devuelve la operación con líneas y abonos.
func (uc *UseCase) GetByID(id string) (*dto.OperationResponse, error) {
	op, err := uc.opRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	abonos, err := uc.opRepo.ListAbonos(id)
	if err != nil {
		return nil, err
	}
	return toOperationResponse(op, abonos), nil
}

// List lista operaciones filtradas por estado, cliente y rango de fechas.
func (uc *UseCase) List(f dto.OperationListFilter) ([]*dto.OperationResponse, error) {
	f.DefaultPage()
	list, err := uc.opRepo.List(repository.OperationFilter{
		Estado:    f.Estado,
		ClienteID: f.ClienteID,
		Desde:     f.Desde,
		Hasta:     f.Hasta,
		Limit:     f.Limit,
		Offset:    f.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OperationResponse, 0, len(list))
	for _, op := range list {
		out = append(out, toOperationResponse(op, nil))
	}
	return out, nil
}

func toOperationResponse(op *entity.Operation, abonos []*entity.Abono) *dto.OperationResponse {
	resp := &dto.OperationResponse{
		ID:                   op.ID,
		ClienteID:            op.ClienteID,
		Estado:               op.Estado,
		Costo:                op.Costo,
		Abonado:              op.Abonado,
		Descripcion:          op.Descripcion,
		FechaEntregaEstimada: op.FechaEntregaEstimada,
		FechaPrimerAbono:     op.FechaPrimerAbono,
		StockComprometido:    op.StockComprometido,
		CreatedAt:            op.CreatedAt,
	}
	if op.Costo != nil {
		saldo := op.Costo.Sub(op.Abonado)
		if saldo.LessThan(decimal.Zero) {
			saldo = decimal.Zero
		}
		resp.Saldo = &saldo
	}
	for _, l := range op.Lines {
		resp.Lines = append(resp.Lines, dto.OperationLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Cantidad:  l.Cantidad,
			Detalle:   l.Detalle,
		})
	}
	for _, a := range abonos {
		resp.Abonos = append(resp.Abonos, dto.AbonoResponse{ID: a.ID, Monto: a.Monto, Fecha: a.Fecha})
	}
	return resp
}

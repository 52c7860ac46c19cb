package ports

import (
	"context"

	"github.com/jfcastano/taller-api/internal/domain/entity"
)

// Notifier es la frontera hacia el subsistema de notificaciones al cliente
// (correo u otro canal, externo a este núcleo). Las implementaciones no deben
// bloquear el flujo de negocio: un fallo de notificación se registra, no se
// propaga al caller.
type Notifier interface {
	OperationStatusChanged(ctx context.Context, cliente *entity.Cliente, op *entity.Operation) error
}

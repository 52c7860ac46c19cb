// Package notify contiene los adaptadores de notificación al cliente.
package notify

import (
	"context"

	"github.com/jfcastano/taller-api/internal/application/ports"
	"github.com/jfcastano/taller-api/internal/domain/entity"
	"github.com/jfcastano/taller-api/pkg/logger"
)

var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier registra las notificaciones en el log estructurado. Sirve de
// implementación por defecto mientras no haya canal de correo configurado;
// el contrato del puerto se mantiene para cambiar de adaptador sin tocar
// los casos de uso.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el adaptador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// OperationStatusChanged deja constancia del cambio de estado notificable.
func (n *LogNotifier) OperationStatusChanged(_ context.Context, cliente *entity.Cliente, op *entity.Operation) error {
	n.log.Info().
		Str("operation_id", op.ID).
		Str("estado", op.Estado).
		Str("cliente_id", cliente.ID).
		Str("cliente_email", cliente.Email).
		Msg("notificación de cambio de estado")
	return nil
}

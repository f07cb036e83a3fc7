package port

import (
	"context"

	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
)

// EventPublisher publica eventos de dominio hacia el broker.
// Un fallo al publicar no debe revertir la operación ya confirmada.
type EventPublisher interface {
	PublishOrderCompleted(ctx context.Context, order *entity.Order) error
}

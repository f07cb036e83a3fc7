package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/application/request"
	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/port"
)

// CompleteOrderUseCase caso de uso para cerrar un ticket.
// Solo admin y cajero pueden cobrar.
type CompleteOrderUseCase struct {
	orderRepo port.OrderRepository
	publisher port.EventPublisher
}

// NewCompleteOrderUseCase crea una nueva instancia del caso de uso
func NewCompleteOrderUseCase(orderRepo port.OrderRepository, publisher port.EventPublisher) *CompleteOrderUseCase {
	return &CompleteOrderUseCase{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// Execute cierra el ticket con el método de pago final. La transición y
// el acumulado de ventas diarias se confirman en la misma transacción:
// no puede existir una orden completada sin su registro de ventas.
func (uc *CompleteOrderUseCase) Execute(ctx context.Context, principal authentity.Principal, orderID uuid.UUID, req *request.CompleteOrderRequest) (*entity.Order, error) {
	if !principal.HasAnyRole(authentity.RoleAdmin, authentity.RoleCashier) {
		return nil, authentity.ErrForbidden
	}

	order, err := uc.orderRepo.Complete(ctx, orderID, func(order *entity.Order) error {
		return order.Complete(entity.PaymentMethod(req.PaymentMethod), time.Now())
	})
	if err != nil {
		return nil, err
	}

	// Publicar el evento fuera de la transacción; un fallo del broker
	// no revierte una orden ya cobrada.
	if uc.publisher != nil {
		if err := uc.publisher.PublishOrderCompleted(ctx, order); err != nil {
			log.Printf("WARNING: Failed to publish orders.completed for ticket %d: %v", order.TicketNumber, err)
		}
	}

	return order, nil
}

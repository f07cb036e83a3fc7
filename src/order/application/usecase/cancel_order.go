package usecase

import (
	"context"

	"github.com/google/uuid"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/port"
)

// CancelOrderUseCase caso de uso para cancelar un ticket
type CancelOrderUseCase struct {
	orderRepo port.OrderRepository
}

// NewCancelOrderUseCase crea una nueva instancia del caso de uso
func NewCancelOrderUseCase(orderRepo port.OrderRepository) *CancelOrderUseCase {
	return &CancelOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute cancela el ticket. No toca totales ni el acumulado diario.
func (uc *CancelOrderUseCase) Execute(ctx context.Context, principal authentity.Principal, orderID uuid.UUID) (*entity.Order, error) {
	if !principal.HasAnyRole(authentity.RoleAdmin, authentity.RoleCashier) {
		return nil, authentity.ErrForbidden
	}

	return uc.orderRepo.Cancel(ctx, orderID, func(order *entity.Order) error {
		return order.Cancel()
	})
}

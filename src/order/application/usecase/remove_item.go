package usecase

import (
	"context"

	"github.com/google/uuid"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/port"
)

// RemoveItemUseCase caso de uso para quitar una línea de un ticket abierto
type RemoveItemUseCase struct {
	orderRepo port.OrderRepository
}

// NewRemoveItemUseCase crea una nueva instancia del caso de uso
func NewRemoveItemUseCase(orderRepo port.OrderRepository) *RemoveItemUseCase {
	return &RemoveItemUseCase{
		orderRepo: orderRepo,
	}
}

// Execute elimina la línea y recalcula totales en la misma transacción
func (uc *RemoveItemUseCase) Execute(ctx context.Context, principal authentity.Principal, orderID, itemID uuid.UUID) (*entity.Order, error) {
	if !principal.HasAnyRole(authentity.RoleAdmin, authentity.RoleCashier, authentity.RoleWaiter) {
		return nil, authentity.ErrForbidden
	}

	return uc.orderRepo.UpdateItems(ctx, orderID, func(order *entity.Order) error {
		return order.RemoveItem(itemID)
	})
}

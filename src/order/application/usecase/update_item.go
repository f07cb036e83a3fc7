package usecase

import (
	"context"

	"github.com/google/uuid"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/application/request"
	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/port"
)

// UpdateItemUseCase caso de uso para editar una línea de un ticket abierto
type UpdateItemUseCase struct {
	orderRepo port.OrderRepository
}

// NewUpdateItemUseCase crea una nueva instancia del caso de uso
func NewUpdateItemUseCase(orderRepo port.OrderRepository) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		orderRepo: orderRepo,
	}
}

// Execute cambia cantidad y/o notas de la línea. El subtotal de la línea
// se recalcula del precio unitario congelado, nunca del menú actual.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, principal authentity.Principal, orderID, itemID uuid.UUID, req *request.UpdateItemRequest) (*entity.Order, error) {
	if !principal.HasAnyRole(authentity.RoleAdmin, authentity.RoleCashier, authentity.RoleWaiter) {
		return nil, authentity.ErrForbidden
	}

	return uc.orderRepo.UpdateItems(ctx, orderID, func(order *entity.Order) error {
		return order.UpdateItem(itemID, req.Quantity, req.Notes)
	})
}

package usecase

import (
	"context"

	"github.com/google/uuid"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	menuport "github.com/Jangel21/restaurante-app/src/menu/domain/port"
	"github.com/Jangel21/restaurante-app/src/order/application/request"
	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/port"
)

// AddItemsUseCase caso de uso para agregar líneas a un ticket abierto
type AddItemsUseCase struct {
	orderRepo port.OrderRepository
	menuRepo  menuport.MenuItemRepository
}

// NewAddItemsUseCase crea una nueva instancia del caso de uso
func NewAddItemsUseCase(orderRepo port.OrderRepository, menuRepo menuport.MenuItemRepository) *AddItemsUseCase {
	return &AddItemsUseCase{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
	}
}

// Execute agrega las líneas solicitadas al ticket. El lote se resuelve
// completo contra el menú antes de tocar la orden; la mutación corre con
// la fila de la orden bloqueada y recalcula totales en la misma transacción.
func (uc *AddItemsUseCase) Execute(ctx context.Context, principal authentity.Principal, orderID uuid.UUID, req *request.AddItemsRequest) (*entity.Order, error) {
	if !principal.HasAnyRole(authentity.RoleAdmin, authentity.RoleCashier, authentity.RoleWaiter) {
		return nil, authentity.ErrForbidden
	}

	if len(req.Items) == 0 {
		return nil, entity.ErrItemsRequired
	}

	items, err := buildOrderItems(ctx, uc.menuRepo, orderID, req.Items)
	if err != nil {
		return nil, err
	}

	return uc.orderRepo.UpdateItems(ctx, orderID, func(order *entity.Order) error {
		return order.AddItems(items)
	})
}

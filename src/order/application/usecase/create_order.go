package usecase

import (
	"context"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	menuport "github.com/Jangel21/restaurante-app/src/menu/domain/port"
	"github.com/Jangel21/restaurante-app/src/order/application/request"
	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/port"
)

// CreateOrderUseCase caso de uso para abrir un ticket
type CreateOrderUseCase struct {
	orderRepo port.OrderRepository
	menuRepo  menuport.MenuItemRepository
}

// NewCreateOrderUseCase crea una nueva instancia del caso de uso
func NewCreateOrderUseCase(orderRepo port.OrderRepository, menuRepo menuport.MenuItemRepository) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
	}
}

// Execute abre un ticket nuevo. Todo se valida en memoria antes de tocar
// la base: si algo falla no queda ninguna orden parcial persistida.
// El número de ticket lo asigna el repositorio dentro de la transacción
// de creación.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, principal authentity.Principal, req *request.CreateOrderRequest) (*entity.Order, error) {
	if !principal.HasAnyRole(authentity.RoleAdmin, authentity.RoleCashier, authentity.RoleWaiter) {
		return nil, authentity.ErrForbidden
	}

	// 1. Crear el aggregate en memoria (valida tipo y datos de entrega)
	order, err := entity.NewOrder(req.CustomerName, entity.OrderType(req.OrderType), req.DeliveryPhone, req.DeliveryAddress, principal.UserID)
	if err != nil {
		return nil, err
	}

	// 2. Resolver las líneas iniciales contra el menú (todo o nada)
	if len(req.Items) > 0 {
		items, err := buildOrderItems(ctx, uc.menuRepo, order.ID, req.Items)
		if err != nil {
			return nil, err
		}
		if err := order.AddItems(items); err != nil {
			return nil, err
		}
	}

	// 3. Persistir orden y líneas; el contador de tickets corre en la misma transacción
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

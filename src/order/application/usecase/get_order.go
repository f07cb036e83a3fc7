package usecase

import (
	"context"

	"github.com/google/uuid"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/port"
)

// GetOrderUseCase caso de uso para consultar un ticket con sus líneas
type GetOrderUseCase struct {
	orderRepo port.OrderRepository
}

// NewGetOrderUseCase crea una nueva instancia del caso de uso
func NewGetOrderUseCase(orderRepo port.OrderRepository) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute carga el aggregate completo
func (uc *GetOrderUseCase) Execute(ctx context.Context, principal authentity.Principal, orderID uuid.UUID) (*entity.Order, error) {
	if !principal.HasAnyRole(authentity.RoleAdmin, authentity.RoleCashier, authentity.RoleWaiter) {
		return nil, authentity.ErrForbidden
	}

	return uc.orderRepo.FindByID(ctx, orderID)
}

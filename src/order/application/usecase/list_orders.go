package usecase

import (
	"context"
	"fmt"
	"time"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/port"
)

// ListOrdersUseCase caso de uso para listar tickets con filtros opcionales
type ListOrdersUseCase struct {
	orderRepo port.OrderRepository
}

// NewListOrdersUseCase crea una nueva instancia del caso de uso
func NewListOrdersUseCase(orderRepo port.OrderRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
	}
}

// Execute lista las órdenes. date con formato YYYY-MM-DD y status son opcionales.
func (uc *ListOrdersUseCase) Execute(ctx context.Context, principal authentity.Principal, dateStr, statusStr string) ([]*entity.Order, error) {
	if !principal.HasAnyRole(authentity.RoleAdmin, authentity.RoleCashier) {
		return nil, authentity.ErrForbidden
	}

	filter := port.ListFilter{}

	if dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", entity.ErrInvalidDate, dateStr)
		}
		filter.Date = &date
	}

	if statusStr != "" {
		filter.Status = entity.OrderStatus(statusStr)
	}

	return uc.orderRepo.List(ctx, filter)
}

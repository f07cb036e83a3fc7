package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/menu/application/request"
	"github.com/Jangel21/restaurante-app/src/menu/domain/entity"
	"github.com/Jangel21/restaurante-app/src/menu/domain/port"
)

// UpdateMenuItemUseCase caso de uso para editar un producto del menú.
// Cambiar precio o disponibilidad no afecta órdenes ya creadas: los
// items de orden llevan el precio congelado al momento de agregarse.
type UpdateMenuItemUseCase struct {
	menuRepo port.MenuItemRepository
}

// NewUpdateMenuItemUseCase crea una nueva instancia del caso de uso
func NewUpdateMenuItemUseCase(menuRepo port.MenuItemRepository) *UpdateMenuItemUseCase {
	return &UpdateMenuItemUseCase{
		menuRepo: menuRepo,
	}
}

// Execute aplica una actualización parcial al producto
func (uc *UpdateMenuItemUseCase) Execute(ctx context.Context, principal authentity.Principal, id uuid.UUID, req *request.UpdateMenuItemRequest) (*entity.MenuItem, error) {
	if !principal.HasAnyRole(authentity.RoleAdmin) {
		return nil, authentity.ErrForbidden
	}

	item, err := uc.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, entity.ErrNameRequired
		}
		item.Name = name
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, entity.ErrInvalidPrice
		}
		item.Price = *req.Price
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return nil, entity.ErrCategoryRequired
		}
		item.Category = category
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}

	item.UpdatedAt = time.Now()

	if err := uc.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

package usecase

import (
	"context"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/menu/application/request"
	"github.com/Jangel21/restaurante-app/src/menu/domain/entity"
	"github.com/Jangel21/restaurante-app/src/menu/domain/port"
)

// CreateMenuItemUseCase caso de uso para dar de alta un producto
type CreateMenuItemUseCase struct {
	menuRepo port.MenuItemRepository
}

// NewCreateMenuItemUseCase crea una nueva instancia del caso de uso
func NewCreateMenuItemUseCase(menuRepo port.MenuItemRepository) *CreateMenuItemUseCase {
	return &CreateMenuItemUseCase{
		menuRepo: menuRepo,
	}
}

// Execute valida el rol del principal y crea el producto
func (uc *CreateMenuItemUseCase) Execute(ctx context.Context, principal authentity.Principal, req *request.CreateMenuItemRequest) (*entity.MenuItem, error) {
	if !principal.HasAnyRole(authentity.RoleAdmin) {
		return nil, authentity.ErrForbidden
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item, err := entity.NewMenuItem(req.Name, req.Price, req.Category, req.Description, req.ImageURL, available)
	if err != nil {
		return nil, err
	}

	if err := uc.menuRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/Jangel21/restaurante-app/src/menu/domain/entity"
	"github.com/Jangel21/restaurante-app/src/menu/domain/port"
)

// GetMenuItemUseCase caso de uso para obtener un producto del menú
type GetMenuItemUseCase struct {
	menuRepo port.MenuItemRepository
}

// NewGetMenuItemUseCase crea una nueva instancia del caso de uso
func NewGetMenuItemUseCase(menuRepo port.MenuItemRepository) *GetMenuItemUseCase {
	return &GetMenuItemUseCase{
		menuRepo: menuRepo,
	}
}

// Execute busca un producto por su ID
func (uc *GetMenuItemUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	return uc.menuRepo.FindByID(ctx, id)
}

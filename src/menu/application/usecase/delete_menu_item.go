package usecase

import (
	"context"

	"github.com/google/uuid"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/menu/domain/port"
)

// DeleteMenuItemUseCase caso de uso para eliminar un producto del menú
type DeleteMenuItemUseCase struct {
	menuRepo port.MenuItemRepository
}

// NewDeleteMenuItemUseCase crea una nueva instancia del caso de uso
func NewDeleteMenuItemUseCase(menuRepo port.MenuItemRepository) *DeleteMenuItemUseCase {
	return &DeleteMenuItemUseCase{
		menuRepo: menuRepo,
	}
}

// Execute valida el rol del principal y elimina el producto
func (uc *DeleteMenuItemUseCase) Execute(ctx context.Context, principal authentity.Principal, id uuid.UUID) error {
	if !principal.HasAnyRole(authentity.RoleAdmin) {
		return authentity.ErrForbidden
	}

	if _, err := uc.menuRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return uc.menuRepo.Delete(ctx, id)
}

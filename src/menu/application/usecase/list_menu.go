package usecase

import (
	"context"

	"github.com/Jangel21/restaurante-app/src/menu/domain/entity"
	"github.com/Jangel21/restaurante-app/src/menu/domain/port"
)

// ListMenuUseCase caso de uso para consultar el menú disponible
type ListMenuUseCase struct {
	menuRepo port.MenuItemRepository
}

// NewListMenuUseCase crea una nueva instancia del caso de uso
func NewListMenuUseCase(menuRepo port.MenuItemRepository) *ListMenuUseCase {
	return &ListMenuUseCase{
		menuRepo: menuRepo,
	}
}

// Execute devuelve los productos disponibles.
// El valor "Todos" en category equivale a no filtrar.
func (uc *ListMenuUseCase) Execute(ctx context.Context, category string) ([]*entity.MenuItem, error) {
	if category == "Todos" {
		category = ""
	}
	return uc.menuRepo.List(ctx, category)
}

// Categories devuelve las categorías registradas en el menú.
func (uc *ListMenuUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.menuRepo.Categories(ctx)
}

package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/Jangel21/restaurante-app/src/menu/domain/entity"
)

// MenuItemRepository define los métodos para persistir el catálogo del menú
type MenuItemRepository interface {
	// List devuelve los productos disponibles, opcionalmente filtrados por categoría.
	List(ctx context.Context, category string) ([]*entity.MenuItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	Save(ctx context.Context, item *entity.MenuItem) error
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	Categories(ctx context.Context) ([]string, error)
}

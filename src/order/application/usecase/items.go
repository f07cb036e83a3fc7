package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	menuentity "github.com/Jangel21/restaurante-app/src/menu/domain/entity"
	menuport "github.com/Jangel21/restaurante-app/src/menu/domain/port"
	"github.com/Jangel21/restaurante-app/src/order/application/request"
	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
)

// buildOrderItems resuelve cada línea solicitada contra el menú y congela
// su precio unitario. Todo o nada: el primer producto inexistente o no
// disponible aborta el lote completo nombrando al producto ofensor.
func buildOrderItems(ctx context.Context, menuRepo menuport.MenuItemRepository, orderID uuid.UUID, reqs []request.OrderItemRequest) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0, len(reqs))

	for _, itemReq := range reqs {
		menuItem, err := menuRepo.FindByID(ctx, itemReq.MenuItemID)
		if err != nil {
			if errors.Is(err, menuentity.ErrMenuItemNotFound) {
				return nil, fmt.Errorf("%w: %s", entity.ErrProductUnavailable, itemReq.MenuItemID)
			}
			// Una falla de infraestructura no es un producto no disponible
			return nil, fmt.Errorf("error resolviendo producto %s: %w", itemReq.MenuItemID, err)
		}
		if !menuItem.Available {
			return nil, fmt.Errorf("%w: %s", entity.ErrProductUnavailable, itemReq.MenuItemID)
		}

		item, err := entity.NewOrderItem(orderID, menuItem.ID, menuItem.Name, menuItem.Price, itemReq.Quantity, itemReq.Notes)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return items, nil
}

package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Jangel21/restaurante-app/src/shared/domain/money"
)

// OrderItem representa una línea de una orden (Entity dentro del Aggregate).
// El precio unitario se congela al momento de agregar la línea: ediciones
// posteriores del producto en el menú no la afectan.
type OrderItem struct {
	ID           uuid.UUID       `json:"id"`
	OrderID      uuid.UUID       `json:"order_id"`
	MenuItemID   uuid.UUID       `json:"menu_item_id"`
	MenuItemName string          `json:"menu_item_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Notes        string          `json:"notes,omitempty"`
}

// NewOrderItem crea una línea con el precio congelado del producto.
func NewOrderItem(orderID, menuItemID uuid.UUID, menuItemName string, unitPrice decimal.Decimal, quantity int, notes string) (*OrderItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	return &OrderItem{
		ID:           uuid.New(),
		OrderID:      orderID,
		MenuItemID:   menuItemID,
		MenuItemName: menuItemName,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		Subtotal:     money.LineSubtotal(unitPrice, quantity),
		Notes:        notes,
	}, nil
}

// SetQuantity cambia la cantidad y recalcula el subtotal de la línea
// a partir del precio unitario congelado.
func (i *OrderItem) SetQuantity(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	i.Quantity = quantity
	i.Subtotal = money.LineSubtotal(i.UnitPrice, quantity)
	return nil
}

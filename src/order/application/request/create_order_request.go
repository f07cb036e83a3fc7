package request

import "github.com/google/uuid"

// OrderItemRequest es una línea solicitada por el cliente.
// El precio nunca viene del cliente: se congela del menú en el servidor.
type OrderItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
	Notes      string    `json:"notes"`
}

// CreateOrderRequest es el cuerpo para abrir un ticket
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	OrderType       string             `json:"order_type"`
	DeliveryPhone   string             `json:"delivery_phone"`
	DeliveryAddress string             `json:"delivery_address"`
	Items           []OrderItemRequest `json:"items"`
}

package request

// AddItemsRequest es el cuerpo para agregar líneas a un ticket abierto
type AddItemsRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// UpdateItemRequest es el cuerpo para editar una línea.
// Los campos nil no se modifican.
type UpdateItemRequest struct {
	Quantity *int    `json:"quantity"`
	Notes    *string `json:"notes"`
}

// CompleteOrderRequest es el cuerpo para cerrar un ticket.
// PaymentMethod vacío conserva el método original de la orden.
type CompleteOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
}

package entity

import "errors"

var (
	// Errores de validación (rechazados antes de persistir nada)
	ErrInvalidOrderType        = errors.New("order_type must be local, takeout or delivery")
	ErrInvalidPaymentMethod    = errors.New("payment_method must be cash, card or transfer")
	ErrInvalidQuantity         = errors.New("quantity must be greater than 0")
	ErrDeliveryContactRequired = errors.New("delivery orders require phone and address")
	ErrItemsRequired           = errors.New("se requieren items")
	ErrInvalidDate             = errors.New("invalid date format, expected YYYY-MM-DD")

	// Referencias inexistentes
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")

	// El producto existe pero no está a la venta; aborta el lote completo
	ErrProductUnavailable = errors.New("producto no disponible")

	// Conflicto de estado: la orden no está abierta o ya es terminal
	ErrOrderNotOpen = errors.New("order is not open")
)

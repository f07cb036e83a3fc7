package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Jangel21/restaurante-app/src/shared/domain/money"
)

// OrderStatus representa el estado de una orden
type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "open"      // ticket abierto, acepta ediciones
	OrderStatusCompleted OrderStatus = "completed" // terminal
	OrderStatusCancelled OrderStatus = "cancelled" // terminal
)

// OrderType representa el tipo de orden
type OrderType string

const (
	OrderTypeLocal    OrderType = "local"
	OrderTypeTakeout  OrderType = "takeout"
	OrderTypeDelivery OrderType = "delivery"
)

// IsValid indica si el tipo de orden es uno de los enumerados.
func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypeLocal, OrderTypeTakeout, OrderTypeDelivery:
		return true
	}
	return false
}

// PaymentMethod representa el método de pago de una orden
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// IsValid indica si el método de pago es uno de los enumerados.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// Order representa un ticket (Aggregate Root).
// Los totales son derivados: nunca los fija el llamador, siempre salen
// de RecomputeTotals sobre las líneas actuales.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	TicketNumber    int64           `json:"ticket_number"`
	CustomerName    string          `json:"customer_name"`
	OrderType       OrderType       `json:"order_type"`
	DeliveryPhone   string          `json:"delivery_phone,omitempty"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	IVA             decimal.Decimal `json:"iva"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	Printed         bool            `json:"printed"`
	CreatedBy       uuid.UUID       `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	Items           []OrderItem     `json:"items"`
}

// NewOrder crea un ticket abierto con totales en cero.
// Valida tipo de orden y datos de entrega antes de que exista nada persistible.
func NewOrder(customerName string, orderType OrderType, deliveryPhone, deliveryAddress string, createdBy uuid.UUID) (*Order, error) {
	if orderType == "" {
		orderType = OrderTypeLocal
	}
	if !orderType.IsValid() {
		return nil, ErrInvalidOrderType
	}

	if orderType == OrderTypeDelivery {
		if strings.TrimSpace(deliveryPhone) == "" || strings.TrimSpace(deliveryAddress) == "" {
			return nil, ErrDeliveryContactRequired
		}
	}

	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		customerName = "Cliente General"
	}

	return &Order{
		ID:              uuid.New(),
		CustomerName:    customerName,
		OrderType:       orderType,
		DeliveryPhone:   deliveryPhone,
		DeliveryAddress: deliveryAddress,
		Subtotal:        decimal.Zero,
		IVA:             decimal.Zero,
		Total:           decimal.Zero,
		Status:          OrderStatusOpen,
		PaymentMethod:   PaymentCash,
		CreatedBy:       createdBy,
		CreatedAt:       time.Now(),
	}, nil
}

// AddItems agrega líneas al ticket y recalcula totales.
// Solo válido con el ticket abierto.
func (o *Order) AddItems(items []OrderItem) error {
	if o.Status != OrderStatusOpen {
		return ErrOrderNotOpen
	}

	for i := range items {
		items[i].OrderID = o.ID
	}
	o.Items = append(o.Items, items...)
	o.RecomputeTotals()
	return nil
}

// UpdateItem cambia cantidad y/o notas de una línea y recalcula totales.
// quantity nil deja la cantidad; notes nil deja las notas.
func (o *Order) UpdateItem(itemID uuid.UUID, quantity *int, notes *string) error {
	if o.Status != OrderStatusOpen {
		return ErrOrderNotOpen
	}

	for i := range o.Items {
		if o.Items[i].ID != itemID {
			continue
		}
		if quantity != nil {
			if err := o.Items[i].SetQuantity(*quantity); err != nil {
				return err
			}
		}
		if notes != nil {
			o.Items[i].Notes = *notes
		}
		o.RecomputeTotals()
		return nil
	}

	return ErrOrderItemNotFound
}

// RemoveItem elimina una línea del ticket y recalcula totales.
func (o *Order) RemoveItem(itemID uuid.UUID) error {
	if o.Status != OrderStatusOpen {
		return ErrOrderNotOpen
	}

	for i := range o.Items {
		if o.Items[i].ID == itemID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			o.RecomputeTotals()
			return nil
		}
	}

	return ErrOrderItemNotFound
}

// RecomputeTotals deriva subtotal, IVA y total de las líneas actuales.
// Es idempotente: aplicarla dos veces sobre las mismas líneas da lo mismo.
func (o *Order) RecomputeTotals() {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.Subtotal)
	}

	o.Subtotal = money.Round2(subtotal)
	o.IVA = money.IVA(o.Subtotal)
	o.Total = money.Round2(o.Subtotal.Add(o.IVA))
}

// Complete cierra el ticket con el método de pago final.
// paymentMethod vacío conserva el método actual de la orden.
func (o *Order) Complete(paymentMethod PaymentMethod, now time.Time) error {
	if o.Status != OrderStatusOpen {
		return ErrOrderNotOpen
	}

	if paymentMethod != "" {
		if !paymentMethod.IsValid() {
			return ErrInvalidPaymentMethod
		}
		o.PaymentMethod = paymentMethod
	}

	o.Status = OrderStatusCompleted
	o.CompletedAt = &now
	return nil
}

// Cancel cancela el ticket. No toca totales ni ventas diarias.
func (o *Order) Cancel() error {
	if o.Status != OrderStatusOpen {
		return ErrOrderNotOpen
	}
	o.Status = OrderStatusCancelled
	return nil
}

// FindItem busca una línea por su ID.
func (o *Order) FindItem(itemID uuid.UUID) (*OrderItem, error) {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			return &o.Items[i], nil
		}
	}
	return nil, ErrOrderItemNotFound
}

// TicketFilename es el nombre del PDF del ticket, p. ej. ticket_0042.pdf
func (o *Order) TicketFilename() string {
	return fmt.Sprintf("ticket_%04d.pdf", o.TicketNumber)
}

package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func mustItem(t *testing.T, order *Order, name string, price string, qty int) OrderItem {
	t.Helper()
	item, err := NewOrderItem(order.ID, uuid.New(), name, decimal.RequireFromString(price), qty, "")
	if err != nil {
		t.Fatalf("NewOrderItem(%s): %v", name, err)
	}
	return *item
}

func assertTotals(t *testing.T, order *Order, subtotal, iva, total string) {
	t.Helper()
	if got, want := order.Subtotal, decimal.RequireFromString(subtotal); !got.Equal(want) {
		t.Fatalf("subtotal = %s, quería %s", got, want)
	}
	if got, want := order.IVA, decimal.RequireFromString(iva); !got.Equal(want) {
		t.Fatalf("iva = %s, quería %s", got, want)
	}
	if got, want := order.Total, decimal.RequireFromString(total); !got.Equal(want) {
		t.Fatalf("total = %s, quería %s", got, want)
	}
}

func TestNewOrderDefaults(t *testing.T) {
	order, err := NewOrder("", "", "", "", uuid.New())
	if err != nil {
		t.Fatalf("NewOrder: %v", err)
	}

	if order.CustomerName != "Cliente General" {
		t.Errorf("customer = %q, quería Cliente General", order.CustomerName)
	}
	if order.OrderType != OrderTypeLocal {
		t.Errorf("order_type = %q, quería local", order.OrderType)
	}
	if order.Status != OrderStatusOpen {
		t.Errorf("status = %q, quería open", order.Status)
	}
	if order.PaymentMethod != PaymentCash {
		t.Errorf("payment_method = %q, quería cash", order.PaymentMethod)
	}
	assertTotals(t, order, "0", "0", "0")
}

func TestNewOrderValidation(t *testing.T) {
	tests := []struct {
		name      string
		orderType OrderType
		phone     string
		address   string
		wantErr   error
	}{
		{"tipo inválido", "drive-thru", "", "", ErrInvalidOrderType},
		{"delivery sin teléfono", OrderTypeDelivery, "", "Calle 5 #10", ErrDeliveryContactRequired},
		{"delivery sin dirección", OrderTypeDelivery, "555-0101", "", ErrDeliveryContactRequired},
		{"delivery completo", OrderTypeDelivery, "555-0101", "Calle 5 #10", nil},
		{"takeout sin contacto", OrderTypeTakeout, "", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOrder("Ana", tt.orderType, tt.phone, tt.address, uuid.New())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewOrder() error = %v, quería %v", err, tt.wantErr)
			}
		})
	}
}

// Sigue el ciclo completo de edición de un ticket: dos tacos, luego una
// agua, luego se quitan los tacos. Los totales se derivan en cada paso.
func TestOrderItemEditingRecomputesTotals(t *testing.T) {
	order, err := NewOrder("Ana", OrderTypeLocal, "", "", uuid.New())
	if err != nil {
		t.Fatalf("NewOrder: %v", err)
	}

	tacos := mustItem(t, order, "Tacos al Pastor", "45.00", 2)
	if err := order.AddItems([]OrderItem{tacos}); err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	assertTotals(t, order, "90.00", "14.40", "104.40")

	agua := mustItem(t, order, "Agua de Horchata", "25.00", 1)
	if err := order.AddItems([]OrderItem{agua}); err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	assertTotals(t, order, "115.00", "18.40", "133.40")

	if err := order.RemoveItem(tacos.ID); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	assertTotals(t, order, "25.00", "4.00", "29.00")

	if len(order.Items) != 1 || order.Items[0].MenuItemName != "Agua de Horchata" {
		t.Fatalf("items restantes = %+v", order.Items)
	}
}

func TestOrderUpdateItem(t *testing.T) {
	order, _ := NewOrder("Ana", OrderTypeLocal, "", "", uuid.New())
	item := mustItem(t, order, "Tacos al Pastor", "45.00", 2)
	if err := order.AddItems([]OrderItem{item}); err != nil {
		t.Fatalf("AddItems: %v", err)
	}

	qty := 3
	notes := "sin cebolla"
	if err := order.UpdateItem(item.ID, &qty, &notes); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	assertTotals(t, order, "135.00", "21.60", "156.60")

	updated, err := order.FindItem(item.ID)
	if err != nil {
		t.Fatalf("FindItem: %v", err)
	}
	if updated.Quantity != 3 || updated.Notes != "sin cebolla" {
		t.Fatalf("línea = %+v", updated)
	}

	// nil deja cada campo como estaba
	if err := order.UpdateItem(item.ID, nil, nil); err != nil {
		t.Fatalf("UpdateItem sin cambios: %v", err)
	}
	assertTotals(t, order, "135.00", "21.60", "156.60")

	zero := 0
	if err := order.UpdateItem(item.ID, &zero, nil); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("UpdateItem(0) error = %v, quería ErrInvalidQuantity", err)
	}

	if err := order.UpdateItem(uuid.New(), &qty, nil); !errors.Is(err, ErrOrderItemNotFound) {
		t.Fatalf("UpdateItem(desconocido) error = %v, quería ErrOrderItemNotFound", err)
	}
}

func TestOrderEditingRequiresOpenStatus(t *testing.T) {
	order, _ := NewOrder("Ana", OrderTypeLocal, "", "", uuid.New())
	item := mustItem(t, order, "Tacos al Pastor", "45.00", 2)
	if err := order.AddItems([]OrderItem{item}); err != nil {
		t.Fatalf("AddItems: %v", err)
	}

	if err := order.Complete(PaymentCard, time.Now()); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	qty := 5
	extra := mustItem(t, order, "Quesadillas", "40.00", 1)
	if err := order.AddItems([]OrderItem{extra}); !errors.Is(err, ErrOrderNotOpen) {
		t.Errorf("AddItems tras completar: %v", err)
	}
	if err := order.UpdateItem(item.ID, &qty, nil); !errors.Is(err, ErrOrderNotOpen) {
		t.Errorf("UpdateItem tras completar: %v", err)
	}
	if err := order.RemoveItem(item.ID); !errors.Is(err, ErrOrderNotOpen) {
		t.Errorf("RemoveItem tras completar: %v", err)
	}

	// El rechazo no altera los totales ya cerrados
	assertTotals(t, order, "90.00", "14.40", "104.40")
}

func TestOrderCompleteTransitions(t *testing.T) {
	order, _ := NewOrder("Ana", OrderTypeLocal, "", "", uuid.New())
	now := time.Now()

	if err := order.Complete("bitcoin", now); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("Complete(bitcoin) error = %v, quería ErrInvalidPaymentMethod", err)
	}
	if order.Status != OrderStatusOpen {
		t.Fatalf("un método inválido no debe cerrar la orden, status = %q", order.Status)
	}

	// Vacío conserva el método por defecto
	if err := order.Complete("", now); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if order.PaymentMethod != PaymentCash {
		t.Errorf("payment_method = %q, quería cash", order.PaymentMethod)
	}
	if order.Status != OrderStatusCompleted || order.CompletedAt == nil {
		t.Fatalf("status = %q, completed_at = %v", order.Status, order.CompletedAt)
	}

	if err := order.Complete(PaymentCard, now); !errors.Is(err, ErrOrderNotOpen) {
		t.Errorf("Complete doble: %v", err)
	}
	if err := order.Cancel(); !errors.Is(err, ErrOrderNotOpen) {
		t.Errorf("Cancel tras completar: %v", err)
	}
}

func TestOrderCancel(t *testing.T) {
	order, _ := NewOrder("Ana", OrderTypeLocal, "", "", uuid.New())
	if err := order.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if order.Status != OrderStatusCancelled {
		t.Fatalf("status = %q, quería cancelled", order.Status)
	}
	if err := order.Complete(PaymentCash, time.Now()); !errors.Is(err, ErrOrderNotOpen) {
		t.Errorf("Complete tras cancelar: %v", err)
	}
}

func TestRecomputeTotalsIsIdempotent(t *testing.T) {
	order, _ := NewOrder("Ana", OrderTypeLocal, "", "", uuid.New())
	item := mustItem(t, order, "Pozole Rojo", "70.00", 3)
	if err := order.AddItems([]OrderItem{item}); err != nil {
		t.Fatalf("AddItems: %v", err)
	}

	order.RecomputeTotals()
	order.RecomputeTotals()
	assertTotals(t, order, "210.00", "33.60", "243.60")
}

func TestTicketFilename(t *testing.T) {
	order, _ := NewOrder("Ana", OrderTypeLocal, "", "", uuid.New())
	order.TicketNumber = 42
	if got := order.TicketFilename(); got != "ticket_0042.pdf" {
		t.Fatalf("TicketFilename() = %q", got)
	}
}

// Las líneas conservan su orden de alta a través de las ediciones: el
// ticket impreso lista los platillos en el orden en que se pidieron.
func TestOrderItemsKeepInsertionOrder(t *testing.T) {
	order, _ := NewOrder("Ana", OrderTypeLocal, "", "", uuid.New())
	tacos := mustItem(t, order, "Tacos al Pastor", "45.00", 1)
	sopes := mustItem(t, order, "Sopes", "50.00", 1)
	agua := mustItem(t, order, "Agua de Jamaica", "25.00", 1)
	if err := order.AddItems([]OrderItem{tacos, sopes, agua}); err != nil {
		t.Fatalf("AddItems: %v", err)
	}

	if err := order.RemoveItem(sopes.ID); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	flan := mustItem(t, order, "Flan Napolitano", "40.00", 1)
	if err := order.AddItems([]OrderItem{flan}); err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	qty := 2
	if err := order.UpdateItem(tacos.ID, &qty, nil); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	want := []string{"Tacos al Pastor", "Agua de Jamaica", "Flan Napolitano"}
	if len(order.Items) != len(want) {
		t.Fatalf("items = %d, quería %d", len(order.Items), len(want))
	}
	for i, name := range want {
		if order.Items[i].MenuItemName != name {
			t.Errorf("items[%d] = %q, quería %q", i, order.Items[i].MenuItemName, name)
		}
	}
}

func TestNewOrderItemValidation(t *testing.T) {
	if _, err := NewOrderItem(uuid.New(), uuid.New(), "Tacos", decimal.RequireFromString("45.00"), 0, ""); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("NewOrderItem(0) error = %v, quería ErrInvalidQuantity", err)
	}
}

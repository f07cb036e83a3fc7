package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func completedOrder(t *testing.T, price string, qty int, method PaymentMethod) *Order {
	t.Helper()
	order, err := NewOrder("Ana", OrderTypeLocal, "", "", uuid.New())
	if err != nil {
		t.Fatalf("NewOrder: %v", err)
	}
	if err := order.AddItems([]OrderItem{mustItem(t, order, "Platillo", price, qty)}); err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	if err := order.Complete(method, time.Now()); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	return order
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, quería %s", name, got, want)
	}
}

// Dos cierres en el mismo día: 100.00 en efectivo (total 116.00) y 50.00
// con tarjeta (total 58.00). El acumulado cuenta ambas órdenes y reparte
// cada total en el bucket de su método de pago.
func TestDailySalesAccumulate(t *testing.T) {
	sales := EmptyDailySales(time.Now())

	sales.Accumulate(completedOrder(t, "50.00", 2, PaymentCash))
	sales.Accumulate(completedOrder(t, "25.00", 2, PaymentCard))

	if sales.TotalOrders != 2 {
		t.Errorf("total_orders = %d, quería 2", sales.TotalOrders)
	}
	assertDecimal(t, "total_sales", sales.TotalSales, "174.00")
	assertDecimal(t, "total_iva", sales.TotalIVA, "24.00")
	assertDecimal(t, "cash_sales", sales.CashSales, "116.00")
	assertDecimal(t, "card_sales", sales.CardSales, "58.00")
	assertDecimal(t, "transfer_sales", sales.TransferSales, "0")
}

func TestDailySalesAccumulateTransferBucket(t *testing.T) {
	sales := EmptyDailySales(time.Now())

	sales.Accumulate(completedOrder(t, "100.00", 1, PaymentTransfer))

	if sales.TotalOrders != 1 {
		t.Errorf("total_orders = %d, quería 1", sales.TotalOrders)
	}
	assertDecimal(t, "transfer_sales", sales.TransferSales, "116.00")
	assertDecimal(t, "cash_sales", sales.CashSales, "0")
	assertDecimal(t, "card_sales", sales.CardSales, "0")
	assertDecimal(t, "total_sales", sales.TotalSales, "116.00")
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailySales es el acumulado de ventas de un día calendario.
// Sus campos son estrictamente aditivos: solo se incrementan cuando una
// orden pasa a completed, nunca se recalculan desde cero.
type DailySales struct {
	ID            uuid.UUID       `json:"id"`
	Date          time.Time       `json:"date"`
	TotalOrders   int             `json:"total_orders"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalIVA      decimal.Decimal `json:"total_iva"`
	CashSales     decimal.Decimal `json:"cash_sales"`
	CardSales     decimal.Decimal `json:"card_sales"`
	TransferSales decimal.Decimal `json:"transfer_sales"`
	CreatedAt     time.Time       `json:"created_at"`
}

// EmptyDailySales devuelve el acumulado en ceros para una fecha sin ventas.
func EmptyDailySales(date time.Time) *DailySales {
	return &DailySales{
		Date:          date,
		TotalSales:    decimal.Zero,
		TotalIVA:      decimal.Zero,
		CashSales:     decimal.Zero,
		CardSales:     decimal.Zero,
		TransferSales: decimal.Zero,
	}
}

// Accumulate suma una orden completada al acumulado: cuenta la orden,
// suma total e IVA, y suma el total al bucket de su método de pago.
func (s *DailySales) Accumulate(order *Order) {
	s.TotalOrders++
	s.TotalSales = s.TotalSales.Add(order.Total)
	s.TotalIVA = s.TotalIVA.Add(order.IVA)

	switch order.PaymentMethod {
	case PaymentCash:
		s.CashSales = s.CashSales.Add(order.Total)
	case PaymentCard:
		s.CardSales = s.CardSales.Add(order.Total)
	case PaymentTransfer:
		s.TransferSales = s.TransferSales.Add(order.Total)
	}
}

package response

import (
	"github.com/shopspring/decimal"
)

// DailyReportResponse es el resumen de ventas de un día calendario
type DailyReportResponse struct {
	Date          string          `json:"date"`
	TotalOrders   int             `json:"total_orders"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalIVA      decimal.Decimal `json:"total_iva"`
	CashSales     decimal.Decimal `json:"cash_sales"`
	CardSales     decimal.Decimal `json:"card_sales"`
	TransferSales decimal.Decimal `json:"transfer_sales"`
}

// BestSellerResponse es una posición del ranking de platillos más vendidos
type BestSellerResponse struct {
	MenuItemName string          `json:"menu_item_name"`
	Category     string          `json:"category"`
	TotalSold    int             `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// CategorySalesResponse agrupa las ventas por categoría del menú
type CategorySalesResponse struct {
	Category     string          `json:"category"`
	ItemsSold    int             `json:"items_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/report/application/response"
)

// SalesByCategoryUseCase agrupa las ventas completadas por categoría del menú.
type SalesByCategoryUseCase struct {
	db *sql.DB
}

func NewSalesByCategoryUseCase(db *sql.DB) *SalesByCategoryUseCase {
	return &SalesByCategoryUseCase{db: db}
}

// Execute devuelve las ventas por categoría de los últimos N días (7 por defecto).
func (uc *SalesByCategoryUseCase) Execute(ctx context.Context, principal authentity.Principal, days int) ([]response.CategorySalesResponse, error) {
	if !principal.HasAnyRole(authentity.RoleAdmin) {
		return nil, authentity.ErrForbidden
	}

	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	query := `
		SELECT COALESCE(mi.category, 'Sin categoría'),
		       SUM(oi.quantity) AS items_sold,
		       SUM(oi.subtotal) AS total_revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE o.status = 'completed' AND o.completed_at >= $1
		GROUP BY mi.category
		ORDER BY total_revenue DESC
	`

	rows, err := uc.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("error consultando ventas por categoría: %w", err)
	}
	defer rows.Close()

	sales := []response.CategorySalesResponse{}
	for rows.Next() {
		var item response.CategorySalesResponse
		var revenue string
		if err := rows.Scan(&item.Category, &item.ItemsSold, &revenue); err != nil {
			return nil, fmt.Errorf("error escaneando ventas por categoría: %w", err)
		}
		item.TotalRevenue, err = decimal.NewFromString(revenue)
		if err != nil {
			return nil, fmt.Errorf("error parseando total_revenue: %w", err)
		}
		sales = append(sales, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando ventas por categoría: %w", err)
	}

	return sales, nil
}

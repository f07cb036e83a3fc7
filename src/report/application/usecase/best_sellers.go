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

// BestSellersUseCase calcula el ranking de platillos más vendidos
// sobre las órdenes completadas de los últimos N días.
type BestSellersUseCase struct {
	db *sql.DB
}

func NewBestSellersUseCase(db *sql.DB) *BestSellersUseCase {
	return &BestSellersUseCase{db: db}
}

// Execute devuelve el top 10 de platillos. days por defecto es 7.
func (uc *BestSellersUseCase) Execute(ctx context.Context, principal authentity.Principal, days int) ([]response.BestSellerResponse, error) {
	if !principal.HasAnyRole(authentity.RoleAdmin) {
		return nil, authentity.ErrForbidden
	}

	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	query := `
		SELECT oi.menu_item_name,
		       COALESCE(mi.category, 'Sin categoría'),
		       SUM(oi.quantity) AS total_sold,
		       SUM(oi.subtotal) AS total_revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE o.status = 'completed' AND o.completed_at >= $1
		GROUP BY oi.menu_item_name, mi.category
		ORDER BY total_sold DESC
		LIMIT 10
	`

	rows, err := uc.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("error consultando más vendidos: %w", err)
	}
	defer rows.Close()

	sellers := []response.BestSellerResponse{}
	for rows.Next() {
		var item response.BestSellerResponse
		var revenue string
		if err := rows.Scan(&item.MenuItemName, &item.Category, &item.TotalSold, &revenue); err != nil {
			return nil, fmt.Errorf("error escaneando más vendidos: %w", err)
		}
		item.TotalRevenue, err = decimal.NewFromString(revenue)
		if err != nil {
			return nil, fmt.Errorf("error parseando total_revenue: %w", err)
		}
		sellers = append(sellers, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando más vendidos: %w", err)
	}

	return sellers, nil
}

package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
)

// DailySalesPostgresRepository implementa DailySalesRepository usando PostgreSQL
type DailySalesPostgresRepository struct {
	db *sql.DB
}

// NewDailySalesPostgresRepository crea una nueva instancia del repositorio
func NewDailySalesPostgresRepository(db *sql.DB) *DailySalesPostgresRepository {
	return &DailySalesPostgresRepository{
		db: db,
	}
}

// dateKey es la clave de calendario de la columna date.
// Se formatea en la zona horaria del valor, no en UTC: un cierre de la
// noche cae en el día del servidor, no en el día UTC siguiente.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FindByDate busca el acumulado de un día calendario.
// Para fechas sin ventas devuelve el acumulado en ceros.
func (r *DailySalesPostgresRepository) FindByDate(ctx context.Context, date time.Time) (*entity.DailySales, error) {
	query := `
		SELECT id, date, total_orders, total_sales, total_iva,
			cash_sales, card_sales, transfer_sales, created_at
		FROM daily_sales
		WHERE date = $1
	`

	sales := &entity.DailySales{}
	err := r.db.QueryRowContext(ctx, query, dateKey(date)).Scan(
		&sales.ID,
		&sales.Date,
		&sales.TotalOrders,
		&sales.TotalSales,
		&sales.TotalIVA,
		&sales.CashSales,
		&sales.CardSales,
		&sales.TransferSales,
		&sales.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return entity.EmptyDailySales(date), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding daily sales: %w", err)
	}

	return sales, nil
}

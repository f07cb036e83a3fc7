package usecase

import (
	"context"
	"fmt"
	"time"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	orderentity "github.com/Jangel21/restaurante-app/src/order/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/port"
	"github.com/Jangel21/restaurante-app/src/report/application/response"
)

// DailyReportUseCase arma el reporte de ventas de un día calendario
// a partir del acumulado de daily_sales.
type DailyReportUseCase struct {
	dailySalesRepo port.DailySalesRepository
}

func NewDailyReportUseCase(dailySalesRepo port.DailySalesRepository) *DailyReportUseCase {
	return &DailyReportUseCase{dailySalesRepo: dailySalesRepo}
}

// Execute devuelve el resumen del día indicado; sin fecha, el día de hoy.
func (uc *DailyReportUseCase) Execute(ctx context.Context, principal authentity.Principal, dateStr string) (*response.DailyReportResponse, error) {
	if !principal.HasAnyRole(authentity.RoleAdmin) {
		return nil, authentity.ErrForbidden
	}

	date := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", orderentity.ErrInvalidDate, dateStr)
		}
		date = parsed
	}

	sales, err := uc.dailySalesRepo.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo ventas diarias: %w", err)
	}

	return &response.DailyReportResponse{
		Date:          date.Format("2006-01-02"),
		TotalOrders:   sales.TotalOrders,
		TotalSales:    sales.TotalSales,
		TotalIVA:      sales.TotalIVA,
		CashSales:     sales.CashSales,
		CardSales:     sales.CardSales,
		TransferSales: sales.TransferSales,
	}, nil
}

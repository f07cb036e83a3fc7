package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	orderentity "github.com/Jangel21/restaurante-app/src/order/domain/entity"
	"github.com/Jangel21/restaurante-app/src/report/application/usecase"
	"github.com/Jangel21/restaurante-app/src/shared/infrastructure/middleware"
)

// ReportController maneja las peticiones HTTP de reportes (solo admin)
type ReportController struct {
	dailyReportUC     *usecase.DailyReportUseCase
	bestSellersUC     *usecase.BestSellersUseCase
	salesByCategoryUC *usecase.SalesByCategoryUseCase
}

func NewReportController(
	dailyReportUC *usecase.DailyReportUseCase,
	bestSellersUC *usecase.BestSellersUseCase,
	salesByCategoryUC *usecase.SalesByCategoryUseCase,
) *ReportController {
	return &ReportController{
		dailyReportUC:     dailyReportUC,
		bestSellersUC:     bestSellersUC,
		salesByCategoryUC: salesByCategoryUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	reports := router.Group("/reports", requireAuth, middleware.RequireRoles(authentity.RoleAdmin))
	{
		reports.GET("/daily", c.DailyReport)
		reports.GET("/best-sellers", c.BestSellers)
		reports.GET("/sales-by-category", c.SalesByCategory)
	}

	log.Println("Rutas Report disponibles:")
	log.Println("  GET /api/reports/daily")
	log.Println("  GET /api/reports/best-sellers")
	log.Println("  GET /api/reports/sales-by-category")
}

// DailyReport devuelve el resumen de ventas del día (?date=YYYY-MM-DD)
func (c *ReportController) DailyReport(ctx *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	report, err := c.dailyReportUC.Execute(ctx.Request.Context(), principal, ctx.Query("date"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// BestSellers devuelve el ranking de platillos más vendidos (?days=N)
func (c *ReportController) BestSellers(ctx *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sellers, err := c.bestSellersUC.Execute(ctx.Request.Context(), principal, c.daysParam(ctx))
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sellers)
}

// SalesByCategory devuelve las ventas agrupadas por categoría (?days=N)
func (c *ReportController) SalesByCategory(ctx *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sales, err := c.salesByCategoryUC.Execute(ctx.Request.Context(), principal, c.daysParam(ctx))
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sales)
}

func (c *ReportController) daysParam(ctx *gin.Context) int {
	days, err := strconv.Atoi(ctx.DefaultQuery("days", "7"))
	if err != nil || days <= 0 {
		return 7
	}
	return days
}

func (c *ReportController) handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, orderentity.ErrInvalidDate):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, authentity.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden", "message": "No tienes permisos para esta acción"})
	default:
		log.Printf("Error in report controller: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

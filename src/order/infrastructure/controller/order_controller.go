package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/application/request"
	"github.com/Jangel21/restaurante-app/src/order/application/usecase"
	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
	"github.com/Jangel21/restaurante-app/src/shared/infrastructure/middleware"
)

// OrderController maneja las peticiones HTTP para órdenes
type OrderController struct {
	createOrderUC    *usecase.CreateOrderUseCase
	getOrderUC       *usecase.GetOrderUseCase
	listOrdersUC     *usecase.ListOrdersUseCase
	addItemsUC       *usecase.AddItemsUseCase
	updateItemUC     *usecase.UpdateItemUseCase
	removeItemUC     *usecase.RemoveItemUseCase
	completeOrderUC  *usecase.CompleteOrderUseCase
	cancelOrderUC    *usecase.CancelOrderUseCase
	downloadTicketUC *usecase.DownloadTicketUseCase
}

// NewOrderController crea una nueva instancia del controlador
func NewOrderController(
	createOrderUC *usecase.CreateOrderUseCase,
	getOrderUC *usecase.GetOrderUseCase,
	listOrdersUC *usecase.ListOrdersUseCase,
	addItemsUC *usecase.AddItemsUseCase,
	updateItemUC *usecase.UpdateItemUseCase,
	removeItemUC *usecase.RemoveItemUseCase,
	completeOrderUC *usecase.CompleteOrderUseCase,
	cancelOrderUC *usecase.CancelOrderUseCase,
	downloadTicketUC *usecase.DownloadTicketUseCase,
) *OrderController {
	return &OrderController{
		createOrderUC:    createOrderUC,
		getOrderUC:       getOrderUC,
		listOrdersUC:     listOrdersUC,
		addItemsUC:       addItemsUC,
		updateItemUC:     updateItemUC,
		removeItemUC:     removeItemUC,
		completeOrderUC:  completeOrderUC,
		cancelOrderUC:    cancelOrderUC,
		downloadTicketUC: downloadTicketUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
// Todas requieren autenticación; los roles exactos los valida cada caso
// de uso además del middleware.
func (c *OrderController) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	orders := router.Group("/orders", requireAuth)
	{
		orders.POST("", c.CreateOrder)
		orders.GET("", middleware.RequireRoles(authentity.RoleAdmin, authentity.RoleCashier), c.ListOrders)
		orders.GET("/:order_id", c.GetOrder)
		orders.POST("/:order_id/items", c.AddItems)
		orders.PUT("/:order_id/items/:item_id", c.UpdateItem)
		orders.DELETE("/:order_id/items/:item_id", c.RemoveItem)
		orders.PUT("/:order_id/complete", middleware.RequireRoles(authentity.RoleAdmin, authentity.RoleCashier), c.CompleteOrder)
		orders.PUT("/:order_id/cancel", middleware.RequireRoles(authentity.RoleAdmin, authentity.RoleCashier), c.CancelOrder)
		orders.GET("/:order_id/ticket", middleware.RequireRoles(authentity.RoleAdmin, authentity.RoleCashier), c.DownloadTicket)
	}

	log.Println("Rutas Order disponibles:")
	log.Println("  POST   /api/orders")
	log.Println("  GET    /api/orders")
	log.Println("  GET    /api/orders/:order_id")
	log.Println("  POST   /api/orders/:order_id/items")
	log.Println("  PUT    /api/orders/:order_id/items/:item_id")
	log.Println("  DELETE /api/orders/:order_id/items/:item_id")
	log.Println("  PUT    /api/orders/:order_id/complete")
	log.Println("  PUT    /api/orders/:order_id/cancel")
	log.Println("  GET    /api/orders/:order_id/ticket")
}

// CreateOrder abre un ticket nuevo
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	order, err := c.createOrderUC.Execute(ctx.Request.Context(), principal, &req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, order)
}

// ListOrders lista los tickets (filtros ?date=YYYY-MM-DD y ?status=)
func (c *OrderController) ListOrders(ctx *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := c.listOrdersUC.Execute(ctx.Request.Context(), principal, ctx.Query("date"), ctx.Query("status"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	if orders == nil {
		orders = []*entity.Order{}
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrder devuelve un ticket con sus líneas
func (c *OrderController) GetOrder(ctx *gin.Context) {
	principal, orderID, ok := c.principalAndOrderID(ctx)
	if !ok {
		return
	}

	order, err := c.getOrderUC.Execute(ctx.Request.Context(), principal, orderID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// AddItems agrega líneas a un ticket abierto
func (c *OrderController) AddItems(ctx *gin.Context) {
	principal, orderID, ok := c.principalAndOrderID(ctx)
	if !ok {
		return
	}

	var req request.AddItemsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	order, err := c.addItemsUC.Execute(ctx.Request.Context(), principal, orderID, &req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// UpdateItem edita cantidad y/o notas de una línea
func (c *OrderController) UpdateItem(ctx *gin.Context) {
	principal, orderID, ok := c.principalAndOrderID(ctx)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(ctx.Param("item_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req request.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	order, err := c.updateItemUC.Execute(ctx.Request.Context(), principal, orderID, itemID, &req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// RemoveItem elimina una línea de un ticket abierto
func (c *OrderController) RemoveItem(ctx *gin.Context) {
	principal, orderID, ok := c.principalAndOrderID(ctx)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(ctx.Param("item_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	order, err := c.removeItemUC.Execute(ctx.Request.Context(), principal, orderID, itemID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// CompleteOrder cierra el ticket y acumula las ventas del día
func (c *OrderController) CompleteOrder(ctx *gin.Context) {
	principal, orderID, ok := c.principalAndOrderID(ctx)
	if !ok {
		return
	}

	// El cuerpo es opcional: sin él se conserva el método de pago original
	var req request.CompleteOrderRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	order, err := c.completeOrderUC.Execute(ctx.Request.Context(), principal, orderID, &req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// CancelOrder cancela el ticket
func (c *OrderController) CancelOrder(ctx *gin.Context) {
	principal, orderID, ok := c.principalAndOrderID(ctx)
	if !ok {
		return
	}

	order, err := c.cancelOrderUC.Execute(ctx.Request.Context(), principal, orderID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// DownloadTicket genera y descarga el ticket PDF de una orden
func (c *OrderController) DownloadTicket(ctx *gin.Context) {
	principal, orderID, ok := c.principalAndOrderID(ctx)
	if !ok {
		return
	}

	path, filename, err := c.downloadTicketUC.Execute(ctx.Request.Context(), principal, orderID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.FileAttachment(path, filename)
}

func (c *OrderController) principalAndOrderID(ctx *gin.Context) (authentity.Principal, uuid.UUID, bool) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return authentity.Principal{}, uuid.Nil, false
	}

	orderID, err := uuid.Parse(ctx.Param("order_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return authentity.Principal{}, uuid.Nil, false
	}

	return principal, orderID, true
}

// handleError traduce errores de dominio a códigos HTTP
func (c *OrderController) handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrOrderNotFound), errors.Is(err, entity.ErrOrderItemNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	case errors.Is(err, entity.ErrOrderNotOpen):
		ctx.JSON(http.StatusConflict, gin.H{"error": "La orden no está abierta"})
	case errors.Is(err, entity.ErrProductUnavailable):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidOrderType),
		errors.Is(err, entity.ErrInvalidPaymentMethod),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrDeliveryContactRequired),
		errors.Is(err, entity.ErrItemsRequired),
		errors.Is(err, entity.ErrInvalidDate):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, authentity.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden", "message": "No tienes permisos para esta acción"})
	default:
		log.Printf("Error in order controller: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/menu/application/request"
	"github.com/Jangel21/restaurante-app/src/menu/application/usecase"
	"github.com/Jangel21/restaurante-app/src/menu/domain/entity"
	"github.com/Jangel21/restaurante-app/src/shared/infrastructure/middleware"
)

// MenuController maneja las peticiones HTTP del catálogo del menú
type MenuController struct {
	listMenuUC       *usecase.ListMenuUseCase
	getMenuItemUC    *usecase.GetMenuItemUseCase
	createMenuItemUC *usecase.CreateMenuItemUseCase
	updateMenuItemUC *usecase.UpdateMenuItemUseCase
	deleteMenuItemUC *usecase.DeleteMenuItemUseCase
}

// NewMenuController crea una nueva instancia del controlador
func NewMenuController(
	listMenuUC *usecase.ListMenuUseCase,
	getMenuItemUC *usecase.GetMenuItemUseCase,
	createMenuItemUC *usecase.CreateMenuItemUseCase,
	updateMenuItemUC *usecase.UpdateMenuItemUseCase,
	deleteMenuItemUC *usecase.DeleteMenuItemUseCase,
) *MenuController {
	return &MenuController{
		listMenuUC:       listMenuUC,
		getMenuItemUC:    getMenuItemUC,
		createMenuItemUC: createMenuItemUC,
		updateMenuItemUC: updateMenuItemUC,
		deleteMenuItemUC: deleteMenuItemUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
// La consulta del menú es pública; las mutaciones requieren rol admin.
func (c *MenuController) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	menu := router.Group("/menu")
	{
		menu.GET("", c.ListMenu)
		menu.GET("/categories", c.ListCategories)
		menu.GET("/:item_id", c.GetMenuItem)

		admin := menu.Group("", requireAuth, middleware.RequireRoles(authentity.RoleAdmin))
		{
			admin.POST("", c.CreateMenuItem)
			admin.PUT("/:item_id", c.UpdateMenuItem)
			admin.DELETE("/:item_id", c.DeleteMenuItem)
		}
	}

	log.Println("Rutas Menu disponibles:")
	log.Println("  GET    /api/menu")
	log.Println("  GET    /api/menu/categories")
	log.Println("  GET    /api/menu/:item_id")
	log.Println("  POST   /api/menu")
	log.Println("  PUT    /api/menu/:item_id")
	log.Println("  DELETE /api/menu/:item_id")
}

// ListMenu devuelve los productos disponibles (filtro opcional ?category=)
func (c *MenuController) ListMenu(ctx *gin.Context) {
	items, err := c.listMenuUC.Execute(ctx.Request.Context(), ctx.Query("category"))
	if err != nil {
		log.Printf("Error listing menu: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	if items == nil {
		items = []*entity.MenuItem{}
	}
	ctx.JSON(http.StatusOK, items)
}

// ListCategories devuelve todas las categorías disponibles
func (c *MenuController) ListCategories(ctx *gin.Context) {
	categories, err := c.listMenuUC.Categories(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	if categories == nil {
		categories = []string{}
	}
	ctx.JSON(http.StatusOK, categories)
}

// GetMenuItem devuelve un producto específico
func (c *MenuController) GetMenuItem(ctx *gin.Context) {
	itemID, err := uuid.Parse(ctx.Param("item_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	item, err := c.getMenuItemUC.Execute(ctx.Request.Context(), itemID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// CreateMenuItem crea un nuevo producto (solo admin)
func (c *MenuController) CreateMenuItem(ctx *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req request.CreateMenuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := c.createMenuItemUC.Execute(ctx.Request.Context(), principal, &req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// UpdateMenuItem actualiza un producto (solo admin)
func (c *MenuController) UpdateMenuItem(ctx *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(ctx.Param("item_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req request.UpdateMenuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := c.updateMenuItemUC.Execute(ctx.Request.Context(), principal, itemID, &req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// DeleteMenuItem elimina un producto (solo admin)
func (c *MenuController) DeleteMenuItem(ctx *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(ctx.Param("item_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	if err := c.deleteMenuItemUC.Execute(ctx.Request.Context(), principal, itemID); err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item eliminado correctamente"})
}

// handleError traduce errores de dominio a códigos HTTP
func (c *MenuController) handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrMenuItemNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	case errors.Is(err, authentity.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden", "message": "No tienes permisos para esta acción"})
	case errors.Is(err, entity.ErrNameRequired),
		errors.Is(err, entity.ErrCategoryRequired),
		errors.Is(err, entity.ErrInvalidPrice):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Error in menu controller: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

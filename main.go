package main

import (
	"database/sql"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authUseCase "github.com/Jangel21/restaurante-app/src/auth/application/usecase"
	authController "github.com/Jangel21/restaurante-app/src/auth/infrastructure/controller"
	authPersistence "github.com/Jangel21/restaurante-app/src/auth/infrastructure/persistence"
	"github.com/Jangel21/restaurante-app/src/auth/infrastructure/token"
	menuUseCase "github.com/Jangel21/restaurante-app/src/menu/application/usecase"
	menuController "github.com/Jangel21/restaurante-app/src/menu/infrastructure/controller"
	menuPersistence "github.com/Jangel21/restaurante-app/src/menu/infrastructure/persistence"
	orderUseCase "github.com/Jangel21/restaurante-app/src/order/application/usecase"
	orderPort "github.com/Jangel21/restaurante-app/src/order/domain/port"
	"github.com/Jangel21/restaurante-app/src/order/infrastructure/broker"
	orderController "github.com/Jangel21/restaurante-app/src/order/infrastructure/controller"
	orderPersistence "github.com/Jangel21/restaurante-app/src/order/infrastructure/persistence"
	"github.com/Jangel21/restaurante-app/src/order/infrastructure/ticket"
	reportUseCase "github.com/Jangel21/restaurante-app/src/report/application/usecase"
	reportController "github.com/Jangel21/restaurante-app/src/report/infrastructure/controller"
	sharedConfig "github.com/Jangel21/restaurante-app/src/shared/infrastructure/config"
	"github.com/Jangel21/restaurante-app/src/shared/infrastructure/database"
	"github.com/Jangel21/restaurante-app/src/shared/infrastructure/middleware"
)

func main() {
	log.Println("🚀 Restaurante POS - Iniciando...")

	cfg := sharedConfig.Load()

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.PrometheusEnabled {
		log.Println("Registrando endpoint /metrics")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Métricas Prometheus deshabilitadas")
	}

	// CORS y middlewares compartidos
	sharedConfig.SetupSharedMiddleware(router, sharedConfig.DefaultSharedConfig())

	// Conectar a la base de datos
	db, err := database.Connect(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Error al conectar a la base de datos: %v", err)
	}
	defer db.Close()
	log.Println("✅ Conexión a la base de datos establecida")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Error ejecutando migraciones: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("Error sembrando datos iniciales: %v", err)
	}

	// Publicador de eventos (opcional: sin broker el servicio opera igual)
	var publisher orderPort.EventPublisher
	if cfg.RabbitMQURL != "" {
		rabbitPublisher, err := broker.NewRabbitMQPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("⚠️  Advertencia: no se pudo conectar a RabbitMQ: %v", err)
			log.Println("⚠️  Continuando sin publicación de eventos")
		} else {
			defer rabbitPublisher.Close()
			publisher = rabbitPublisher
			log.Println("✅ Conexión a RabbitMQ establecida")
		}
	}

	tokens := token.NewManager(cfg.JWTSecret)
	requireAuth := middleware.RequireAuth(tokens)

	api := router.Group("/api")

	setupAuthModule(api, db, tokens)
	setupMenuModule(api, db, requireAuth)
	setupOrderModule(api, db, publisher, cfg.TicketOutputDir, requireAuth)
	setupReportModule(api, db, requireAuth)

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	log.Printf("✅ Servidor iniciado en http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error iniciando el servidor: %v", err)
	}
}

// setupAuthModule configura el módulo Auth
func setupAuthModule(router *gin.RouterGroup, db *sql.DB, tokens *token.Manager) {
	userRepo := authPersistence.NewUserPostgresRepository(db)
	loginUC := authUseCase.NewLoginUseCase(userRepo, tokens)

	authCtrl := authController.NewAuthController(loginUC)
	authCtrl.RegisterRoutes(router)

	log.Println("Módulo Auth configurado exitosamente")
}

// setupMenuModule configura el módulo Menu
func setupMenuModule(router *gin.RouterGroup, db *sql.DB, requireAuth gin.HandlerFunc) {
	menuRepo := menuPersistence.NewMenuItemPostgresRepository(db)

	listMenuUC := menuUseCase.NewListMenuUseCase(menuRepo)
	getMenuItemUC := menuUseCase.NewGetMenuItemUseCase(menuRepo)
	createMenuItemUC := menuUseCase.NewCreateMenuItemUseCase(menuRepo)
	updateMenuItemUC := menuUseCase.NewUpdateMenuItemUseCase(menuRepo)
	deleteMenuItemUC := menuUseCase.NewDeleteMenuItemUseCase(menuRepo)

	menuCtrl := menuController.NewMenuController(listMenuUC, getMenuItemUC, createMenuItemUC, updateMenuItemUC, deleteMenuItemUC)
	menuCtrl.RegisterRoutes(router, requireAuth)

	log.Println("Módulo Menu configurado exitosamente")
}

// setupOrderModule configura el módulo Order
func setupOrderModule(router *gin.RouterGroup, db *sql.DB, publisher orderPort.EventPublisher, ticketDir string, requireAuth gin.HandlerFunc) {
	orderRepo := orderPersistence.NewOrderPostgresRepository(db)
	menuRepo := menuPersistence.NewMenuItemPostgresRepository(db)

	renderer, err := ticket.NewPDFGenerator(ticketDir)
	if err != nil {
		log.Fatalf("Error preparando el directorio de tickets: %v", err)
	}

	createOrderUC := orderUseCase.NewCreateOrderUseCase(orderRepo, menuRepo)
	getOrderUC := orderUseCase.NewGetOrderUseCase(orderRepo)
	listOrdersUC := orderUseCase.NewListOrdersUseCase(orderRepo)
	addItemsUC := orderUseCase.NewAddItemsUseCase(orderRepo, menuRepo)
	updateItemUC := orderUseCase.NewUpdateItemUseCase(orderRepo)
	removeItemUC := orderUseCase.NewRemoveItemUseCase(orderRepo)
	completeOrderUC := orderUseCase.NewCompleteOrderUseCase(orderRepo, publisher)
	cancelOrderUC := orderUseCase.NewCancelOrderUseCase(orderRepo)
	downloadTicketUC := orderUseCase.NewDownloadTicketUseCase(orderRepo, renderer)

	orderCtrl := orderController.NewOrderController(
		createOrderUC,
		getOrderUC,
		listOrdersUC,
		addItemsUC,
		updateItemUC,
		removeItemUC,
		completeOrderUC,
		cancelOrderUC,
		downloadTicketUC,
	)
	orderCtrl.RegisterRoutes(router, requireAuth)

	log.Println("Módulo Order configurado exitosamente")
}

// setupReportModule configura el módulo Report
func setupReportModule(router *gin.RouterGroup, db *sql.DB, requireAuth gin.HandlerFunc) {
	dailySalesRepo := orderPersistence.NewDailySalesPostgresRepository(db)

	dailyReportUC := reportUseCase.NewDailyReportUseCase(dailySalesRepo)
	bestSellersUC := reportUseCase.NewBestSellersUseCase(db)
	salesByCategoryUC := reportUseCase.NewSalesByCategoryUseCase(db)

	reportCtrl := reportController.NewReportController(dailyReportUC, bestSellersUC, salesByCategoryUC)
	reportCtrl.RegisterRoutes(router, requireAuth)

	log.Println("Módulo Report configurado exitosamente")
}

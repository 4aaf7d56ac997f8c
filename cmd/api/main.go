package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appinventory "github.com/jhoicas/supermercado-api/internal/application/inventory"
	appsales "github.com/jhoicas/supermercado-api/internal/application/sales"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/pdf"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/supermercado-api/internal/interfaces/http"
	"github.com/jhoicas/supermercado-api/pkg/config"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool (lecturas y CRUD simples)
	branchRepo := postgres.NewBranchRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	detailRepo := postgres.NewSaleDetailRepository(pool)

	// La venta transaccional corre sobre el runner, con repos atados a la tx
	txRunner := postgres.NewTxRunner(pool)

	branchUC := usecase.NewCrudUseCase(branchRepo, usecase.ValidateBranch)
	categoryUC := usecase.NewCrudUseCase(categoryRepo, usecase.ValidateCategory)
	customerUC := usecase.NewCrudUseCase(customerRepo, usecase.ValidateCustomer)
	employeeUC := usecase.NewCrudUseCase(employeeRepo, usecase.ValidateEmployee)
	productUC := usecase.NewCrudUseCase(productRepo, usecase.ValidateProduct)
	roleUC := usecase.NewCrudUseCase(roleRepo, usecase.ValidateRole)
	inventoryUC := appinventory.NewUseCase(inventoryRepo)

	createSaleUC := appsales.NewCreateSaleUseCase(txRunner, log)
	saleQueriesUC := appsales.NewQueryUseCase(saleRepo, detailRepo)
	receiptUC := appsales.NewReceiptUseCase(saleQueriesUC, branchRepo, customerRepo, pdf.NewMarotoReceiptGenerator())

	metrics := httpRouter.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log, metrics))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Supermercado API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		BranchUC:    branchUC,
		CategoryUC:  categoryUC,
		CustomerUC:  customerUC,
		EmployeeUC:  employeeUC,
		ProductUC:   productUC,
		RoleUC:      roleUC,
		InventoryUC: inventoryUC,
		CreateSale:  createSaleUC,
		SaleQueries: saleQueriesUC,
		Receipt:     receiptUC,
		Metrics:     metrics,
		Log:         log,
	})

	// Apagado ordenado: esperar señal y cerrar el servidor drenando conexiones
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("señal recibida, apagando servidor")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	addr := cfg.HTTP.Addr()
	log.Info().Str("addr", addr).Msg("servidor HTTP escuchando")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}
	log.Info().Msg("servidor detenido")
}

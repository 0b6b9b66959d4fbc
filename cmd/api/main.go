package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	appanalytics "github.com/jhoicas/terrafoods-ems/internal/application/analytics"
	appinventory "github.com/jhoicas/terrafoods-ems/internal/application/inventory"
	"github.com/jhoicas/terrafoods-ems/internal/application/usecase"
	"github.com/jhoicas/terrafoods-ems/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/terrafoods-ems/internal/infrastructure/pdf"
	"github.com/jhoicas/terrafoods-ems/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/terrafoods-ems/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/terrafoods-ems/internal/interfaces/http"
	"github.com/jhoicas/terrafoods-ems/pkg/config"
	"github.com/jhoicas/terrafoods-ems/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: "terrafoods-api",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Cantidades y montos como números JSON, no strings
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	procurementRepo := postgres.NewProcurementRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	var (
		reg *prometheus.Registry
		m   *metrics.Metrics
	)
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		m = metrics.New(reg)
	}
	var invMetrics appinventory.Metrics
	var httpObserver httpRouter.HTTPObserver
	if m != nil {
		invMetrics, httpObserver = m, m
	}

	movementUC := appinventory.NewMovementUseCase(movementRepo, invMetrics, log)
	stockUC := appinventory.NewStockUseCase(
		movementRepo, productRepo,
		infraxlsx.NewStockSheetWriter(), infrapdf.NewStockCardGenerator(),
		invMetrics,
	)

	app := httpRouter.NewApp(cfg, log)
	httpRouter.Router(app, cfg, httpRouter.RouterDeps{
		Categories:   usecase.NewCategoryUseCase(categoryRepo),
		Products:     usecase.NewProductUseCase(productRepo),
		Suppliers:    usecase.NewSupplierUseCase(supplierRepo),
		Customers:    usecase.NewCustomerUseCase(customerRepo),
		Staff:        usecase.NewStaffUseCase(staffRepo),
		Orders:       usecase.NewOrderUseCase(txRunner, orderRepo),
		Procurements: usecase.NewProcurementUseCase(txRunner, procurementRepo),
		Deliveries:   usecase.NewDeliveryUseCase(deliveryRepo),
		Payments:     usecase.NewPaymentUseCase(paymentRepo),
		Movements:    movementUC,
		Stock:        stockUC,
		Dashboard:    appanalytics.NewDashboardUseCase(postgres.NewAnalyticsRepository(pool)),
		Registry:     reg,
		Observer:     httpObserver,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

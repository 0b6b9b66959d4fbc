package http

import (
	"os"
	"strings"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/pkg/config"
	"github.com/jhoicas/terrafoods-ems/pkg/logger"
)

// Version versión publicada en GET /.
const Version = "1.0.0"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Categories   CRUDService[dto.CreateCategoryRequest, dto.UpdateCategoryRequest, dto.CategoryResponse]
	Products     CRUDService[dto.CreateProductRequest, dto.UpdateProductRequest, dto.ProductResponse]
	Suppliers    CRUDService[dto.CreateSupplierRequest, dto.UpdateSupplierRequest, dto.SupplierResponse]
	Customers    CRUDService[dto.CreateCustomerRequest, dto.UpdateCustomerRequest, dto.CustomerResponse]
	Staff        CRUDService[dto.CreateStaffRequest, dto.UpdateStaffRequest, dto.StaffResponse]
	Orders       CRUDService[dto.CreateOrderRequest, dto.UpdateOrderRequest, dto.OrderResponse]
	Procurements CRUDService[dto.CreateProcurementRequest, dto.UpdateProcurementRequest, dto.ProcurementResponse]
	Deliveries   CRUDService[dto.CreateDeliveryRequest, dto.UpdateDeliveryRequest, dto.DeliveryResponse]
	Payments     CRUDService[dto.CreatePaymentRequest, dto.UpdatePaymentRequest, dto.PaymentResponse]
	Movements    MovementService
	Stock        StockService
	Dashboard    DashboardService

	// Opcionales: sin registro no hay /metrics; sin observer no se miden peticiones.
	Registry *prometheus.Registry
	Observer HTTPObserver
}

// NewApp crea la app Fiber con el middleware común: request id, log de acceso, recover y CORS.
func NewApp(cfg *config.Config, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		ErrorHandler: ErrorHandler,
	})
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(log))
	app.Use(recover.New())
	app.Use(cors.New(corsConfig(cfg.HTTP.CORSOrigins)))
	return app
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID",
	}
	if len(origins) == 0 {
		c.AllowOrigins = "*"
		return c
	}
	c.AllowOrigins = strings.Join(origins, ",")
	c.AllowCredentials = true
	return c
}

// Router registra las rutas de la API bajo cfg.API.Prefix.
func Router(app *fiber.App, cfg *config.Config, deps RouterDeps) {
	if deps.Observer != nil {
		app.Use(Metrics(deps.Observer))
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.WelcomeResponse{Message: "Bienvenido a la API de " + cfg.App.Name, Docs: "/docs", Version: Version})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "healthy"})
	})
	if deps.Registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	// Swagger UI en local: http://localhost:<port>/docs (solo si existe el archivo)
	if f := cfg.HTTP.SwaggerFile; f != "" {
		if _, err := os.Stat(f); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: f,
				Path:     "docs",
				Title:    cfg.App.Name,
			}))
		}
	}

	api := app.Group(cfg.API.Prefix)

	// Inventario: libro de movimientos y stock derivado
	inv := api.Group("/inventory")
	invHandler := NewInventoryHandler(deps.Movements, deps.Stock, cfg.API)
	inv.Post("/movements", invHandler.CreateMovement)
	inv.Get("/movements", invHandler.ListMovements)
	inv.Get("/movements/:id", invHandler.GetMovement)
	inv.Delete("/movements/:id", invHandler.DeleteMovement)
	inv.Get("/stock", invHandler.ListStock)
	inv.Get("/stock/export.xlsx", invHandler.ExportStock)
	inv.Get("/stock/:product_id", invHandler.GetStock)
	inv.Get("/stock/:product_id/card.pdf", invHandler.StockCard)
	inv.Get("/dashboard", NewDashboardHandler(deps.Dashboard).GetSummary)

	// Catálogo: las categorías van antes de /products/:id
	NewCRUDHandler(deps.Categories, cfg.API).Mount(api.Group("/products/categories"))
	NewCRUDHandler(deps.Products, cfg.API).Mount(api.Group("/products"))

	// Terceros y personal
	NewCRUDHandler(deps.Suppliers, cfg.API).Mount(api.Group("/suppliers"))
	NewCRUDHandler(deps.Customers, cfg.API).Mount(api.Group("/customers"))
	NewCRUDHandler(deps.Staff, cfg.API).Mount(api.Group("/staff"))

	// Documentos
	NewCRUDHandler(deps.Orders, cfg.API).Mount(api.Group("/orders"))
	NewCRUDHandler(deps.Procurements, cfg.API).Mount(api.Group("/procurements"))
	NewCRUDHandler(deps.Deliveries, cfg.API).Mount(api.Group("/deliveries"))
	NewCRUDHandler(deps.Payments, cfg.API).Mount(api.Group("/payments"))
}

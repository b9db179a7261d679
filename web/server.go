package web

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/supplychain/web/handlers"
	"github.com/supplychain/web/middleware"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server
func NewServer() *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	// Custom middleware to track SQL statements per request
	app.Use(middleware.SQLDebugMiddleware())

	// Setup routes
	setupRoutes(app)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Debug endpoints for SQL logs
	api.Get("/debug/sql", handlers.GetSQLLogs)
	api.Delete("/debug/sql", handlers.ClearSQLLogs)

	// Supplier management
	suppliers := api.Group("/suppliers")
	suppliers.Get("/", handlers.SupplierList)
	suppliers.Post("/", handlers.SupplierCreate)
	suppliers.Delete("/:id", handlers.SupplierDelete)

	// Customer management
	customers := api.Group("/customers")
	customers.Get("/", handlers.CustomerList)
	customers.Post("/", handlers.CustomerCreate)

	// Product management
	products := api.Group("/products")
	products.Get("/", handlers.ProductList)
	products.Post("/", handlers.ProductCreate)
	products.Delete("/:id", handlers.ProductDelete)

	// Order management
	orders := api.Group("/orders")
	orders.Get("/", handlers.OrderList)
	orders.Post("/", handlers.OrderCreate)
	orders.Delete("/:id", handlers.OrderDelete)

	// Shipment management
	shipments := api.Group("/shipments")
	shipments.Get("/", handlers.ShipmentList)
	shipments.Post("/", handlers.ShipmentCreate)

	// Inventory management
	inventories := api.Group("/inventories")
	inventories.Get("/", handlers.InventoryList)
	inventories.Post("/", handlers.InventoryCreate)

	// Report queries (read-only)
	reports := api.Group("/reports")
	reports.Get("/orders", handlers.ReportOrders)
	reports.Get("/orders/completed", handlers.ReportCompletedOrders)
	reports.Get("/orders/range", handlers.ReportOrdersBetween)
	reports.Get("/orders/high-value", handlers.ReportHighValueOrderLines)
	reports.Get("/stock/low", handlers.ReportLowStock)
	reports.Get("/shipments/heavy", handlers.ReportHeavyShipments)
	reports.Get("/shipments/received", handlers.ReportShipmentsReceived)
	reports.Get("/shipments/:id/movements", handlers.ReportShipmentMovements)
	reports.Get("/customers/:id/history", handlers.ReportCustomerHistory)
	reports.Get("/categories", handlers.ReportStockedCategories)
	reports.Get("/regions", handlers.ReportSupplierRegions)
	reports.Get("/products", handlers.ReportProductsByPrice)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestion-api/internal/application/analytics"
	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	CustomerUC  *usecase.CustomerUseCase
	ProductUC   *usecase.ProductUseCase
	SalesUC     *usecase.SalesUseCase
	SalesPDFUC  *usecase.SalesPDFUseCase
	FinanceUC   *usecase.FinanceUseCase
	DashboardUC *appanalytics.DashboardUseCase
}

// Router registra las rutas de la API. Todas las rutas son públicas; el token
// del login es informativo y ninguna ruta lo exige.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Users (sin DELETE: los usuarios no se eliminan, se desactivan vía PUT)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Products (low-stock antes que :id para que no lo capture el wildcard)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales orders + líneas
	sales := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC, deps.SalesPDFUC)
	sales.Post("/", salesHandler.Create)
	sales.Get("/", salesHandler.List)
	sales.Delete("/items/:itemId", salesHandler.DeleteItem)
	sales.Get("/:id", salesHandler.GetByID)
	sales.Put("/:id", salesHandler.Update)
	sales.Delete("/:id", salesHandler.Delete)
	sales.Get("/:id/items", salesHandler.ListItems)
	sales.Post("/:id/items", salesHandler.AddItem)
	sales.Get("/:id/pdf", salesHandler.GetPDF)

	// Financial transactions
	transactions := api.Group("/transactions")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	transactions.Post("/", financeHandler.Create)
	transactions.Get("/", financeHandler.List)
	transactions.Get("/:id", financeHandler.GetByID)
	transactions.Put("/:id", financeHandler.Update)
	transactions.Delete("/:id", financeHandler.Delete)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/metrics", dashboardHandler.GetMetrics)
}

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

	appanalytics "github.com/jhoicas/gestion-api/internal/application/analytics"
	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
	"github.com/jhoicas/gestion-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/gestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestion-api/internal/interfaces/http"
	"github.com/jhoicas/gestion-api/pkg/config"
	"github.com/jhoicas/gestion-api/pkg/logger"
)

// repos agrupa los repositorios detrás del contrato de dominio. El driver
// configurado decide qué implementación los respalda.
type repos struct {
	users    repository.UserRepository
	customer repository.CustomerRepository
	product  repository.ProductRepository
	sales    repository.SalesOrderRepository
	finance  repository.FinancialRepository
	metrics  repository.MetricsRepository
}

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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			users:    postgres.NewUserRepository(pool),
			customer: postgres.NewCustomerRepository(pool),
			product:  postgres.NewProductRepository(pool),
			sales:    postgres.NewSalesOrderRepository(pool),
			finance:  postgres.NewFinancialRepository(pool),
			metrics:  postgres.NewMetricsRepository(pool),
		}
	default:
		// Modo demo: almacén en memoria con datos sembrados.
		store := memory.NewSeeded()
		r = repos{
			users:    memory.NewUserRepository(store),
			customer: memory.NewCustomerRepository(store),
			product:  memory.NewProductRepository(store),
			sales:    memory.NewSalesOrderRepository(store),
			finance:  memory.NewFinancialRepository(store),
			metrics:  memory.NewMetricsRepository(store),
		}
	}

	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(r.users)
	customerUC := usecase.NewCustomerUseCase(r.customer)
	productUC := usecase.NewProductUseCase(r.product)
	salesUC := usecase.NewSalesUseCase(r.sales)
	financeUC := usecase.NewFinanceUseCase(r.finance)
	dashboardUC := appanalytics.NewDashboardUseCase(r.metrics)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	salesPDFUC := usecase.NewSalesPDFUseCase(r.sales, r.customer, r.product, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		CustomerUC:  customerUC,
		ProductUC:   productUC,
		SalesUC:     salesUC,
		SalesPDFUC:  salesPDFUC,
		FinanceUC:   financeUC,
		DashboardUC: dashboardUC,
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

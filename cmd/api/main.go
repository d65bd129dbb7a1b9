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

	"github.com/jhoicas/netsales-api/internal/application/dto"
	"github.com/jhoicas/netsales-api/internal/application/usecase"
	"github.com/jhoicas/netsales-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/netsales-api/internal/interfaces/http"
	"github.com/jhoicas/netsales-api/pkg/config"
	"github.com/jhoicas/netsales-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir almacén")
	}

	employeeUC := usecase.NewEmployeeUseCase(st.Employees)
	saleUC := usecase.NewSaleUseCase(st.Sales)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http").Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NetSales API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := st.Ping(c.UserContext()); err != nil {
			log.Warn().Err(err).Msg("health: almacén no disponible")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "unavailable", Store: st.Driver})
		}
		return c.JSON(dto.HealthResponse{Status: "ok", Store: st.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC: employeeUC,
		SaleUC:     saleUC,
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
	if err := st.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cerrar almacén")
	}

	log.Info().Msg("aplicación detenida")
}

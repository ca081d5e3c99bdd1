package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/firstfortune/tracking-api/internal/application/auth"
	"github.com/firstfortune/tracking-api/internal/application/usecase"
	"github.com/firstfortune/tracking-api/internal/domain/repository"
	"github.com/firstfortune/tracking-api/internal/infrastructure/memory"
	"github.com/firstfortune/tracking-api/internal/infrastructure/postgres"
	httpRouter "github.com/firstfortune/tracking-api/internal/interfaces/http"
	"github.com/firstfortune/tracking-api/pkg/config"
	"github.com/firstfortune/tracking-api/pkg/logger"
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

	// Persistencia: Postgres si hay DATABASE_URL; si no, stores en memoria
	// (estado por instancia, no sobrevive reinicios).
	var userRepo repository.UserRepository
	var shipmentRepo repository.ShipmentRepository
	if cfg.DB.DatabaseURL != "" {
		if err := postgres.RunMigrations(ctx, cfg.DB.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		userRepo = postgres.NewUserRepository(pool)
		shipmentRepo = postgres.NewShipmentRepository(pool)
		log.Info().Msg("persistencia: PostgreSQL")
	} else {
		memUsers := memory.NewUserRepository()
		memShipments := memory.NewShipmentRepository()
		if cfg.Seed.DemoData {
			if err := memory.SeedDemoData(memUsers, memShipments); err != nil {
				log.Fatal().Err(err).Msg("seed de datos demo")
			}
			log.Info().
				Str("customer", memory.DemoCustomerEmail).
				Str("admin", memory.DemoAdminEmail).
				Msg("cuentas demo cargadas")
		}
		userRepo = memUsers
		shipmentRepo = memShipments
		log.Info().Msg("persistencia: en memoria")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	}, log)
	userUC := usecase.NewUserUseCase(userRepo)
	shipmentUC := usecase.NewShipmentUseCase(shipmentRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Una sola implementación para todos los despliegues: los orígenes
	// permitidos vienen de configuración, no de copias del servidor.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.AllowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		ShipmentUC: shipmentUC,
		JWTSecret:  cfg.JWT.Secret,
		AppName:    cfg.App.Name,
		Log:        log,
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

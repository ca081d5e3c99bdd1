package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/firstfortune/tracking-api/internal/application/auth"
	"github.com/firstfortune/tracking-api/internal/application/usecase"
	"github.com/firstfortune/tracking-api/internal/domain/entity"
	"github.com/firstfortune/tracking-api/pkg/logger"
)

// availableEndpoints rutas anunciadas en la respuesta 404.
var availableEndpoints = []string{
	"/api/health",
	"/api/track/:trackingNumber",
	"/api/auth/login",
	"/api/auth/signup",
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	ShipmentUC *usecase.ShipmentUseCase
	JWTSecret  string
	AppName    string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	userHandler := NewUserHandler(deps.UserUC, deps.ShipmentUC, deps.Log)
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC, deps.Log)

	// Ficha de la API y liveness (públicos)
	api.Get("/", apiInfo(deps.AppName))
	api.Get("/health", health(deps.AppName))

	// Auth (público salvo verify)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Get("/verify", AuthMiddleware(deps.JWTSecret), authHandler.Verify)

	// Tracking público: el token es opcional, personaliza la vista si es del dueño
	api.Get("/track/:trackingNumber", OptionalAuthMiddleware(deps.JWTSecret), shipmentHandler.Track)

	// Usuario autenticado
	user := api.Group("/user", AuthMiddleware(deps.JWTSecret))
	user.Get("/profile", userHandler.Profile)
	user.Get("/shipments", userHandler.Shipments)
	user.Get("/vault", userHandler.Vault)

	// Gestión de envíos (protegido; la política dueño-o-admin vive en el use case)
	shipments := api.Group("/shipments", AuthMiddleware(deps.JWTSecret))
	shipments.Get("/", shipmentHandler.List)
	shipments.Post("/", shipmentHandler.Create)
	shipments.Put("/:trackingNumber/status", shipmentHandler.UpdateStatus)

	// Solo admin
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))
	admin.Get("/users", userHandler.AdminListUsers)
	admin.Get("/shipments", shipmentHandler.AdminList)

	// Catch-all 404 con las rutas disponibles
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success":            false,
			"message":            "API endpoint not found",
			"availableEndpoints": availableEndpoints,
		})
	})
}

// apiInfo ficha informativa de la API (ruta raíz /api).
func apiInfo(appName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": appName,
			"status":  "operational",
			"endpoints": fiber.Map{
				"health": "/api/health",
				"track":  "/api/track/:trackingNumber",
				"auth":   "/api/auth/*",
				"user":   "/api/user/*",
				"admin":  "/api/admin/*",
			},
		})
	}
}

// health sonda de vida.
func health(appName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"server":    appName,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

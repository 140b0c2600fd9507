package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mensajeria-api/internal/application/auth"
	"github.com/jhoicas/Mensajeria-api/internal/application/dto"
	"github.com/jhoicas/Mensajeria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProfileUC *usecase.ProfileUseCase
	AppName   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	api.Get("/health", healthHandler(deps.AppName))

	// Rutas protegidas: el gate Basic re-verifica credenciales en cada request
	profileHandler := NewProfileHandler(deps.ProfileUC)
	protected := api.Group("/", BasicAuthMiddleware(deps.AuthUC))
	protected.Get("/profile", profileHandler.Get)
	protected.Put("/profile", profileHandler.Update)
	protected.Post("/logout", profileHandler.Logout)

	// Cualquier ruta no registrada: 404 con el envelope estándar
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.APIResponse{
			Status:  false,
			Message: "ruta no encontrada",
		})
	})
}

// healthHandler godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200
// @Router       /api/health [get]
func healthHandler(appName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    true,
			"message":   appName + " operativo",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/http/handlers"
	"github.com/spec-kit/restaurant-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Dishes         *handlers.DishesHandler
	Employees      *handlers.EmployeesHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Gate ordering is fixed: authentication
// first, then the role stage on privileged routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")

	// The dish catalog is intentionally reachable without a token; the
	// storefront edits it directly. See DESIGN.md before gating these.
	dishes := api.Group("/dishes")
	dishes.Get("/", cfg.Dishes.List)
	dishes.Get("/:id", cfg.Dishes.GetByID)
	dishes.Post("/", cfg.Dishes.Create)
	dishes.Put("/:id", cfg.Dishes.Update)
	dishes.Delete("/:id", cfg.Dishes.Delete)

	employees := api.Group("/employees")
	employees.Post("/login", cfg.Employees.Login)

	authed := employees.Group("", cfg.AuthMiddleware.Authenticate)
	authed.Get("/infor", cfg.Employees.GetInformation)
	authed.Patch("/change-password", cfg.Employees.ChangePassword)

	admin := authed.Group("", auth.RequireAdmin())
	admin.Post("/create", cfg.Employees.Create)
	admin.Get("/", cfg.Employees.List)
	admin.Get("/:id", cfg.Employees.GetByID)
	admin.Patch("/:id", cfg.Employees.Update)
	admin.Delete("/:id", cfg.Employees.Delete)
}

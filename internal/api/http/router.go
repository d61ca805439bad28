package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vehicle-registry/internal/api/http/handlers"
	"github.com/spec-kit/vehicle-registry/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	System         *handlers.SystemHandler
	Admins         *handlers.AdminsHandler
	Vehicles       *handlers.VehiclesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Each protected route gets the
// policy declared for it in auth.RoutePolicies; the registry and the
// wiring below must stay in sync.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.System.Home)
	app.Get("/swagger", cfg.System.Docs)
	app.Get("/metrics", cfg.System.Metrics)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	guard := cfg.AuthMiddleware.Handle
	policy := func(route string) fiber.Handler {
		return auth.RequireRole(auth.RoutePolicies[route])
	}

	admins := app.Group("/admins")
	admins.Post("/login", cfg.Admins.Login)
	admins.Get("/", guard, policy("GET /admins"), cfg.Admins.List)
	admins.Get("/:id", guard, policy("GET /admins/:id"), cfg.Admins.Get)
	admins.Post("/", guard, policy("POST /admins"), cfg.Admins.Create)

	vehicles := app.Group("/vehicles", guard)
	vehicles.Post("/", policy("POST /vehicles"), cfg.Vehicles.Create)
	vehicles.Get("/", policy("GET /vehicles"), cfg.Vehicles.List)
	vehicles.Get("/:id", policy("GET /vehicles/:id"), cfg.Vehicles.Get)
	vehicles.Put("/:id", policy("PUT /vehicles/:id"), cfg.Vehicles.Update)
	vehicles.Delete("/:id", policy("DELETE /vehicles/:id"), cfg.Vehicles.Delete)

	app.Get("/audit", guard, policy("GET /audit"), cfg.System.Audit)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campaign-service/internal/api/http/handlers"
	"github.com/spec-kit/campaign-service/internal/auth"
	"github.com/spec-kit/campaign-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Campaigns     *handlers.CampaignsHandler
	Applications  *handlers.ApplicationsHandler
	Notifications *handlers.NotificationsHandler
	Images        *handlers.ImagesHandler
}

// RegisterRoutes wires HTTP routes. The request gate runs globally (see
// RegisterMiddlewares); route guards here only decide whether anonymous
// access is acceptable for each endpoint.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/refresh", cfg.Auth.Refresh)
	authGroup.Post("/logout", cfg.Auth.Logout)

	campaigns := api.Group("/campaigns")
	campaigns.Get("/", cfg.Campaigns.List)
	campaigns.Get("/status/:id/progress", auth.RequireAuthenticated(), cfg.Campaigns.Progress)
	campaigns.Get("/:id", cfg.Campaigns.Get)
	campaigns.Post("/", auth.RequireRole(domain.RoleClient, domain.RoleAdmin), cfg.Campaigns.Create)
	campaigns.Put("/:id", auth.RequireRole(domain.RoleClient, domain.RoleAdmin), cfg.Campaigns.Update)
	campaigns.Post("/:id/like", auth.RequireAuthenticated(), cfg.Campaigns.ToggleLike)

	applications := api.Group("/applications", auth.RequireAuthenticated())
	applications.Post("/", cfg.Applications.Apply)
	applications.Get("/me", cfg.Applications.ListMine)
	applications.Delete("/:id", cfg.Applications.Cancel)
	applications.Patch("/:id/status", auth.RequireRole(domain.RoleClient, domain.RoleAdmin), cfg.Applications.UpdateStatus)

	notifications := api.Group("/notifications", auth.RequireAuthenticated())
	notifications.Get("/", cfg.Notifications.List)
	notifications.Patch("/:id/read", cfg.Notifications.MarkRead)

	images := api.Group("/images", auth.RequireAuthenticated())
	images.Post("/", cfg.Images.Upload)
}

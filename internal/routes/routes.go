package routes

import (
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

// Handlers bundles every HTTP handler the route table needs.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Health  *handlers.HealthHandler
	Ideas   *handlers.IdeaHandler
	Banners *handlers.BannerHandler
	Reviews *handlers.ReviewHandler
	Profile *handlers.ProfileHandler
	AI      *handlers.AIHandler
	Uploads *handlers.UploadHandler
}

func Setup(app *fiber.App, cfg *config.Config, guard *middleware.Guard, h Handlers) {
	api := app.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitPerMinute))

	api.Get("/health", h.Health.Check)

	// Auth: stricter per-IP limit
	auth := api.Group("/auth", middleware.RateLimit(cfg.AuthRateLimit))
	auth.Post("/signup", h.Auth.Signup)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", guard.OptionalAuth(), h.Auth.Logout)
	auth.Get("/me", guard.RequireAuth(), h.Auth.Me)

	// Ideas. Fixed paths go before /ideas/:id.
	ideas := api.Group("/ideas")
	ideas.Get("/all", h.Ideas.ListAll())
	ideas.Get("/static", h.Ideas.ListStatic())
	ideas.Get("/featured", h.Ideas.ListFeatured)
	ideas.Post("/featured", guard.AdminRequired(), h.Ideas.SetFeatured)
	ideas.Get("/", guard.OptionalAuth(), h.Ideas.List())
	ideas.Post("/", guard.OptionalAuth(), h.Ideas.Create)
	ideas.Get("/:id", h.Ideas.Get)
	ideas.Put("/:id", h.Ideas.Update)
	ideas.Delete("/:id", h.Ideas.Delete)
	ideas.Post("/:id/save", guard.RequireAuth(), h.Ideas.ToggleSave)

	api.Get("/community-ideas", h.Ideas.ListCommunity())

	// Banners: reads and tracking are public, writes are admin only
	banners := api.Group("/banners")
	banners.Get("/", h.Banners.List)
	banners.Get("/:id", h.Banners.Get)
	banners.Post("/:id/click", h.Banners.TrackClick())
	banners.Post("/:id/view", h.Banners.TrackView())
	banners.Post("/", guard.AdminRequired(), h.Banners.Create)
	banners.Put("/:id", guard.AdminRequired(), h.Banners.Update)
	banners.Delete("/:id", guard.AdminRequired(), h.Banners.Delete)

	reviews := api.Group("/reviews")
	reviews.Get("/", h.Reviews.List)
	reviews.Post("/helpful", guard.RequireAuth(), h.Reviews.ToggleHelpful)
	reviews.Post("/", guard.RequireAuth(), h.Reviews.Create)
	reviews.Put("/:id", guard.RequireAuth(), h.Reviews.Update)
	reviews.Delete("/:id", guard.RequireAuth(), h.Reviews.Delete)

	profile := api.Group("/profile", guard.RequireAuth())
	profile.Get("/", h.Profile.Get)
	profile.Put("/", h.Profile.Update)
	profile.Put("/stats", h.Profile.UpdateStats)

	gemini := api.Group("/gemini")
	gemini.Post("/trends", h.AI.Trends)
	gemini.Post("/chat", guard.RequireAuth(), h.AI.Chat)

	api.Post("/uploads/image", guard.RequireAuth(), h.Uploads.UploadImage)
}

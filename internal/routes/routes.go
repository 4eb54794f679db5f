package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/mertdogan/expense-tracker-api/internal/config"
	"github.com/mertdogan/expense-tracker-api/internal/handlers"
	"github.com/mertdogan/expense-tracker-api/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	expenseHandler *handlers.ExpenseHandler,
	reportHandler *handlers.ReportHandler,
	settingsHandler *handlers.SettingsHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Auth: sign-in is public with a stricter rate limit
	auth := api.Group("/auth")
	auth.Post("/google", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.GoogleSignIn)
	auth.Get("/proxy-image", authHandler.ProxyImage)
	auth.Get("/me", middleware.JWTProtected(cfg), authHandler.Me)
	auth.Post("/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Expenses (all protected). Static paths are registered before :id so the
	// router never takes "categories" or "reports" for an expense id.
	expenses := api.Group("/expenses", middleware.JWTProtected(cfg))
	expenses.Get("/categories", expenseHandler.Categories)
	expenses.Get("/reports/categories", reportHandler.Categories)
	expenses.Get("/reports/monthly", reportHandler.Monthly)
	expenses.Get("/reports/summary", reportHandler.Summary)
	expenses.Post("/seed", expenseHandler.Seed)
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Delete("/", expenseHandler.ClearAll)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Settings (protected)
	settings := api.Group("/settings", middleware.JWTProtected(cfg))
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
}

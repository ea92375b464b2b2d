package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/parts-pile/car-sales/config"
	h "github.com/parts-pile/car-sales/handlers"
)

// New builds the dashboard application. The handlers must have been
// initialised with a dataset store.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	// Add rate limiter
	app.Use(h.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitExp))

	// Add logger middleware
	app.Use(logger.New())

	// Dashboard
	app.Get("/", h.HandleDashboardPage)
	app.Get("/dashboard", h.HandleDashboardPartial)
	app.Get("/chart/histogram.svg", h.HandleHistogramSVG)
	app.Get("/chart/scatter.svg", h.HandleScatterSVG)

	// API group
	api := app.Group("/api")
	api.Get("/brands", h.HandleBrands)
	api.Get("/types", h.HandleTypes)
	api.Get("/summary", h.HandleSummary)
	api.Get("/scatter", h.HandleScatter)

	// Admin dashboard and management
	admin := app.Group("/admin")
	admin.Get("/dataset-cache", h.HandleAdminDatasetCache)

	adminAPI := api.Group("/admin")
	adminAPI.Post("/dataset-cache/clear", h.HandleClearDatasetCache)
	adminAPI.Get("/dataset-cache/refresh", h.HandleRefreshDatasetCache)

	// Health check and metrics
	app.Get("/health", h.HandleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}

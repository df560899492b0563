package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/creatorlens/creatorlens/internal/handler"
	"github.com/creatorlens/creatorlens/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Analyze *handler.AnalyzeHandler
	Report  *handler.ReportHandler
	Ideas   *handler.IdeasHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.NewMetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics (before API group, no rate limits)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	analyzeLimit := middleware.NewAnalyzeRateLimiter()
	compareLimit := middleware.NewCompareRateLimiter()
	suggestLimit := middleware.NewSuggestRateLimiter()
	reportLimit := middleware.NewReportRateLimiter()

	// API routes
	api := app.Group("/api")

	// Analysis pipeline
	api.Post("/analyze", h.Analyze.Analyze, analyzeLimit.Handler())
	api.Post("/compare", h.Analyze.Compare, compareLimit.Handler())
	api.Get("/suggestions", h.Analyze.Suggest, suggestLimit.Handler())

	// Reports over stored snapshots
	api.Get("/compare/top", h.Report.Top, reportLimit.Handler())
	api.Get("/reports/monthly/:channelId", h.Report.Monthly, reportLimit.Handler())
	api.Get("/channels/:channelId/stats", h.Report.ChannelStats, reportLimit.Handler())
	api.Get("/channels/:channelId/videos", h.Report.ChannelVideos, reportLimit.Handler())
	api.Get("/stats", h.Report.Stats, reportLimit.Handler())

	// Content suggestions
	api.Post("/ai/generate", h.Ideas.Generate, suggestLimit.Handler())
}

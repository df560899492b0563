package main

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/creatorlens/creatorlens/internal/config"
	"github.com/creatorlens/creatorlens/internal/db"
	"github.com/creatorlens/creatorlens/internal/handler"
	"github.com/creatorlens/creatorlens/internal/middleware"
	"github.com/creatorlens/creatorlens/internal/repository"
	"github.com/creatorlens/creatorlens/internal/router"
	"github.com/creatorlens/creatorlens/internal/service"
	"github.com/creatorlens/creatorlens/internal/youtube"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "creatorlens-api")

	ctx := context.Background()

	if err := db.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	handler.InitMetrics(pool)

	ytClient, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build youtube client")
	}
	if cfg.YouTubeAPIKey == "" {
		log.Warn().Msg("YOUTUBE_API_KEY is not set; analysis requests will fail upstream")
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	channelRepo := repository.NewChannelRepo(pool)
	videoRepo := repository.NewVideoRepo(pool)

	analysisSvc := service.NewAnalysisService(ytClient, channelRepo, videoRepo, cache)
	reportSvc := service.NewReportService(channelRepo, videoRepo)
	ideasSvc := service.NewIdeasService()

	if cfg.RefreshInterval > 0 {
		worker := service.NewRefreshWorker(analysisSvc, channelRepo, cfg.RefreshInterval, cfg.RefreshBatch)
		go worker.Start(ctx)
	}

	app := fiber.New(fiber.Config{
		AppName:      "CreatorLens API",
		ServerHeader: "CreatorLens",
	})

	router.Setup(app, &router.Handlers{
		Analyze: handler.NewAnalyzeHandler(analysisSvc),
		Report:  handler.NewReportHandler(reportSvc),
		Ideas:   handler.NewIdeasHandler(ideasSvc),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"movie-similarity-service/internal/config"
	"movie-similarity-service/internal/database"
	"movie-similarity-service/internal/handler"
	"movie-similarity-service/internal/repository"
	"movie-similarity-service/internal/service"
	"movie-similarity-service/internal/tmdb"
)

func main() {
	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL (favorites storage)
	db, err := database.NewPostgres(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Connect to Redis (non-fatal if unavailable)
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
	}

	// Initialize TMDB client
	tmdbClient := tmdb.NewClient(cfg.TMDB.APIKey, cfg.TMDB.AccessToken, cfg.TMDB.BaseURL)

	// Initialize layers
	favRepo := repository.NewFavoriteRepository(db)
	recSvc := service.NewRecommendationService(tmdbClient)
	movSvc := service.NewMovieService(tmdbClient, rdb)
	favSvc := service.NewFavoriteService(favRepo)
	recHandler := handler.NewRecommendationHandler(recSvc)
	movHandler := handler.NewMovieHandler(movSvc)
	favHandler := handler.NewFavoriteHandler(favSvc)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Movie Similarity Service",
		ServerHeader: "Movie-Similarity-Service",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger docs
	swaggerYAML, err := os.ReadFile("docs/swagger.yaml")
	if err != nil {
		slog.Warn("swagger.yaml not found, swagger UI will be unavailable", "error", err)
	} else {
		handler.RegisterSwagger(app, swaggerYAML)
	}

	// API routes
	api := app.Group("/api/v1")
	api.Get("/health", recHandler.Health)
	api.Post("/search", recHandler.Search)
	api.Get("/movies/:id", movHandler.GetMovieDetail)
	api.Get("/favorites", favHandler.List)
	api.Post("/favorites", favHandler.Add)
	api.Delete("/favorites/:tmdb_id", favHandler.Remove)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down movie similarity service...")
		_ = app.Shutdown()
	}()

	// Start server
	addr := ":" + cfg.Port
	slog.Info("starting movie similarity service", "addr", addr)
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

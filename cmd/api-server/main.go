package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"bookworm/database"
	"bookworm/internal/cache"
	"bookworm/internal/config"
	"bookworm/internal/http-api/handler"
	"bookworm/internal/http-api/middleware"
	"bookworm/internal/http-api/repository"
	"bookworm/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	// The cache is optional: the API stays up without Redis, it just
	// recomputes dashboards and recommendations on every request.
	store, err := cache.New(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		logger.Warn("redis unavailable, running without cache", "error", err)
		store = nil
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	bookRepo := repository.NewBookRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	videoRepo := repository.NewVideoRepository(db)

	// Retire refresh tokens that expired while the server was down.
	if err := refreshTokenRepo.DeleteExpired(); err != nil {
		logger.Warn("failed to sweep expired refresh tokens", "error", err)
	}

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	bookService := service.NewBookService(bookRepo)
	genreService := service.NewGenreService(genreRepo)
	libraryService := service.NewLibraryService(libraryRepo, bookRepo, userRepo, store, logger)
	reviewService := service.NewReviewService(reviewRepo, bookRepo, logger)
	dashboardService := service.NewDashboardService(libraryRepo, userRepo, store, logger)
	recommendService := service.NewRecommendationService(libraryRepo, bookRepo, store, logger)
	videoService := service.NewVideoService(videoRepo)
	userService := service.NewUserService(userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.AccessTokenTTL)
	bookHandler := handler.NewBookHandler(bookService)
	genreHandler := handler.NewGenreHandler(genreService)
	libraryHandler := handler.NewLibraryHandler(libraryService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, recommendService)
	videoHandler := handler.NewVideoHandler(videoService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler(db, store)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	requireAuth := middleware.AuthMiddleware(authService)
	authLimiter := middleware.RateLimit(rate.Limit(cfg.AuthRateLimit), cfg.AuthRateBurst)

	// Authentication
	authHandler.RegisterRoutes(api.Group("/auth"), authLimiter)
	authHandler.RegisterProtectedRoutes(api.Group("/auth", requireAuth))

	// Public catalog, admin-only mutations
	adminBooks := api.Group("/books", requireAuth, middleware.RequireAdmin())
	bookHandler.RegisterRoutes(api.Group("/books"), adminBooks)
	genreHandler.RegisterRoutes(api.Group("/genres"), api.Group("/genres", requireAuth, middleware.RequireAdmin()))
	videoHandler.RegisterRoutes(api.Group("/videos"), api.Group("/videos", requireAuth, middleware.RequireAdmin()))

	// Reviews hang off the book routes
	reviewHandler.RegisterRoutes(api.Group("/books"), api.Group("/books", requireAuth), adminBooks)

	// Per-user shelf, dashboard and recommendations
	libraryHandler.RegisterRoutes(api.Group("/library", requireAuth))
	dashboardHandler.RegisterRoutes(api.Group("", requireAuth))

	// Admin user management
	userHandler.RegisterRoutes(api.Group("/admin", requireAuth, middleware.RequireAdmin()))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

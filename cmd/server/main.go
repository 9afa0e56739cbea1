package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skycast/backend/internal/config"
	httpdelivery "github.com/skycast/backend/internal/delivery/http"
	"github.com/skycast/backend/internal/repository/postgres"
	"github.com/skycast/backend/internal/service"
)

func main() {
	cfg := config.Load()

	// Database connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		userRepo     service.UserRepository
		favoriteRepo service.FavoriteRepository
	)

	pool := connect(ctx, cfg.DatabaseURL)
	if pool != nil {
		defer pool.Close()
		repo := postgres.NewPostgresRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("Schema setup failed: %v", err)
		}
		userRepo = repo
		favoriteRepo = repo
		log.Println("Connected to PostgreSQL")
	} else {
		log.Println("Running with in-memory storage (demo mode)")
		mock := postgres.NewMockRepository()
		userRepo = mock
		favoriteRepo = mock
	}

	// Dependency Injection: Services
	weatherSvc := service.NewWeatherService(cfg.GeocodingBaseURL, cfg.ForecastBaseURL)
	radarSvc := service.NewRadarService(cfg.RadarBaseURL)
	authSvc := service.NewAuthService(userRepo)
	favoritesSvc := service.NewFavoritesService(favoriteRepo)
	tokenSvc := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "SkyCast API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: httpdelivery.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Routes
	handler := httpdelivery.NewHandler(weatherSvc, radarSvc, authSvc, favoritesSvc, tokenSvc)
	httpdelivery.SetupRoutes(app, handler)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}

// connect opens the pgx pool, or returns nil to fall back to demo mode.
func connect(ctx context.Context, databaseURL string) *pgxpool.Pool {
	if databaseURL == "" {
		return nil
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		log.Printf("Warning: Could not connect to database: %v", err)
		return nil
	}
	return pool
}

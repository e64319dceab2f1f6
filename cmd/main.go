package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	recovermw "github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/MannyGDy/Captive-Portal/config"
	"github.com/MannyGDy/Captive-Portal/db"
	"github.com/MannyGDy/Captive-Portal/internal/portal/handler"
	repo "github.com/MannyGDy/Captive-Portal/internal/portal/repository/postgres"
	"github.com/MannyGDy/Captive-Portal/internal/portal/service"
	"github.com/MannyGDy/Captive-Portal/pkg/logger"
	"github.com/MannyGDy/Captive-Portal/pkg/metrics"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env, cfg.LogLevel, "captive-portal")
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Error("failed to run migrations", logger.Error(err))
		os.Exit(1)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Error("failed to connect to database", logger.Error(err))
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := repo.NewUserRepository(pool)
	adminRepo := repo.NewAdminRepository(pool)
	sessionRepo := repo.NewSessionRepository(pool)
	settingsRepo := repo.NewSettingsRepository(pool)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryHours)
	userService := service.NewUserService(userRepo, sessionRepo, tokenService, log)
	adminService := service.NewAdminService(adminRepo, userRepo, sessionRepo, settingsRepo, tokenService, log)
	sessionService := service.NewSessionService(sessionRepo)
	reportService := service.NewReportService(userRepo, sessionRepo)

	if err := adminService.EnsureDefaultAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminEmail); err != nil {
		log.Error("failed to bootstrap default admin", logger.Error(err))
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{AppName: "captive-portal"})

	app.Use(recovermw.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type, Authorization, X-MAC-Address, X-Mikrotik-Session",
	}))

	mtr := metrics.New()
	app.Use(mtr.Middleware())
	app.Get("/metrics", mtr.Handler())

	app.Use("/api", limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: 15 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Too many requests from this IP, please try again later.",
			})
		},
	}))

	authMiddleware := handler.NewAuthMiddleware(tokenService)
	authHandler := handler.NewAuthHandler(userService, log)
	adminHandler := handler.NewAdminHandler(adminService, sessionService, reportService, log)
	handler.RegisterRoutes(app, authHandler, adminHandler, authMiddleware)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("server stopped", logger.Error(err))
		}
	}()
	log.Info("captive portal started", logger.String("port", cfg.Port), logger.String("env", cfg.Env))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("graceful shutdown failed", logger.Error(err))
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"sea-catering-backend/internal/client"
	"sea-catering-backend/internal/config"
	"sea-catering-backend/internal/repository"
	"sea-catering-backend/internal/server"
	"sea-catering-backend/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)

	db := client.InitSqliteClient(cfg.DatabaseURL)

	planRepo := repository.NewPlanRepository(db)
	userRepo := repository.NewUserRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWT)
	catalogService := service.NewCatalogService(planRepo)
	subscriptionService := service.NewSubscriptionService(db, planRepo, subscriptionRepo)
	testimonialService := service.NewTestimonialService(testimonialRepo)
	metricsService := service.NewMetricsService(subscriptionRepo)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer seedCancel()
	if err := catalogService.SeedDefaultPlans(seedCtx); err != nil {
		logger.Error("seed plan catalog", slog.Any("error", err))
		os.Exit(1)
	}
	if err := authService.EnsureAdmin(seedCtx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
		logger.Error("seed admin account", slog.Any("error", err))
		os.Exit(1)
	}

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(
		logger,
		authService,
		catalogService,
		subscriptionService,
		testimonialService,
		metricsService,
	)

	logger.Info("starting HTTP server", slog.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		logger.Error("HTTP server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}
}

func newLogger(cfg config.Log) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

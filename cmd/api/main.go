package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nitrondigital/wholesaling-api/internal/api/router"
	appconfig "github.com/nitrondigital/wholesaling-api/internal/config"
	"github.com/nitrondigital/wholesaling-api/internal/intake"
	"github.com/nitrondigital/wholesaling-api/internal/notify"
	"github.com/nitrondigital/wholesaling-api/internal/observability/metrics"
	"github.com/nitrondigital/wholesaling-api/internal/relay"
	"github.com/nitrondigital/wholesaling-api/pkg/logging"
)

func main() {
	// Load .env in development; in deployment the environment is already set.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting wholesaling-api server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Datastore. Booting without a credential is allowed: the pipeline then
	// raises an explicit configuration error on every persistence attempt,
	// which is logged but never blocks the visitor-facing response.
	var repo intake.Repository
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		repo = intake.NewPostgresRepository(pool)
	} else {
		logger.Warn("DATABASE_URL not set; submissions will not be persisted")
		repo = intake.NewDisabledRepository()
	}

	relayClient := relay.New(relay.Config{
		URL:     cfg.LeadsWebhookURL,
		Timeout: cfg.WebhookTimeout,
		Logger:  logger,
	})
	if relayClient == nil {
		logger.Warn("LEADS_WEBHOOK_URL not set; webhook relay disabled")
	}

	var mailer notify.EmailSender
	if sender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sender != nil {
		mailer = sender
	}

	pipeline := intake.NewPipeline(intake.PipelineConfig{
		Repository: repo,
		Relay:      relayClient,
		Mailer:     mailer,
		NotifyTo:   cfg.NotifyEmail,
		Metrics:    metrics.NewIntakeMetrics(nil),
		Logger:     logger,
	})

	r := router.New(&router.Config{
		Logger:             logger,
		IntakeHandler:      intake.NewHandler(pipeline, logger),
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		GeofenceEnabled:    cfg.GeofenceEnabled,
		GeofenceCountry:    cfg.GeofenceCountry,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

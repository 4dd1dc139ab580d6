package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/mamadbah2/ordercast/internal/config"
	"github.com/mamadbah2/ordercast/internal/scheduler"
	"github.com/mamadbah2/ordercast/internal/server/handlers"
	"github.com/mamadbah2/ordercast/internal/server/router"
	"github.com/mamadbah2/ordercast/internal/service/notify"
	"github.com/mamadbah2/ordercast/internal/telemetry"
	whatsappclient "github.com/mamadbah2/ordercast/pkg/clients/whatsapp"
	"github.com/mamadbah2/ordercast/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	metrics := telemetry.New(prometheus.DefaultRegisterer)

	whatsClient := whatsappclient.NewClient(cfg.WhatsApp)
	notifySvc := notify.NewService(*cfg, whatsClient, metrics, baseLogger.Named("svc.notify"))
	webhookHandler := handlers.NewWebhookHandler(cfg.Shopify.WebhookSecret, notifySvc, metrics, baseLogger.Named("handlers.webhook"))
	engine := router.New(webhookHandler, metrics, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Summary, metrics, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}

	// Orders acknowledged before shutdown still get their dispatch attempt.
	if err := webhookHandler.Drain(shutdownCtx); err != nil {
		baseLogger.Warn("shutdown before in-flight notifications finished", zap.Error(err))
	}
}

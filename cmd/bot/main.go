package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kspsusmitha/fitness-app/internal/app"
	"github.com/kspsusmitha/fitness-app/internal/bot"
	"github.com/kspsusmitha/fitness-app/internal/config"
	"github.com/kspsusmitha/fitness-app/internal/metrics"
	"github.com/kspsusmitha/fitness-app/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := run(); err != nil {
		utils.Log.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// -----------------------
	// CONFIG
	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	utils.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if err := cfg.ValidateBot(); err != nil {
		return err
	}

	// -----------------------
	// CATALOG, SESSIONS, SERVICES
	a, err := app.Build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build services: %w", err)
	}
	defer a.Close()

	// -----------------------
	// BOT
	adminIDs := config.ParseAdminIDs(cfg.Telegram.AdminIDs)
	utils.Log.With(map[string]interface{}{"admins": len(adminIDs)}).Info("Loaded admin IDs")

	botApp, err := bot.NewBotApp(
		cfg.Telegram.BotToken,
		a.Services,
		metrics.New(prometheus.DefaultRegisterer),
		adminIDs,
		cfg.Telegram.Timeout,
	)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}
	botApp.API.Debug = cfg.Telegram.Debug

	// -----------------------
	// METRICS
	if cfg.Metrics.Addr != "" {
		srv := metricsServer(cfg.Metrics.Addr)
		go func() {
			utils.Log.Info("Metrics server starting on " + cfg.Metrics.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				utils.Log.Error("Metrics server failed: " + err.Error())
			}
		}()
		defer shutdown(srv)
	}

	utils.Log.Info("Telegram bot starting...")
	botApp.Run(ctx)
	return nil
}

func metricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Log.Error("Metrics server shutdown: " + err.Error())
	}
}

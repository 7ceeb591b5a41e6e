package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adspark-ai-wizard/internal/app"
	"adspark-ai-wizard/internal/config"
)

// main is the entry point of the campaign generator API. It loads
// configuration, wires the store, provider and reporting adapters, then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.NewLogger(os.Stdout)
	if cfg.Provider.APIKey == "" {
		logger.Warn("PROVIDER_API_KEY is not set; generation requests will fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup error", slog.Any("error", err))
		return
	}
	defer application.Close()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           application.Handler(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("provider", cfg.Provider.Kind),
			slog.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case <-ctx.Done():
		// the listener failed; exit code stays 1
	}

	// in-flight generations may take most of the request timeout
	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.RequestTimeout+5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"ads-board/internal/adapter/hasher"
	"ads-board/internal/adapter/http"
	"ads-board/internal/adapter/usecase"
	"ads-board/internal/config"
	"ads-board/internal/db"
)

// main is the entry point of the ads board server. It loads configuration,
// opens storage (running migrations when configured), wires the use case
// and starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeStorage, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage error", slog.String("driver", cfg.StorageDriver), slog.Any("error", err))
		return
	}
	defer closeStorage()

	ownerHasher, err := hasher.NewBcrypt(cfg.Hash.Cost)
	if err != nil {
		logger.Error("hasher error", slog.Any("error", err))
		return
	}
	svc := usecase.NewAdUseCase(repo, ownerHasher)

	if cfg.SeedDemoAds > 0 {
		if err = db.Seed(ctx, svc, cfg.SeedDemoAds); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo ads seeded", slog.Int("count", cfg.SeedDemoAds))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler := httpadapter.NewHandler(svc, logger, reg)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

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

	httpadapter "adboard/internal/adapter/http"

	"adboard/internal/adapter/crudstore"
	"adboard/internal/adapter/usecase"
	"adboard/internal/config"
	"adboard/internal/devstore"
	"adboard/internal/session"
)

// main is the entry point of the campaign dashboard. It loads configuration,
// optionally starts the embedded document store and seeds demo data, wires
// the repository, usecase and HTTP handler, then serves until a termination
// signal arrives and shuts down gracefully.
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
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, cfg.Log.SlogOptions())
		default:
			handler = slog.NewTextHandler(os.Stdout, cfg.Log.SlogOptions())
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Optionally run an in-process document store for local development.
	// The repository talks to it over loopback exactly as it would talk to
	// the hosted store.
	var storeSrv *http.Server
	if cfg.Store.Embedded {
		port := cfg.Store.BaseURL.Port()
		if port == "" {
			logger.Error("embedded store requires a port in STORE_BASE_URL")
			os.Exit(1)
		}
		storeSrv = &http.Server{Addr: ":" + port, Handler: devstore.New()}
		go func() {
			logger.Info("embedded store listening", slog.String("addr", storeSrv.Addr))
			if err := storeSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("embedded store error", slog.Any("error", err))
			}
		}()
	}

	repo := crudstore.NewCampaignRepository(http.DefaultClient, cfg.Store.BaseURL, cfg.Store.Collection)

	// Optionally seed demo campaigns if configured. Only fills an empty
	// collection.
	if cfg.Store.Seed {
		if err = crudstore.Seed(ctx, repo); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo campaigns seeded")
		}
	}

	svc := usecase.NewCampaignUseCase(repo)
	sessions := session.NewStore(cfg.Session)

	handler := httpadapter.NewHandler(svc, sessions, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	if storeSrv != nil {
		if err = storeSrv.Shutdown(ctx); err != nil {
			logger.Error("embedded store shutdown error", slog.Any("error", err))
		}
	}
}

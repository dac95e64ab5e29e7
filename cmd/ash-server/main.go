package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashub/ash/pkg/ash/config"
	"github.com/ashub/ash/pkg/ash/database"
	"github.com/ashub/ash/pkg/ash/logging"
	"github.com/ashub/ash/pkg/ash/server"
	"go.uber.org/zap"
)

// @title Academic Support Hub API
// @version 1.0
// @description Study groups, shared resources, Q&A and a personal planner for students.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	db, err := database.Connect(cfg.DB)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	logger.Info("database ready", zap.String("driver", cfg.DB.Driver))

	app := server.Build(server.Deps{DB: db, Config: cfg, Log: logger})

	if cfg.SeedFile != "" {
		res, err := app.Fixtures.LoadFile(context.Background(), cfg.SeedFile)
		if err != nil {
			return err
		}
		logger.Info("fixtures loaded",
			zap.String("file", cfg.SeedFile),
			zap.Int("imported", res.Imported),
			zap.Int("skipped", res.Skipped),
			zap.Strings("errors", res.Errors),
		)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case sig := <-shutdown:
		logger.Info("shutting down", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			_ = srv.Close()
			return err
		}
	}
	return nil
}

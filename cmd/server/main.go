package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/champion-rotations/internal/api"
	"github.com/dom/champion-rotations/internal/config"
	"github.com/dom/champion-rotations/internal/logging"
	"github.com/dom/champion-rotations/internal/repository/sqlstore"
	"github.com/dom/champion-rotations/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connections are opened per request; nothing is dialed here unless
	// the schema has to be created.
	connector := sqlstore.NewConnector(cfg)
	if cfg.DBAutoMigrate {
		if err := connector.Migrate(context.Background()); err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	repos := sqlstore.NewRepositories(connector)
	services := service.NewServices(repos, cfg, logger)
	router := api.NewRouter(services, logger)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

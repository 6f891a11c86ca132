package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camaradigital/gabinete-api/internal/config"
	"github.com/camaradigital/gabinete-api/internal/logger"
	"github.com/camaradigital/gabinete-api/internal/server"
	"github.com/camaradigital/gabinete-api/internal/storage/postgres"
	"github.com/camaradigital/gabinete-api/internal/storage/uploads"
)

func main() {
	cfg := config.Load()

	logLevel := "info"
	if cfg.Server.GinMode == "debug" {
		logLevel = "debug"
	}
	logger.Initialize(logLevel)
	log := logger.Get()

	container, err := postgres.NewContainer(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage", "error", err)
	}

	store, err := uploads.NewStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize attachment store", "error", err)
	}

	srv := server.New(cfg, container, store)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal("Server stopped unexpectedly", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Error("Failed to stop server gracefully", "error", err)
	}

	if err := container.Close(); err != nil {
		log.Error("Failed to close storage container", "error", err)
	}

	log.Info("Shutdown complete")
}

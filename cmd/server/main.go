package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/localnerve/enxovaldb/internal/config"
	"github.com/localnerve/enxovaldb/internal/logger"
	"github.com/localnerve/enxovaldb/internal/server"
	"github.com/localnerve/enxovaldb/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	_ "github.com/localnerve/enxovaldb/docs/api" // Swagger docs
)

// @title Enxoval Missionário API
// @version 1.0.0
// @description Donation registry for a missionary's mission trousseau: users, items, categories and personal info
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/enxovaldb
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:5000
// @BasePath /
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg)

	// Open the document store and create any missing document
	docs, err := store.Open(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to open document store")
	}
	defer docs.Close()

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = store.Seed(seedCtx, docs)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("Failed to seed documents")
	}

	app := server.New(cfg, docs, log, server.Options{
		Registerer: prometheus.DefaultRegisterer,
		Swagger:    true,
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Gracefully shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Warn("Shutdown did not complete cleanly")
		}
	}()

	// Start server
	log.WithFields(logrus.Fields{
		"port":  cfg.Port,
		"store": cfg.StoreType,
	}).Info("Starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Error("Failed to start server")
		return
	}

	log.Info("Server stopped")
}

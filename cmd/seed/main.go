package main

import (
	"log/slog"
	"os"

	"github.com/oggyb/matching-service/internal/config"
	"github.com/oggyb/matching-service/internal/db"
	"github.com/oggyb/matching-service/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.New()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger.InitFromConfig(cfg)
	log := logger.Named("seed")

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	if err := db.SeedTestData(database); err != nil {
		log.Error("failed to seed", "err", err)
		os.Exit(1)
	}

	log.Info("seeding completed")
}

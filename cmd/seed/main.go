// Package main provides a tool to load the bundled country reference
// data into the database.
//
// Usage:
//
//	go run ./cmd/seed
//	DATABASE_PATH=/data/tripatlas.sqlite go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tripatlas/tripatlas-server/internal/config"
	"github.com/tripatlas/tripatlas-server/internal/logger"
	"github.com/tripatlas/tripatlas-server/internal/seed"
	"github.com/tripatlas/tripatlas-server/internal/store/sqlite"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	st, err := sqlite.Open(cfg.Database.Path, log.Logger)
	if err != nil {
		log.Fatal("Failed to open database", "path", cfg.Database.Path, "error", err)
	}
	defer st.Close()

	inserted, err := seed.Apply(context.Background(), st, log.Logger)
	if err != nil {
		log.Fatal("Seeding failed", "error", err)
	}

	log.Info("Seeding complete", "inserted", inserted)
}

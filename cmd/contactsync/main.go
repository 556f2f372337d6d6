package main

import (
	"context"
	"fmt"
	"os"

	"github.com/natserract/activecampaign/pkg/activecampaign"
	"github.com/natserract/activecampaign/pkg/config"
	"github.com/natserract/activecampaign/pkg/contactsync"
	"github.com/natserract/activecampaign/pkg/contactsync/postgres"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	dbCfg := postgres.NewConfig()
	db, err := postgres.New(dbCfg, logger)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	client := activecampaign.NewClientWithLogger(cfg, logger)
	source := contactsync.NewPostgresSource(db, dbCfg.ContactsTable, logger)
	syncSvc := contactsync.NewService(client, source, logger)

	metrics, err := syncSvc.SyncAll(context.Background())
	if err != nil {
		logger.Error("Failed to sync contacts", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sync Metrics:\n")
	fmt.Printf("  Succeeded: %d\n", metrics.Succeeded)
	fmt.Printf("  Failed: %d\n", metrics.Failed)
	fmt.Printf("  Skipped: %d\n", metrics.Skipped)

	if metrics.Failed > 0 {
		os.Exit(2)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/breedwise/breedwise/internal/config"
	"github.com/breedwise/breedwise/internal/db"
	"github.com/breedwise/breedwise/internal/ingestion"
	"github.com/breedwise/breedwise/internal/logger"
)

var syncBreedsCmd = &cobra.Command{
	Use:   "sync-breeds",
	Short: "Sync the breed catalog from The Dog API",
	Long: `Fetch every breed from The Dog API, derive trait scores from temperament
text, and insert breeds not yet in the catalog. Safe to re-run; existing
breeds are skipped.`,
	RunE: runSyncBreeds,
}

func init() {
	rootCmd.AddCommand(syncBreedsCmd)
}

func runSyncBreeds(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	database, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer database.Close()

	client := ingestion.NewDogAPIClient(cfg.DogAPI.BaseURL, cfg.DogAPI.APIKey)
	syncer := ingestion.NewSyncer(client, database, log)

	result, err := syncer.Sync(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Sync complete: %d fetched, %d created, %d skipped, %d failed\n",
		result.Fetched, result.Created, result.Skipped, result.Failed)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/breedwise/breedwise/internal/config"
	"github.com/breedwise/breedwise/internal/db"
	"github.com/breedwise/breedwise/internal/enrichment"
	"github.com/breedwise/breedwise/internal/llm"
	"github.com/breedwise/breedwise/internal/logger"
)

var enrichLimit int

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Generate AI summaries and pros/cons for breeds missing them",
	Long: `Back-fill narrative content on breed profiles. Breeds that already
carry a summary and pros/cons are left untouched.`,
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().IntVar(&enrichLimit, "limit", 100, "Maximum breeds to enrich in one run")
	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	database, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer database.Close()

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.Gemini.APIKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	enricher := enrichment.NewEnricher(client, database, log)
	result, err := enricher.Run(ctx, enrichLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Enrichment complete: %d candidates, %d enriched, %d failed\n",
		result.Candidates, result.Enriched, result.Failed)
	return nil
}

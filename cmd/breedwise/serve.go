package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/breedwise/breedwise/internal/config"
	"github.com/breedwise/breedwise/internal/logger"
	"github.com/breedwise/breedwise/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the breed catalog, quiz matching, and comparison endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()

	srv, err := server.New(server.Config{
		Port:        cfg.Server.Port,
		DatabaseURL: cfg.Database.URL,
		App:         cfg,
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// Package main provides the entry point for the breedwise service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "breedwise",
	Short: "Dog breed matching service",
	Long:  "Breedwise ingests a dog breed catalog, derives trait scores, and serves AI-ranked breed recommendations from quiz answers via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

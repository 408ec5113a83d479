// Package main provides the entry point for the storyvid narration sync CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storyvid_agent",
	Short: "Article-to-storyboard narration sync toolkit",
	Long:  "Storyvid turns a Chinese article into a numbered shot script, builds an image timeline from narration records, and scores how well narration and images stay in sync.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

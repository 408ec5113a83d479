package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ljc0311/storyvid/internal/ingestion"
	"github.com/spf13/cobra"
)

var ingestArticleCmd = &cobra.Command{
	Use:   "ingest-article",
	Short: "Ingest an article from a text file or URL",
	Long:  "Ingest an article from either a text file or URL, clean the content, and output cleaned text with metadata.",
	RunE:  runIngestArticle,
}

var (
	ingestTextFile   string
	ingestURL        string
	ingestOutDir     string
	ingestAPIKey     string
	ingestUseBrowser bool
)

func init() {
	ingestArticleCmd.Flags().StringVarP(&ingestTextFile, "text-file", "t", "", "Path to text file containing the article")
	ingestArticleCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the article from")
	ingestArticleCmd.Flags().StringVarP(&ingestOutDir, "out", "o", "", "Output directory (required)")
	ingestArticleCmd.Flags().StringVar(&ingestAPIKey, "api-key", "", "Gemini API key for metadata extraction (optional)")
	ingestArticleCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")

	if err := ingestArticleCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(ingestArticleCmd)
}

func runIngestArticle(cmd *cobra.Command, args []string) error {
	// Validate mutually exclusive flags
	if ingestTextFile == "" && ingestURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if ingestTextFile != "" && ingestURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	if ingestAPIKey == "" {
		ingestAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	var cleanedText string
	var metadata *ingestion.Metadata
	var err error

	// Ingest from either text file or URL
	if ingestTextFile != "" {
		cleanedText, metadata, err = ingestion.IngestFromFile(ingestTextFile)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	} else {
		cleanedText, metadata, err = ingestion.IngestFromURL(context.Background(), ingestURL, ingestAPIKey, ingestUseBrowser, false)
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	// Write output files
	if err := ingestion.WriteOutput(ingestOutDir, cleanedText, metadata); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully ingested article\n")
	fmt.Fprintf(os.Stdout, "Cleaned text: %s/article.cleaned.txt\n", ingestOutDir)
	fmt.Fprintf(os.Stdout, "Metadata: %s/article.meta.json\n", ingestOutDir)

	return nil
}

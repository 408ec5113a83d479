package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ljc0311/storyvid/internal/allocation"
	"github.com/ljc0311/storyvid/internal/llm"
	"github.com/ljc0311/storyvid/internal/observability"
	"github.com/ljc0311/storyvid/internal/pipeline"
	"github.com/spf13/cobra"
)

var storyboardCmd = &cobra.Command{
	Use:   "storyboard",
	Short: "Split an article into sentences and allocate them to numbered shots",
	Long:  "Splits the article into sentences, packs them into shots under the rune budget, optionally generates a shot script with the LLM, and validates that every sentence is covered.",
	RunE:  runStoryboard,
}

var (
	storyboardArticle  string
	storyboardOutDir   string
	storyboardMaxShots int
	storyboardAPIKey   string
)

func init() {
	storyboardCmd.Flags().StringVarP(&storyboardArticle, "article", "a", "", "Path to cleaned article text file (required)")
	storyboardCmd.Flags().StringVarP(&storyboardOutDir, "out", "o", "", "Output directory (required)")
	storyboardCmd.Flags().IntVar(&storyboardMaxShots, "max-shots", 0, "Hard cap on the number of shots")
	storyboardCmd.Flags().StringVar(&storyboardAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")

	if err := storyboardCmd.MarkFlagRequired("article"); err != nil {
		panic(fmt.Sprintf("failed to mark article flag as required: %v", err))
	}
	if err := storyboardCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(storyboardCmd)
}

func runStoryboard(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	data, err := os.ReadFile(storyboardArticle)
	if err != nil {
		return fmt.Errorf("failed to read article: %w", err)
	}

	budget := allocation.DefaultBudget()
	if storyboardMaxShots > 0 {
		budget.MaxShots = storyboardMaxShots
	}

	if storyboardAPIKey == "" {
		storyboardAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	// Without an API key the shot records are derived directly from the
	// allocation instead of an LLM-generated script.
	var gen pipeline.Generator
	if storyboardAPIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), storyboardAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		gen = llm.NewTierGenerator(client, llm.TierStandard)
	}

	result, err := pipeline.Storyboard(ctx, string(data), gen, budget)
	if err != nil {
		return fmt.Errorf("storyboard generation failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintShotScript(result.Records)
	printer.PrintCoverageReport(&result.Report)

	if err := pipeline.WriteStoryboardArtifacts(storyboardOutDir, result); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Generated %d shots from %d sentences\n", len(result.Records), len(result.Sentences))
	fmt.Fprintf(os.Stdout, "Shot records: %s/shot_records.json\n", storyboardOutDir)
	fmt.Fprintf(os.Stdout, "Coverage report: %s/coverage_report.json\n", storyboardOutDir)

	return nil
}

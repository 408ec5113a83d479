package main

import (
	"fmt"
	"os"

	"github.com/ljc0311/storyvid/internal/observability"
	"github.com/ljc0311/storyvid/internal/pipeline"
	"github.com/ljc0311/storyvid/internal/syncdetect"
	"github.com/spf13/cobra"
)

var analyzeSyncCmd = &cobra.Command{
	Use:   "analyze-sync",
	Short: "Score how well narration and images stay in sync",
	Long:  "Reads project records, runs the full battery of sync checks (counts, durations, content match, asset quality), and writes a scored report with Chinese-language recommendations and auto-fix suggestions.",
	RunE:  runAnalyzeSync,
}

var (
	analyzeRecords string
	analyzeOutDir  string
)

func init() {
	analyzeSyncCmd.Flags().StringVarP(&analyzeRecords, "records", "r", "", "Path to project records JSON (required)")
	analyzeSyncCmd.Flags().StringVarP(&analyzeOutDir, "out", "o", "", "Output directory (required)")

	if err := analyzeSyncCmd.MarkFlagRequired("records"); err != nil {
		panic(fmt.Sprintf("failed to mark records flag as required: %v", err))
	}
	if err := analyzeSyncCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeSyncCmd)
}

func runAnalyzeSync(_ *cobra.Command, _ []string) error {
	records, err := pipeline.LoadRecords(analyzeRecords)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	detector := syncdetect.NewDetector(syncdetect.DefaultThresholds())
	result := detector.Analyze(records.Narration, records.Images)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSyncAnalysis(result)

	if err := pipeline.WriteJSONArtifact(analyzeOutDir, "sync_analysis.json", result); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Sync quality: %.2f (score %.2f), %d issues\n", result.OverallQuality, result.SyncScore, len(result.Issues))
	fmt.Fprintf(os.Stdout, "Analysis: %s/sync_analysis.json\n", analyzeOutDir)

	return nil
}

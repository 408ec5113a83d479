package main

import (
	"fmt"
	"os"

	"github.com/ljc0311/storyvid/internal/observability"
	"github.com/ljc0311/storyvid/internal/pipeline"
	"github.com/ljc0311/storyvid/internal/timeline"
	"github.com/spf13/cobra"
)

var buildTimelineCmd = &cobra.Command{
	Use:   "build-timeline",
	Short: "Build an image timeline from narration records",
	Long:  "Reads project records with narration segments and image requirements, folds them into a gap-free timeline with per-image start/end times, and writes the optimized timeline as JSON.",
	RunE:  runBuildTimeline,
}

var (
	timelineRecords    string
	timelineOutDir     string
	timelineMinSeconds float64
	timelineMaxSeconds float64
	timelineTransition float64
)

func init() {
	buildTimelineCmd.Flags().StringVarP(&timelineRecords, "records", "r", "", "Path to project records JSON (required)")
	buildTimelineCmd.Flags().StringVarP(&timelineOutDir, "out", "o", "", "Output directory (required)")
	buildTimelineCmd.Flags().Float64Var(&timelineMinSeconds, "min-seconds", 0, "Shortest allowed image duration")
	buildTimelineCmd.Flags().Float64Var(&timelineMaxSeconds, "max-seconds", 0, "Longest allowed image duration")
	buildTimelineCmd.Flags().Float64Var(&timelineTransition, "transition", 0, "Seconds reserved for each transition")

	if err := buildTimelineCmd.MarkFlagRequired("records"); err != nil {
		panic(fmt.Sprintf("failed to mark records flag as required: %v", err))
	}
	if err := buildTimelineCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(buildTimelineCmd)
}

func runBuildTimeline(_ *cobra.Command, _ []string) error {
	records, err := pipeline.LoadRecords(timelineRecords)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	cfg := timeline.DefaultConfig()
	if timelineMinSeconds > 0 {
		cfg.MinImageDuration = timelineMinSeconds
	}
	if timelineMaxSeconds > 0 {
		cfg.MaxImageDuration = timelineMaxSeconds
	}
	if timelineTransition > 0 {
		cfg.TransitionDuration = timelineTransition
	}
	if cfg.MinImageDuration > cfg.MaxImageDuration {
		return fmt.Errorf("--min-seconds must not exceed --max-seconds")
	}

	result := timeline.Build(records.Narration, records.Images, cfg)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintTimeline(&result)

	if err := pipeline.WriteJSONArtifact(timelineOutDir, "timeline.json", result); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Built timeline with %d segments (%.1fs total)\n", result.Metrics.SegmentCount, result.Metrics.TotalDuration)
	fmt.Fprintf(os.Stdout, "Timeline: %s/timeline.json\n", timelineOutDir)

	return nil
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ljc0311/storyvid/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintShotScript outputs a human-readable summary of the parsed shot records.
func (p *Printer) PrintShotScript(shots []types.ShotRecord) {
	if len(shots) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total shots: %d\n\n", len(shots)))

	count := min(len(shots), maxItemsToShow)
	for i := 0; i < count; i++ {
		shot := shots[i]
		text := shot.OriginalText
		if len([]rune(text)) > 20 {
			text = string([]rune(text)[:17]) + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", shot.Index, text))
		if shot.Title != "" {
			sb.WriteString(fmt.Sprintf("    Title: %s\n", shot.Title))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(shots) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more shots", len(shots)-maxItemsToShow))
	}

	p.printBox("SHOT SCRIPT", sb.String())
}

// PrintCoverageReport outputs the coverage validation verdict for a shot script.
func (p *Printer) PrintCoverageReport(report *types.CoverageReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Coverage:   %.1f%%\n", report.CoverageRatio*100))
	sb.WriteString(fmt.Sprintf("Missing:    %d\n", len(report.MissingSentences)))
	sb.WriteString(fmt.Sprintf("Duplicates: %d\n", report.DuplicateShotCount))
	sb.WriteString(fmt.Sprintf("Empty:      %d\n", report.EmptyShotCount))
	sb.WriteString("\n")
	if report.IsComplete {
		sb.WriteString("Verdict: complete")
	} else {
		sb.WriteString("Verdict: incomplete")
	}

	if len(report.MissingSentences) > 0 {
		sb.WriteString("\n\nMissing sentences:\n")
		count := min(len(report.MissingSentences), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.MissingSentences[i]))
		}
		if len(report.MissingSentences) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more", len(report.MissingSentences)-3))
		}
	}

	p.printBox("COVERAGE REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTimeline outputs segment boundaries and aggregate metrics for a built timeline.
func (p *Printer) PrintTimeline(timeline *types.Timeline) {
	if timeline == nil || len(timeline.Segments) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Segments: %d   Total: %.1fs\n", timeline.Metrics.SegmentCount, timeline.Metrics.TotalDuration))
	sb.WriteString(fmt.Sprintf("Avg duration: %.2fs   Stddev: %.2fs\n", timeline.Metrics.AverageDuration, timeline.Metrics.DurationStdDev))
	sb.WriteString(fmt.Sprintf("Coverage: %.1f%%\n\n", timeline.Metrics.CoverageRatio*100))

	count := min(len(timeline.Segments), maxItemsToShow)
	for i := 0; i < count; i++ {
		seg := timeline.Segments[i]
		sb.WriteString(fmt.Sprintf("%6.2f → %6.2f  [%s]\n", seg.StartTime, seg.EndTime, seg.Transition))
	}
	if len(timeline.Segments) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more segments", len(timeline.Segments)-maxItemsToShow))
	}

	p.printBox("TIMELINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSyncAnalysis outputs the quality scores, detected issues, and
// recommendations from one analysis run.
func (p *Printer) PrintSyncAnalysis(result *types.SyncAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall quality: %.2f\n", result.OverallQuality))
	sb.WriteString(fmt.Sprintf("Sync score:      %.2f\n", result.SyncScore))
	sb.WriteString(fmt.Sprintf("Narration: %d   Images: %d\n", result.NarrationCount, result.ImageCount))

	if len(result.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		count := min(len(result.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			issue := result.Issues[i]
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", issue.Severity, issue.Description))
		}
		if len(result.Issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Issues)-maxItemsToShow))
		}
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(result.Recommendations), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Recommendations[i]))
		}
	}

	p.printBox("SYNC ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// Package pipeline provides the high-level orchestration for the storyboard
// and synchronization workflow.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ljc0311/storyvid/internal/allocation"
	"github.com/ljc0311/storyvid/internal/ingestion"
	"github.com/ljc0311/storyvid/internal/llm"
	"github.com/ljc0311/storyvid/internal/observability"
	"github.com/ljc0311/storyvid/internal/pipeline/steps"
	"github.com/ljc0311/storyvid/internal/schemas"
	"github.com/ljc0311/storyvid/internal/syncdetect"
	"github.com/ljc0311/storyvid/internal/timeline"
	"github.com/ljc0311/storyvid/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Step and category names attached to progress events and artifacts
const (
	StepArticle      = "article"
	StepShotScript   = "shot_script"
	StepCoverage     = "coverage_report"
	StepTimeline     = "timeline"
	StepSyncAnalysis = "sync_analysis"

	CategoryIngestion  = "ingestion"
	CategoryStoryboard = "storyboard"
	CategoryTimeline   = "timeline"
	CategoryAnalysis   = "analysis"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ArticlePath string
	ArticleURL  string
	RecordsPath string // project record file with narration/image arrays
	OutputDir   string
	APIKey      string
	Budget      allocation.Budget
	Timeline    timeline.Config
	Thresholds  syncdetect.Thresholds
	UseBrowser  bool
	Verbose     bool
	OnProgress  ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID,
			Content:  content,
		})
	}
}

// RunPipeline orchestrates the full storyboard workflow: article ingestion,
// shot-script generation with coverage validation, and — when a project
// record file is supplied — concurrent timeline construction and sync
// quality analysis.
func RunPipeline(ctx context.Context, opts RunOptions) error {
	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.NewString()

	// Sanity-check the canonical execution order against the step registry
	if err := steps.ValidateOrder(steps.DefaultOrder()); err != nil {
		return fmt.Errorf("invalid pipeline step order: %w", err)
	}

	// Step 1: Ingest article (from URL or file)
	var cleanedText string
	var metadata *ingestion.Metadata
	var err error

	if opts.ArticleURL != "" {
		fmt.Printf("Step 1/4: Ingesting article from URL: %s...\n", opts.ArticleURL)
		cleanedText, metadata, err = ingestion.IngestFromURL(ctx, opts.ArticleURL, opts.APIKey, opts.UseBrowser, opts.Verbose)
		if err != nil {
			return fmt.Errorf("article ingestion from URL failed: %w", err)
		}
	} else {
		fmt.Printf("Step 1/4: Ingesting article from file: %s...\n", opts.ArticlePath)
		cleanedText, metadata, err = ingestion.IngestFromFile(opts.ArticlePath)
		if err != nil {
			return fmt.Errorf("article ingestion from file failed: %w", err)
		}
	}
	emitProgress(&opts, runID, StepArticle, CategoryIngestion,
		fmt.Sprintf("Ingested article (%d chars)", len(cleanedText)), nil)

	if opts.OutputDir != "" {
		if err := ingestion.WriteOutput(opts.OutputDir, cleanedText, metadata); err != nil {
			return fmt.Errorf("writing article artifacts failed: %w", err)
		}
	}

	// Step 2: Generate the shot script with coverage validation
	fmt.Printf("Step 2/4: Generating shot script...\n")
	var gen Generator
	if opts.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
		if err != nil {
			return fmt.Errorf("creating LLM client failed: %w", err)
		}
		defer func() { _ = client.Close() }()
		gen = llm.NewTierGenerator(client, llm.TierStandard)
	}

	storyboard, err := Storyboard(ctx, cleanedText, gen, opts.Budget)
	if err != nil {
		return fmt.Errorf("storyboard generation failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintShotScript(storyboard.Records)
		printer.PrintCoverageReport(&storyboard.Report)
	}
	emitProgress(&opts, runID, StepShotScript, CategoryStoryboard,
		fmt.Sprintf("Generated %d shots (coverage %.1f%%)", len(storyboard.Records), storyboard.Report.CoverageRatio*100), nil)

	if opts.OutputDir != "" {
		if err := WriteStoryboardArtifacts(opts.OutputDir, storyboard); err != nil {
			return fmt.Errorf("writing storyboard artifacts failed: %w", err)
		}
	}
	if !storyboard.Report.IsComplete {
		fmt.Printf("Warning: shot script coverage incomplete (%.1f%%, %d missing)\n",
			storyboard.Report.CoverageRatio*100, len(storyboard.Report.MissingSentences))
	}

	// Without a project record file there is nothing to synchronize yet.
	if opts.RecordsPath == "" {
		fmt.Printf("Done! No project records supplied; skipping timeline and analysis.\n")
		return nil
	}

	// Step 3: Load and validate project records
	fmt.Printf("Step 3/4: Loading project records from %s...\n", opts.RecordsPath)
	records, err := LoadRecords(opts.RecordsPath)
	if err != nil {
		return fmt.Errorf("loading project records failed: %w", err)
	}

	// =========================================================================
	// PARALLEL EXECUTION: Timeline branch + Analysis branch
	// =========================================================================
	fmt.Printf("Step 4/4: Building timeline and analyzing sync quality...\n")

	g, _ := errgroup.WithContext(ctx)

	var builtTimeline types.Timeline
	var analysis *types.SyncAnalysisResult
	var tlMu, anMu sync.Mutex // Protect result assignments

	g.Go(func() error {
		result := timeline.Build(records.Narration, records.Images, opts.Timeline)
		tlMu.Lock()
		builtTimeline = result
		tlMu.Unlock()
		return nil
	})

	g.Go(func() error {
		detector := syncdetect.NewDetector(opts.Thresholds)
		result := detector.Analyze(records.Narration, records.Images)
		anMu.Lock()
		analysis = result
		anMu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	if opts.Verbose {
		printer.PrintTimeline(&builtTimeline)
		printer.PrintSyncAnalysis(analysis)
	}
	emitProgress(&opts, runID, StepTimeline, CategoryTimeline,
		fmt.Sprintf("Built timeline with %d segments", builtTimeline.Metrics.SegmentCount), nil)
	emitProgress(&opts, runID, StepSyncAnalysis, CategoryAnalysis,
		fmt.Sprintf("Sync quality %.2f, %d issues", analysis.OverallQuality, len(analysis.Issues)), analysis)

	if opts.OutputDir != "" {
		if err := WriteJSONArtifact(opts.OutputDir, "timeline.json", builtTimeline); err != nil {
			return fmt.Errorf("writing timeline artifact failed: %w", err)
		}
		if err := WriteJSONArtifact(opts.OutputDir, "sync_analysis.json", analysis); err != nil {
			return fmt.Errorf("writing sync analysis artifact failed: %w", err)
		}
	}

	fmt.Printf("Done! Artifacts written to %s\n", opts.OutputDir)
	return nil
}

// LoadRecords loads a project record file, validating it against the JSON
// schema when the schema file can be located, and always against the struct
// constraints.
func LoadRecords(path string) (*types.ProjectRecords, error) {
	if schemaPath := schemas.ResolveSchemaPath("schemas/project_records.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("project records failed schema validation: %w", err)
		}
	}
	return ingestion.LoadProjectRecords(path)
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ljc0311/storyvid/internal/allocation"
	"github.com/ljc0311/storyvid/internal/config"
	"github.com/ljc0311/storyvid/internal/pipeline"
	"github.com/ljc0311/storyvid/internal/syncdetect"
	"github.com/ljc0311/storyvid/internal/timeline"
	"github.com/spf13/cobra"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full article-to-sync pipeline end-to-end",
	Long: `Orchestrates the entire workflow: ingestion -> sentence splitting -> shot allocation -> script generation -> coverage validation -> timeline building -> sync analysis.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runArticle     string
	runArticleURL  string
	runRecords     string
	runOutDir      string
	runMaxShots    int
	runAPIKey      string
	runUseBrowser  bool
	runVerbose     bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runArticle, "article", "a", "", "Path to article text file (mutually exclusive with --article-url)")
	runCommand.Flags().StringVar(&runArticleURL, "article-url", "", "URL to fetch the article from (mutually exclusive with --article)")
	runCommand.Flags().StringVarP(&runRecords, "records", "r", "", "Path to project records JSON with narration and image arrays (optional)")
	runCommand.Flags().StringVarP(&runOutDir, "out", "o", "", "Output directory for artifacts")
	runCommand.Flags().IntVar(&runMaxShots, "max-shots", 0, "Hard cap on the number of shots")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("article") {
		cfg.Article = runArticle
	}
	if cmd.Flags().Changed("article-url") {
		cfg.ArticleURL = runArticleURL
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = runOutDir
	}
	if cmd.Flags().Changed("max-shots") {
		cfg.MaxShots = runMaxShots
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	budget := allocation.DefaultBudget()
	timelineCfg := timeline.DefaultConfig()
	defaults := config.Config{
		OutputDir:          "out",
		MinShotRunes:       budget.MinGroupRunes,
		TargetShotRunes:    budget.IdealGroupRunes,
		MaxShotRunes:       budget.MaxGroupRunes,
		MaxShots:           budget.MaxShots,
		MinSegmentSeconds:  timelineCfg.MinImageDuration,
		MaxSegmentSeconds:  timelineCfg.MaxImageDuration,
		TransitionDuration: timelineCfg.TransitionDuration,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.Article == "" && cfg.ArticleURL == "" {
		return fmt.Errorf("either --article or --article-url must be provided (via flag or config)")
	}
	if cfg.Article != "" && cfg.ArticleURL != "" {
		return fmt.Errorf("--article and --article-url are mutually exclusive; provide only one")
	}

	// Step 5: API Key handling. The pipeline degrades gracefully without a
	// key (shot records are derived directly from the allocation), so a
	// missing key is not an error here.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	opts := pipeline.RunOptions{
		ArticlePath: cfg.Article,
		ArticleURL:  cfg.ArticleURL,
		RecordsPath: runRecords,
		OutputDir:   cfg.OutputDir,
		APIKey:      cfg.APIKey,
		Budget: allocation.Budget{
			MinGroupRunes:   cfg.MinShotRunes,
			IdealGroupRunes: cfg.TargetShotRunes,
			MaxGroupRunes:   cfg.MaxShotRunes,
			MaxShots:        cfg.MaxShots,
		},
		Timeline: timeline.Config{
			MinImageDuration:   cfg.MinSegmentSeconds,
			MaxImageDuration:   cfg.MaxSegmentSeconds,
			TransitionDuration: cfg.TransitionDuration,
		},
		Thresholds: syncdetect.DefaultThresholds(),
		UseBrowser: cfg.UseBrowser,
		Verbose:    cfg.Verbose,
	}

	return pipeline.RunPipeline(ctx, opts)
}

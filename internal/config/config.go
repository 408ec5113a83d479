// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Article    string `json:"article,omitempty"`     // Path to article text file
	ArticleURL string `json:"article_url,omitempty"` // URL to fetch the article from
	OutputDir  string `json:"output_dir,omitempty"`  // Directory for generated artifacts

	// Shot allocation
	MinShotRunes    int `json:"min_shot_runes,omitempty"`    // Lower bound of the per-shot rune budget
	TargetShotRunes int `json:"target_shot_runes,omitempty"` // Target runes per shot
	MaxShotRunes    int `json:"max_shot_runes,omitempty"`    // Upper bound of the per-shot rune budget
	MaxShots        int `json:"max_shots,omitempty"`         // Hard cap on shot count

	// Timeline
	MinSegmentSeconds  float64 `json:"min_segment_seconds,omitempty"`  // Shortest allowed timeline segment
	MaxSegmentSeconds  float64 `json:"max_segment_seconds,omitempty"`  // Longest allowed timeline segment
	TransitionDuration float64 `json:"transition_duration,omitempty"` // Seconds reserved for each transition

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA sites
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Article != "" && c.ArticleURL != "" {
		return fmt.Errorf("config error: 'article' and 'article_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.MinShotRunes < 0 || c.TargetShotRunes < 0 || c.MaxShotRunes < 0 {
		return fmt.Errorf("config error: shot rune budgets must be non-negative")
	}
	if c.MaxShotRunes > 0 && c.MinShotRunes > c.MaxShotRunes {
		return fmt.Errorf("config error: 'min_shot_runes' must not exceed 'max_shot_runes'")
	}
	if c.MaxShots < 0 {
		return fmt.Errorf("config error: 'max_shots' must be non-negative")
	}
	if c.MinSegmentSeconds < 0 || c.MaxSegmentSeconds < 0 || c.TransitionDuration < 0 {
		return fmt.Errorf("config error: timeline durations must be non-negative")
	}
	if c.MaxSegmentSeconds > 0 && c.MinSegmentSeconds > c.MaxSegmentSeconds {
		return fmt.Errorf("config error: 'min_segment_seconds' must not exceed 'max_segment_seconds'")
	}

	// Validate file paths exist (if specified)
	if c.Article != "" {
		if _, err := os.Stat(c.Article); os.IsNotExist(err) {
			return fmt.Errorf("config error: article file not found: %s", c.Article)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Article == "" {
		result.Article = defaults.Article
	}
	if result.ArticleURL == "" {
		result.ArticleURL = defaults.ArticleURL
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.MinShotRunes == 0 {
		result.MinShotRunes = defaults.MinShotRunes
	}
	if result.TargetShotRunes == 0 {
		result.TargetShotRunes = defaults.TargetShotRunes
	}
	if result.MaxShotRunes == 0 {
		result.MaxShotRunes = defaults.MaxShotRunes
	}
	if result.MaxShots == 0 {
		result.MaxShots = defaults.MaxShots
	}

	// Float fields: use default if zero
	if result.MinSegmentSeconds == 0 {
		result.MinSegmentSeconds = defaults.MinSegmentSeconds
	}
	if result.MaxSegmentSeconds == 0 {
		result.MaxSegmentSeconds = defaults.MaxSegmentSeconds
	}
	if result.TransitionDuration == 0 {
		result.TransitionDuration = defaults.TransitionDuration
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

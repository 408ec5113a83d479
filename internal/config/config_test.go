package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"article_url": "https://example.com/post",
		"output_dir": "out",
		"target_shot_runes": 35,
		"max_shots": 15,
		"transition_duration": 0.3,
		"use_browser": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/post", cfg.ArticleURL)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 35, cfg.TargetShotRunes)
	assert.Equal(t, 15, cfg.MaxShots)
	assert.InDelta(t, 0.3, cfg.TransitionDuration, 1e-9)
	assert.True(t, cfg.UseBrowser)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveSources(t *testing.T) {
	article := writeConfigFile(t, "正文内容")
	cfg := Config{Article: article, ArticleURL: "https://example.com"}
	assert.ErrorContains(t, cfg.Validate(), "mutually exclusive")
}

func TestValidate_BudgetOrdering(t *testing.T) {
	cfg := Config{MinShotRunes: 50, MaxShotRunes: 45}
	assert.ErrorContains(t, cfg.Validate(), "min_shot_runes")

	cfg = Config{MinSegmentSeconds: 5.0, MaxSegmentSeconds: 4.0}
	assert.ErrorContains(t, cfg.Validate(), "min_segment_seconds")
}

func TestValidate_MissingArticleFile(t *testing.T) {
	cfg := Config{Article: filepath.Join(t.TempDir(), "missing.txt")}
	assert.ErrorContains(t, cfg.Validate(), "not found")
}

func TestValidate_ZeroConfigIsValid(t *testing.T) {
	var cfg Config
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{TargetShotRunes: 40, OutputDir: "custom"}
	defaults := Config{
		OutputDir:          "out",
		MinShotRunes:       25,
		TargetShotRunes:    35,
		MaxShotRunes:       45,
		MaxShots:           15,
		MinSegmentSeconds:  1.5,
		MaxSegmentSeconds:  4.0,
		TransitionDuration: 0.3,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "custom", merged.OutputDir, "explicit values win")
	assert.Equal(t, 40, merged.TargetShotRunes, "explicit values win")
	assert.Equal(t, 25, merged.MinShotRunes)
	assert.Equal(t, 45, merged.MaxShotRunes)
	assert.Equal(t, 15, merged.MaxShots)
	assert.InDelta(t, 1.5, merged.MinSegmentSeconds, 1e-9)
	assert.InDelta(t, 4.0, merged.MaxSegmentSeconds, 1e-9)
	assert.InDelta(t, 0.3, merged.TransitionDuration, 1e-9)
}

package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/ljc0311/storyvid/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSyncCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze-sync")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestAnalyzeSyncCommand_CountMismatch(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "output")

	recordsPath := filepath.Join(tmpDir, "records.json")
	recordsJSON := `{
  "narration": [
    {"index": 1, "duration_seconds": 4.0, "text": "第一段配音。"},
    {"index": 2, "duration_seconds": 5.0, "text": "第二段配音。"},
    {"index": 3, "duration_seconds": 4.5, "text": "第三段配音。"}
  ],
  "images": []
}`
	require.NoError(t, os.WriteFile(recordsPath, []byte(recordsJSON), 0644))

	cmd := exec.Command(binaryPath, "analyze-sync", "--records", recordsPath, "--out", outDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "analyze-sync failed: %s", string(output))

	analysisPath := filepath.Join(outDir, "sync_analysis.json")
	require.FileExists(t, analysisPath)

	data, err := os.ReadFile(analysisPath)
	require.NoError(t, err)

	var result types.SyncAnalysisResult
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, 3, result.NarrationCount)
	assert.Equal(t, 0, result.ImageCount)
	require.NotEmpty(t, result.Issues)
	assert.Equal(t, types.IssueCountMismatch, result.Issues[0].IssueType)
	assert.NotEmpty(t, result.Recommendations)
}

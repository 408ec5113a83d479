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

const testRecordsJSON = `{
  "narration": [
    {"index": 1, "duration_seconds": 4.0, "text": "第一段配音内容。"},
    {"index": 2, "duration_seconds": 6.0, "text": "第二段配音内容。"}
  ],
  "images": [
    {"narration_index": 1, "image_index": 1, "image_path": "img/001.png"},
    {"narration_index": 2, "image_index": 1, "image_path": "img/002.png"},
    {"narration_index": 2, "image_index": 2, "image_path": "img/003.png"}
  ]
}`

func writeTestRecords(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "records.json")
	require.NoError(t, os.WriteFile(path, []byte(testRecordsJSON), 0644))
	return path
}

func TestBuildTimelineCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "build-timeline")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestBuildTimelineCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "output")
	recordsPath := writeTestRecords(t, tmpDir)

	cmd := exec.Command(binaryPath, "build-timeline", "--records", recordsPath, "--out", outDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build-timeline failed: %s", string(output))

	timelinePath := filepath.Join(outDir, "timeline.json")
	require.FileExists(t, timelinePath)

	data, err := os.ReadFile(timelinePath)
	require.NoError(t, err)

	var result types.Timeline
	require.NoError(t, json.Unmarshal(data, &result))
	require.Len(t, result.Segments, 3)

	// Segments are contiguous: each starts where the previous ended
	for i := 1; i < len(result.Segments); i++ {
		assert.InDelta(t, result.Segments[i-1].EndTime, result.Segments[i].StartTime, 1e-9)
	}
	assert.Equal(t, 3, result.Metrics.SegmentCount)
}

func TestBuildTimelineCommand_InvalidBounds(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	recordsPath := writeTestRecords(t, tmpDir)

	cmd := exec.Command(binaryPath, "build-timeline",
		"--records", recordsPath,
		"--out", filepath.Join(tmpDir, "output"),
		"--min-seconds", "5.0",
		"--max-seconds", "2.0")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--min-seconds must not exceed --max-seconds")
}

func TestBuildTimelineCommand_MalformedRecords(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	recordsPath := filepath.Join(tmpDir, "records.json")
	require.NoError(t, os.WriteFile(recordsPath, []byte(`{"narration": "not an array"}`), 0644))

	cmd := exec.Command(binaryPath, "build-timeline", "--records", recordsPath, "--out", filepath.Join(tmpDir, "output"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to load records")
}

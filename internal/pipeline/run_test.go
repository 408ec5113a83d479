package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljc0311/storyvid/internal/allocation"
	"github.com/ljc0311/storyvid/internal/syncdetect"
	"github.com/ljc0311/storyvid/internal/timeline"
)

const testArticle = "老人慢慢地走过了巷口的石板路。孩子们在远处的空地上追逐打闹。傍晚的风带着炊烟的味道。"

func TestStoryboard_WithoutGenerator(t *testing.T) {
	result, err := Storyboard(context.Background(), testArticle, nil, allocation.DefaultBudget())
	require.NoError(t, err)

	require.NotEmpty(t, result.Records)
	assert.Len(t, result.Records, len(result.Assignment.Groups))
	assert.Empty(t, result.Script, "no generator means no raw script text")

	// Records derived verbatim from the groups always cover the article
	assert.True(t, result.Report.IsComplete)
	assert.InDelta(t, 1.0, result.Report.CoverageRatio, 1e-9)
	assert.Equal(t, 1, result.Records[0].Index)
	assert.NotEmpty(t, result.Records[0].OriginalText)
}

func TestWriteStoryboardArtifacts(t *testing.T) {
	dir := t.TempDir()
	result, err := Storyboard(context.Background(), testArticle, nil, allocation.DefaultBudget())
	require.NoError(t, err)

	require.NoError(t, WriteStoryboardArtifacts(dir, result))

	_, err = os.Stat(filepath.Join(dir, "shot_records.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "coverage_report.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "shot_script.md"))
	assert.True(t, os.IsNotExist(err), "no script file without a generator")
}

func writeRecordsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadRecords(t *testing.T) {
	path := writeRecordsFile(t, `{
		"narration": [
			{"index": 0, "duration_seconds": 3.0, "text": "老人走过巷口。"},
			{"index": 1, "duration_seconds": 4.0, "text": "孩子们在打闹。"}
		],
		"images": [
			{"narration_index": 0, "image_index": 0, "image_path": "img0.png"},
			{"narration_index": 1, "image_index": 0, "image_path": "img1.png"}
		]
	}`)

	records, err := LoadRecords(path)
	require.NoError(t, err)
	assert.Len(t, records.Narration, 2)
	assert.Len(t, records.Images, 2)
}

func TestLoadRecords_SchemaRejectsMalformed(t *testing.T) {
	// duration as a string violates the schema before struct validation runs
	path := writeRecordsFile(t, `{
		"narration": [{"index": 0, "duration_seconds": "three", "text": "x"}],
		"images": []
	}`)

	_, err := LoadRecords(path)
	assert.Error(t, err)
}

func TestRunPipeline_FileToArtifacts(t *testing.T) {
	dir := t.TempDir()
	articlePath := filepath.Join(dir, "article.txt")
	require.NoError(t, os.WriteFile(articlePath, []byte(testArticle), 0o644))

	recordsPath := writeRecordsFile(t, `{
		"narration": [
			{"index": 0, "duration_seconds": 3.0, "text": "老人走过巷口。", "audio_path": ""}
		],
		"images": [
			{"narration_index": 0, "image_index": 0, "image_path": ""}
		]
	}`)

	outDir := filepath.Join(dir, "out")
	var events []ProgressEvent
	opts := RunOptions{
		ArticlePath: articlePath,
		RecordsPath: recordsPath,
		OutputDir:   outDir,
		Budget:      allocation.DefaultBudget(),
		Timeline:    timeline.DefaultConfig(),
		Thresholds:  syncdetect.DefaultThresholds(),
		OnProgress:  func(e ProgressEvent) { events = append(events, e) },
	}

	require.NoError(t, RunPipeline(context.Background(), opts))

	for _, artifact := range []string{
		"article.cleaned.txt",
		"article.meta.json",
		"shot_records.json",
		"coverage_report.json",
		"timeline.json",
		"sync_analysis.json",
	} {
		_, err := os.Stat(filepath.Join(outDir, artifact))
		assert.NoError(t, err, "expected artifact %s", artifact)
	}

	// Progress events fire for every stage and share the run ID
	require.NotEmpty(t, events)
	steps := make(map[string]bool)
	for _, e := range events {
		steps[e.Step] = true
		assert.Equal(t, events[0].RunID, e.RunID)
	}
	assert.True(t, steps[StepArticle])
	assert.True(t, steps[StepShotScript])
	assert.True(t, steps[StepTimeline])
	assert.True(t, steps[StepSyncAnalysis])
}

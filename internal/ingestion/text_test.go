package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	input := "第一段。\r\n第二段。\r第三段。"
	result := CleanText(input)

	assert.Equal(t, "第一段。\n第二段。\n第三段。", result)
}

func TestCleanText_CollapsesBlankLines(t *testing.T) {
	input := "第一段。\n\n\n\n第二段。"
	result := CleanText(input)

	assert.Equal(t, "第一段。\n\n第二段。", result)
}

func TestCleanText_PreservesHeadingsAndBullets(t *testing.T) {
	input := "  ## 镜头 1\n  - 镜头原文：老人走过巷口。"
	result := CleanText(input)

	assert.Contains(t, result, "## 镜头 1")
	assert.Contains(t, result, "- 镜头原文：老人走过巷口。")
}

func TestCleanText_FullWidthSpaces(t *testing.T) {
	input := "　　老人走过巷口。"
	result := CleanText(input)

	assert.Equal(t, "老人走过巷口。", result)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}

func TestIngestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.txt")
	require.NoError(t, os.WriteFile(path, []byte("老人走过巷口。\r\n\r\n\r\n孩子们在打闹。"), 0o644))

	text, metadata, err := IngestFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "老人走过巷口。\n\n孩子们在打闹。", text)
	require.NotNil(t, metadata)
	assert.NotEmpty(t, metadata.Timestamp)
	assert.NotEmpty(t, metadata.Hash)
	assert.Empty(t, metadata.URL)
}

func TestIngestFromFile_Missing(t *testing.T) {
	_, _, err := IngestFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "file not found")
}

func TestWriteOutput(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	metadata := NewMetadata("正文", "https://example.com")

	require.NoError(t, WriteOutput(outDir, "正文", metadata))

	cleaned, err := os.ReadFile(filepath.Join(outDir, "article.cleaned.txt"))
	require.NoError(t, err)
	assert.Equal(t, "正文", string(cleaned))

	meta, err := os.ReadFile(filepath.Join(outDir, "article.meta.json"))
	require.NoError(t, err)
	assert.Contains(t, string(meta), "https://example.com")
}

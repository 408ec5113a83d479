package ingestion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEnd_URL_MockServer(t *testing.T) {
	htmlContent := `<!DOCTYPE html>
<html>
<body>
<nav>导航</nav>
<main>
<article class="article-content">
<h1>巷口的故事</h1>
<p>老人慢慢地走过了巷口的石板路。</p>
<p>孩子们在远处的空地上追逐打闹。</p>
<a href="https://example.com/related">相关阅读</a>
</article>
</main>
<footer>页脚</footer>
</body>
</html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(htmlContent))
	}))
	defer server.Close()

	cleanedText, metadata, err := IngestFromURL(context.Background(), server.URL, "", false, false)
	require.NoError(t, err)

	assert.Contains(t, cleanedText, "巷口的故事")
	assert.Contains(t, cleanedText, "石板路")
	assert.NotContains(t, cleanedText, "导航")
	assert.NotContains(t, cleanedText, "页脚")

	require.NotNil(t, metadata)
	assert.Equal(t, server.URL, metadata.URL)
	assert.Equal(t, "unknown", metadata.Platform)
	assert.Contains(t, metadata.ExtractedLinks, "https://example.com/related")
}

func TestMetadata_ValidJSON(t *testing.T) {
	metadata := NewMetadata("测试内容", "https://example.com/post")
	metadata.Title = "巷口的故事"

	metaJSON, err := metadata.ToJSON()
	require.NoError(t, err)

	var unmarshaled Metadata
	require.NoError(t, json.Unmarshal(metaJSON, &unmarshaled))
	assert.Equal(t, metadata.URL, unmarshaled.URL)
	assert.Equal(t, metadata.Title, unmarshaled.Title)
	assert.Equal(t, metadata.Hash, unmarshaled.Hash)
}

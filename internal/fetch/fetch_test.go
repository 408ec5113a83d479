package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body><article>正文内容</article></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "正文内容")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "not-a-url", fetchErr.URL)
}

func TestURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result, "result carries the status for the caller")
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestExtractMainText_PrefersContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>导航栏</nav>
		<article class="article-content">第一段。<p>第二段。</p></article>
		<footer>页脚</footer>
	</body></html>`

	text, err := ExtractMainText(html, ArticleSelectors())
	require.NoError(t, err)

	assert.Contains(t, text, "第一段。")
	assert.Contains(t, text, "第二段。")
	assert.NotContains(t, text, "导航栏")
	assert.NotContains(t, text, "页脚")
}

func TestExtractMainText_NoiseSelectorsRemoved(t *testing.T) {
	html := `<html><body><article>
		<p>正文。</p>
		<div class="comment-list">评论内容</div>
	</article></body></html>`

	text, err := ExtractMainText(html, ArticleSelectors(), ".comment-list")
	require.NoError(t, err)

	assert.Contains(t, text, "正文。")
	assert.NotContains(t, text, "评论内容")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><div>普通内容</div></body></html>`

	text, err := ExtractMainText(html, []string{".does-not-exist"})
	require.NoError(t, err)

	assert.Contains(t, text, "普通内容")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("too short"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("长", MinContentLength)))
}

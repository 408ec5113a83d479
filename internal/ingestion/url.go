package ingestion

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ljc0311/storyvid/internal/fetch"
)

var (
	// ErrInvalidURL is returned when URL is malformed
	ErrInvalidURL = fmt.Errorf("invalid URL")
	// ErrHTTPRequestFailed is returned when HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches an article, extracts its text, cleans it, and returns
// cleaned text with metadata.
// It uses platform detection to apply platform-specific selectors for better extraction.
// If apiKey is provided, it uses the LLM to extract article metadata.
// If useBrowser is true, falls back to headless browser for SPA sites with insufficient content.
// If verbose is true, logs detailed information about the extraction process.
func IngestFromURL(ctx context.Context, urlStr string, apiKey string, useBrowser bool, verbose bool) (string, *Metadata, error) {
	// Detect platform for platform-specific selectors
	platform := fetch.DetectPlatform(urlStr)
	if verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected platform: %s", platform)
	}

	// Fetch HTML using the generic fetch package
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	// Get platform-specific selectors
	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	// Extract text from HTML using platform-specific selectors and noise removal
	textContent, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(textContent))
	}

	// Check if we should use browser fallback for SPA sites
	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		if verbose {
			log.Printf("[VERBOSE] Content too short (%d chars < %d), falling back to browser rendering...",
				len(textContent), fetch.MinContentLength)
		}

		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, verbose)
		if browserErr != nil {
			if verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", browserErr)
			}
			// Continue with HTTP content if browser fails
		} else {
			// Re-extract from browser-rendered HTML
			textContent, err = fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...)
			if err != nil && verbose {
				log.Printf("[VERBOSE] Browser content extraction failed: %v", err)
			}
		}
	}

	// Clean text
	cleanedText := CleanText(textContent)
	if verbose {
		log.Printf("[VERBOSE] Cleaned text: %d chars", len(cleanedText))
	}

	// Generate metadata
	metadata := NewMetadata(cleanedText, urlStr)
	metadata.Platform = string(platform)
	metadata.ExtractedLinks = extractLinks(result.HTML)

	// If API key is provided, use LLM to extract article metadata
	if apiKey != "" {
		extracted, err := ExtractWithLLM(ctx, cleanedText, apiKey)
		if err == nil {
			metadata.Title = extracted.Title
			metadata.Synopsis = extracted.Synopsis
			metadata.Genre = extracted.Genre
			metadata.VisualStyleHints = extracted.VisualStyleHints
		} else if verbose {
			log.Printf("[VERBOSE] LLM extraction failed: %v, using cleaned text", err)
		}
	}

	return cleanedText, metadata, nil
}

// extractLinks collects absolute http(s) links from the article HTML.
func extractLinks(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			return
		}
		if !seen[href] {
			seen[href] = true
			links = append(links, href)
		}
	})
	return links
}

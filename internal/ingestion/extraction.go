package ingestion

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ljc0311/storyvid/internal/llm"
)

// ExtractedContent represents the structured output from the ingestion LLM
type ExtractedContent struct {
	Title            string   `json:"title,omitempty"`
	Synopsis         string   `json:"synopsis,omitempty"`
	Genre            string   `json:"genre,omitempty"`
	VisualStyleHints []string `json:"visual_style_hints,omitempty"`
}

// ExtractWithLLM uses the LLM to pull article metadata out of cleaned text.
// It uses the generic ArticleMetadataSchema for consistent extraction.
func ExtractWithLLM(ctx context.Context, text string, apiKey string) (*ExtractedContent, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key required for LLM extraction")
	}

	config := llm.DefaultConfig()
	client, err := llm.NewClient(ctx, config, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	schema := llm.ArticleMetadataSchema()
	prompt := llm.BuildExtractionPrompt(schema, text)

	// Use TierLite for simple extraction task
	jsonResp, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	jsonResp = llm.CleanJSONBlock(jsonResp)

	var extracted ExtractedContent
	if err := json.Unmarshal([]byte(jsonResp), &extracted); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w (content: %s)", err, jsonResp)
	}

	return &extracted, nil
}

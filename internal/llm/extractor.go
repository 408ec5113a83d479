// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ArticleMetadata")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// ArticleMetadataSchema returns the extraction schema for ingested articles.
// Extracts the title, a synopsis, and visual style hints used to seed the
// storyboard prompt.
func ArticleMetadataSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "ArticleMetadata",
		Description: `You are an expert editor preparing a text article for narrated video production.
Your task is to extract metadata from the raw article text.
IMPORTANT: Preserve the original language of the article; do not translate.
EXCLUDE: Navigation text, advertisements, comment sections, author bios.`,
		Fields: []SchemaField{
			{
				Name:        "title",
				Type:        "\"string\"",
				Description: "Article title, verbatim from the text",
				Required:    true,
			},
			{
				Name:        "synopsis",
				Type:        "\"string\"",
				Description: "One to two sentence synopsis of the article in its own language",
				Required:    true,
			},
			{
				Name:        "genre",
				Type:        "\"string\"",
				Description: "Genre or register (e.g., '散文', '新闻', '科普')",
				Required:    false,
			},
			{
				Name:        "visual_style_hints",
				Type:        "[\"string\"]",
				Description: "Visual motifs and atmosphere suggested by the text, for image generation",
				Required:    false,
			},
		},
	}
}

// SceneDescriptionSchema returns the extraction schema for per-shot image
// descriptions derived from a narration segment.
func SceneDescriptionSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "SceneDescription",
		Description: `You are an expert storyboard artist. Your task is to turn one narration segment
into a concrete visual scene description suitable for an image generation model.
Describe only what can be seen; never include narration text or camera jargon.`,
		Fields: []SchemaField{
			{
				Name:        "description",
				Type:        "\"string\"",
				Description: "Single-paragraph visual description of the scene",
				Required:    true,
			},
			{
				Name:        "subjects",
				Type:        "[\"string\"]",
				Description: "Main visible subjects in the scene",
				Required:    true,
			},
			{
				Name:        "mood",
				Type:        "\"string\"",
				Description: "Lighting and emotional tone of the scene",
				Required:    false,
			},
		},
	}
}

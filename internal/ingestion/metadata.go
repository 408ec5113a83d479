package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata contains metadata about an ingested article
type Metadata struct {
	URL              string   `json:"url,omitempty"`
	Timestamp        string   `json:"timestamp"` // RFC3339 format
	Hash             string   `json:"hash"`      // SHA256 hex digest
	Platform         string   `json:"platform,omitempty"`
	Title            string   `json:"title,omitempty"`
	Synopsis         string   `json:"synopsis,omitempty"`
	Genre            string   `json:"genre,omitempty"`
	VisualStyleHints []string `json:"visual_style_hints,omitempty"`
	ExtractedLinks   []string `json:"extracted_links,omitempty"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, url string) *Metadata {
	return &Metadata{
		URL:       url,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}

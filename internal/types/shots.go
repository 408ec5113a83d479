// Package types provides type definitions for structured data used throughout the storyvid system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "unicode/utf8"

// ShotGroup represents an ordered run of sentences assigned to a single shot.
type ShotGroup struct {
	Sentences []string `json:"sentences"`
}

// Text returns the concatenated narration text of the group.
func (g ShotGroup) Text() string {
	text := ""
	for _, s := range g.Sentences {
		text += s
	}
	return text
}

// RuneLen returns the character length of the group's concatenated text.
// All allocation budgets count runes, not bytes, since narration is CJK-heavy.
func (g ShotGroup) RuneLen() int {
	n := 0
	for _, s := range g.Sentences {
		n += utf8.RuneCountInString(s)
	}
	return n
}

// ShotAssignment represents an ordered, non-overlapping partition of the
// sentence sequence into shot groups.
type ShotAssignment struct {
	Groups []ShotGroup `json:"groups"`
}

// SentenceCount returns the total number of sentences across all groups.
func (a ShotAssignment) SentenceCount() int {
	n := 0
	for _, g := range a.Groups {
		n += len(g.Sentences)
	}
	return n
}

// ShotRecord represents one shot parsed out of a generated shot script.
type ShotRecord struct {
	Index        int    `json:"index"`
	Title        string `json:"title,omitempty"`
	OriginalText string `json:"original_text"`
	Description  string `json:"description,omitempty"`
}

// CoverageReport represents the result of validating a generated shot script
// against the original sentence sequence. It is derived per validation call
// and never persisted on its own.
type CoverageReport struct {
	CoverageRatio      float64  `json:"coverage_ratio"`
	MissingSentences   []string `json:"missing_sentences"`
	DuplicateShotCount int      `json:"duplicate_shot_count"`
	EmptyShotCount     int      `json:"empty_shot_count"`
	IsComplete         bool     `json:"is_complete"`
}

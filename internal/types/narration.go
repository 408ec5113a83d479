// Package types provides type definitions for structured data used throughout the storyvid system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NarrationSegment represents one unit of spoken audio produced by the
// voice-generation collaborator. It is an immutable input to timeline
// construction and sync analysis.
type NarrationSegment struct {
	Index           int     `json:"index" validate:"gte=0"`
	DurationSeconds float64 `json:"duration_seconds" validate:"gte=0"`
	Text            string  `json:"text"`
	AudioPath       string  `json:"audio_path,omitempty"`
	SceneID         string  `json:"scene_id,omitempty"`
	ShotID          string  `json:"shot_id,omitempty"`
}

// ImageRequirement represents one generated image bound to a narration
// segment. Requirements are grouped by NarrationIndex and ordered by
// ImageIndex within a group.
type ImageRequirement struct {
	NarrationIndex int    `json:"narration_index" validate:"gte=0"`
	ImageIndex     int    `json:"image_index" validate:"gte=0"`
	ImagePath      string `json:"image_path"`
	Description    string `json:"description,omitempty"` // enhanced scene description, used for content matching
}

// ProjectRecords bundles the narration and image record arrays loaded from
// a project artifact file.
type ProjectRecords struct {
	Narration []NarrationSegment `json:"narration"`
	Images    []ImageRequirement `json:"images"`
}

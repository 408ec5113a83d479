// Package types provides type definitions for structured data used throughout the storyvid system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TransitionType represents how a timeline segment enters the frame
type TransitionType string

// Transition constants for timeline segments
const (
	// TransitionCut switches to the segment's image instantly
	TransitionCut TransitionType = "cut"
	// TransitionFade cross-fades from the previous image
	TransitionFade TransitionType = "fade"
	// TransitionDissolve dissolves between images (reserved for manual edits)
	TransitionDissolve TransitionType = "dissolve"
)

// TimelineSegment represents one still-image interval on the project timeline.
// Start and end times may shrink or shift during optimization; the transition
// is set at build time and never changed afterwards.
type TimelineSegment struct {
	StartTime     float64        `json:"start_time"`
	EndTime       float64        `json:"end_time"`
	NarrationText string         `json:"narration_text"`
	ImagePath     string         `json:"image_path"`
	SceneID       string         `json:"scene_id,omitempty"`
	ShotID        string         `json:"shot_id,omitempty"`
	Transition    TransitionType `json:"transition"`
}

// Duration returns the segment's display time in seconds.
func (s TimelineSegment) Duration() float64 {
	return s.EndTime - s.StartTime
}

// TimelineMetrics summarizes a built timeline for the persistence collaborator.
type TimelineMetrics struct {
	AverageDuration float64 `json:"average_duration"`
	DurationStdDev  float64 `json:"duration_std_dev"`
	CoverageRatio   float64 `json:"coverage_ratio"`
	SegmentCount    int     `json:"segment_count"`
	TotalDuration   float64 `json:"total_duration"`
}

// Timeline represents the full ordered, time-increasing segment sequence
// plus its summary metrics.
type Timeline struct {
	Segments []TimelineSegment `json:"segments"`
	Metrics  TimelineMetrics   `json:"metrics"`
}

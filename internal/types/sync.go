// Package types provides type definitions for structured data used throughout the storyvid system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// IssueType classifies a detected narration/image sync problem
type IssueType string

// Issue type constants
const (
	// IssueDurationMismatch flags narration segments outside duration bounds
	IssueDurationMismatch IssueType = "duration_mismatch"
	// IssueContentMismatch flags narration/image pairs with low text similarity
	IssueContentMismatch IssueType = "content_mismatch"
	// IssueCountMismatch flags unequal narration and image counts
	IssueCountMismatch IssueType = "count_mismatch"
	// IssueQuality flags missing audio or image assets on disk
	IssueQuality IssueType = "quality_issue"
)

// Severity grades how badly an issue hurts the final video
type Severity string

// Severity constants, ordered from least to most serious
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// FixAction identifies a deterministic remediation for an auto-fixable issue
type FixAction string

// Fix action constants dispatched by the caller's auto-fix handler
const (
	FixRegenerateImagesByVoiceTime FixAction = "regenerate_images_by_voice_time"
	FixRegenerateMatchedImages     FixAction = "regenerate_matched_images"
	FixMergeShortSegments          FixAction = "merge_short_segments"
	FixSplitLongSegments           FixAction = "split_long_segments"
	FixAdjustSegmentDurations      FixAction = "adjust_segment_durations"
	FixManualRequired              FixAction = "manual_fix_required"
)

// SyncIssue represents a single detected sync problem. Issues are stateless
// and regenerated on every analysis run.
type SyncIssue struct {
	IssueType        IssueType `json:"issue_type"`
	Severity         Severity  `json:"severity"`
	Description      string    `json:"description"`
	AffectedSegments []int     `json:"affected_segments"`
	SuggestedFix     string    `json:"suggested_fix,omitempty"`
	AutoFixable      bool      `json:"auto_fixable"`
}

// AutoFixSuggestion represents a dispatchable remediation for one auto-fixable issue.
type AutoFixSuggestion struct {
	IssueType        IssueType `json:"issue_type"`
	Description      string    `json:"description"`
	FixAction        FixAction `json:"fix_action"`
	AffectedSegments []int     `json:"affected_segments"`
	EstimatedTime    string    `json:"estimated_time"`
}

// SyncAnalysisResult aggregates the output of one quality analysis run.
// It has no lifecycle beyond the call that produced it.
type SyncAnalysisResult struct {
	RunID                  string              `json:"run_id,omitempty"`
	OverallQuality         float64             `json:"overall_quality"`
	SyncScore              float64             `json:"sync_score"`
	Issues                 []SyncIssue         `json:"issues"`
	Recommendations        []string            `json:"recommendations"`
	AutoFixSuggestions     []AutoFixSuggestion `json:"auto_fix_suggestions,omitempty"`
	NarrationCount         int                 `json:"narration_count"`
	ImageCount             int                 `json:"image_count"`
	TotalNarrationDuration float64             `json:"total_narration_duration"`
	EstimatedVideoDuration float64             `json:"estimated_video_duration"`
}

// HasIssueType reports whether any issue of the given type was detected.
func (r *SyncAnalysisResult) HasIssueType(t IssueType) bool {
	for _, issue := range r.Issues {
		if issue.IssueType == t {
			return true
		}
	}
	return false
}

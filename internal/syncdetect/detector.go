// Package syncdetect scores narration/image synchronization quality and
// produces actionable issue reports with auto-fix suggestions.
package syncdetect

import (
	"os"

	"github.com/google/uuid"

	"github.com/ljc0311/storyvid/internal/estimate"
	"github.com/ljc0311/storyvid/internal/types"
)

// Thresholds holds the detection limits for the quality sub-checks.
type Thresholds struct {
	MinSegmentDuration   float64 // narration shorter than this is flagged
	MaxSegmentDuration   float64 // narration longer than this is flagged
	DurationVarianceRatio float64 // variance above this fraction of the mean is flagged
	ContentSimilarity    float64 // Jaccard similarity below this is a content mismatch
	LongVideoSeconds     float64 // total duration above this suggests segmenting
	ImageDensityRatio    float64 // image count below this fraction of narration count suggests more images
}

// DefaultThresholds returns the standard detection limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinSegmentDuration:    1.0,
		MaxSegmentDuration:    15.0,
		DurationVarianceRatio: 0.3,
		ContentSimilarity:     0.7,
		LongVideoSeconds:      60.0,
		ImageDensityRatio:     0.8,
	}
}

// severity penalties applied to the overall quality score
var severityPenalty = map[types.Severity]float64{
	types.SeverityCritical: 0.3,
	types.SeverityHigh:     0.2,
	types.SeverityMedium:   0.1,
	types.SeverityLow:      0.05,
}

// sync score penalties per issue, split by fixability
const (
	autoFixablePenalty = 0.1
	manualFixPenalty   = 0.3
)

// Detector analyzes raw narration/image record arrays. It retains no state
// between calls and is safe for concurrent use on independent record sets.
type Detector struct {
	thresholds Thresholds
	fileExists func(path string) bool
}

// NewDetector creates a detector with the given thresholds.
func NewDetector(thresholds Thresholds) *Detector {
	return &Detector{
		thresholds: thresholds,
		fileExists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

// Analyze runs all sub-checks unconditionally over the raw record arrays
// and aggregates a fresh result. Each sub-check is isolated: an internal
// failure in one contributes no issues without suppressing the others. A
// failure in aggregation itself yields a neutral default result instead of
// an error.
func (d *Detector) Analyze(narration []types.NarrationSegment, images []types.ImageRequirement) (result *types.SyncAnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			result = neutralResult()
		}
	}()

	durations := d.segmentDurations(narration)

	var issues []types.SyncIssue
	issues = append(issues, d.runIsolated(func() []types.SyncIssue { return d.checkDurations(durations) })...)
	issues = append(issues, d.runIsolated(func() []types.SyncIssue { return d.checkContent(narration, images) })...)
	issues = append(issues, d.runIsolated(func() []types.SyncIssue { return d.checkCounts(narration, images) })...)
	issues = append(issues, d.runIsolated(func() []types.SyncIssue { return d.checkAssets(narration, images) })...)

	totalDuration := 0.0
	for _, duration := range durations {
		totalDuration += duration
	}

	result = &types.SyncAnalysisResult{
		RunID:                  uuid.NewString(),
		OverallQuality:         overallQuality(issues, len(narration), len(images)),
		SyncScore:              syncScore(issues),
		Issues:                 issues,
		NarrationCount:         len(narration),
		ImageCount:             len(images),
		TotalNarrationDuration: totalDuration,
		EstimatedVideoDuration: totalDuration,
	}
	result.Recommendations = recommendations(result, d.thresholds)
	result.AutoFixSuggestions = autoFixSuggestions(issues)
	return result
}

// runIsolated executes one sub-check, swallowing any panic so a broken
// check never aborts the whole analysis.
func (d *Detector) runIsolated(check func() []types.SyncIssue) (issues []types.SyncIssue) {
	defer func() {
		if r := recover(); r != nil {
			issues = nil
		}
	}()
	return check()
}

// segmentDurations returns the measured duration per narration record,
// falling back to a text-based estimate when none was measured.
func (d *Detector) segmentDurations(narration []types.NarrationSegment) []float64 {
	durations := make([]float64, len(narration))
	for i, seg := range narration {
		if seg.DurationSeconds > 0 {
			durations[i] = seg.DurationSeconds
		} else {
			durations[i] = estimate.Duration(seg.Text)
		}
	}
	return durations
}

// overallQuality starts from a perfect score and subtracts a penalty per
// issue by severity, clamped to [0, 1]. Two empty record arrays mean there
// is nothing to synchronize and score zero.
func overallQuality(issues []types.SyncIssue, narrationCount, imageCount int) float64 {
	if narrationCount == 0 && imageCount == 0 {
		return 0.0
	}

	score := 1.0
	for _, issue := range issues {
		score -= severityPenalty[issue.Severity]
	}
	return clamp01(score)
}

// syncScore is 1.0 for a clean analysis; otherwise auto-fixable issues
// cost less than ones needing manual remediation.
func syncScore(issues []types.SyncIssue) float64 {
	if len(issues) == 0 {
		return 1.0
	}

	score := 1.0
	for _, issue := range issues {
		if issue.AutoFixable {
			score -= autoFixablePenalty
		} else {
			score -= manualFixPenalty
		}
	}
	return clamp01(score)
}

func neutralResult() *types.SyncAnalysisResult {
	return &types.SyncAnalysisResult{
		OverallQuality:  0.5,
		SyncScore:       0.5,
		Issues:          []types.SyncIssue{},
		Recommendations: []string{"分析失败，请检查项目数据"},
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package timeline

import (
	"math"

	"github.com/ljc0311/storyvid/internal/types"
)

// ComputeMetrics summarizes a segment sequence for the persistence
// collaborator: average duration, duration standard deviation, the fraction
// of total time covered by a visual segment, and totals.
func ComputeMetrics(segments []types.TimelineSegment) types.TimelineMetrics {
	if len(segments) == 0 {
		return types.TimelineMetrics{}
	}

	var covered, total float64
	for _, seg := range segments {
		covered += seg.Duration()
		if seg.EndTime > total {
			total = seg.EndTime
		}
	}

	average := covered / float64(len(segments))

	var variance float64
	for _, seg := range segments {
		diff := seg.Duration() - average
		variance += diff * diff
	}
	variance /= float64(len(segments))

	coverageRatio := 0.0
	if total > 0 {
		coverageRatio = covered / total
	}

	return types.TimelineMetrics{
		AverageDuration: average,
		DurationStdDev:  math.Sqrt(variance),
		CoverageRatio:   coverageRatio,
		SegmentCount:    len(segments),
		TotalDuration:   total,
	}
}

package timeline

import (
	"sort"

	"github.com/ljc0311/storyvid/internal/types"
)

// Optimize post-processes a built timeline with three passes in fixed order:
// overlap resolution, fade-transition smoothing, and a duration re-clamp.
// Each pass runs exactly once rather than to a fixed point, so a later pass
// can reintroduce small inconsistencies an earlier pass would have fixed;
// this bounded residual drift is accepted deliberately.
func Optimize(segments []types.TimelineSegment, cfg Config) []types.TimelineSegment {
	if len(segments) == 0 {
		return segments
	}

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].StartTime < segments[j].StartTime
	})

	resolveOverlaps(segments, cfg)
	smoothTransitions(segments, cfg)
	clampDurations(segments, cfg)

	return segments
}

// resolveOverlaps pulls each overlapping segment's end back behind its
// successor's start, leaving room for the transition.
func resolveOverlaps(segments []types.TimelineSegment, cfg Config) {
	for i := 0; i < len(segments)-1; i++ {
		if segments[i].EndTime > segments[i+1].StartTime {
			segments[i].EndTime = segments[i+1].StartTime - cfg.TransitionDuration
		}
	}
}

// smoothTransitions widens under-sized gaps before fade transitions by
// shrinking the current segment and shifting the next one symmetrically.
func smoothTransitions(segments []types.TimelineSegment, cfg Config) {
	for i := 0; i < len(segments)-1; i++ {
		if segments[i+1].Transition != types.TransitionFade {
			continue
		}
		gap := segments[i+1].StartTime - segments[i].EndTime
		if gap < cfg.TransitionDuration {
			adjustment := (cfg.TransitionDuration - gap) / 2
			segments[i].EndTime -= adjustment
			segments[i+1].StartTime += adjustment
		}
	}
}

// clampDurations re-applies the min/max duration bounds, since the first
// two passes may have pushed a segment's length outside them again.
func clampDurations(segments []types.TimelineSegment, cfg Config) {
	for i := range segments {
		duration := segments[i].Duration()
		if duration < cfg.MinImageDuration {
			segments[i].EndTime = segments[i].StartTime + cfg.MinImageDuration
		} else if duration > cfg.MaxImageDuration {
			segments[i].EndTime = segments[i].StartTime + cfg.MaxImageDuration
		}
	}
}

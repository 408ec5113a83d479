// Package timeline builds and optimizes the narration/image project timeline.
package timeline

import (
	"sort"

	"github.com/ljc0311/storyvid/internal/types"
)

// Config holds the duration constraints for timeline construction.
type Config struct {
	MinImageDuration   float64
	MaxImageDuration   float64
	TransitionDuration float64
}

// DefaultConfig returns the standard duration constraints.
func DefaultConfig() Config {
	return Config{
		MinImageDuration:   1.5,
		MaxImageDuration:   4.0,
		TransitionDuration: 0.3,
	}
}

// GroupImages organizes image requirements by narration index, ordered by
// image index within each group.
func GroupImages(images []types.ImageRequirement) map[int][]types.ImageRequirement {
	groups := make(map[int][]types.ImageRequirement)
	for _, image := range images {
		groups[image.NarrationIndex] = append(groups[image.NarrationIndex], image)
	}
	for idx := range groups {
		group := groups[idx]
		sort.Slice(group, func(i, j int) bool { return group[i].ImageIndex < group[j].ImageIndex })
	}
	return groups
}

// BuildSegment produces the timeline segments for one narration segment and
// its ordered image group, starting at cursor. It returns the segments and
// the advanced cursor: the narration's full duration is consumed even when
// the image group is empty, leaving that span without a visual segment.
func BuildSegment(narration types.NarrationSegment, images []types.ImageRequirement, cursor float64, cfg Config) ([]types.TimelineSegment, float64) {
	next := cursor + narration.DurationSeconds

	if len(images) == 0 {
		return nil, next
	}

	if len(images) == 1 {
		return []types.TimelineSegment{{
			StartTime:     cursor,
			EndTime:       cursor + narration.DurationSeconds,
			NarrationText: narration.Text,
			ImagePath:     images[0].ImagePath,
			SceneID:       narration.SceneID,
			ShotID:        narration.ShotID,
			Transition:    types.TransitionCut,
		}}, next
	}

	slice := narration.DurationSeconds / float64(len(images))
	segments := make([]types.TimelineSegment, 0, len(images))

	for i, image := range images {
		start := cursor + float64(i)*slice
		end := cursor + float64(i+1)*slice

		// Local clamp only: reclaimed or overrun time is not redistributed
		// to neighboring slices. The optimizer partially repairs the
		// resulting gaps and overlaps afterwards.
		if end-start < cfg.MinImageDuration {
			end = start + cfg.MinImageDuration
		} else if end-start > cfg.MaxImageDuration {
			end = start + cfg.MaxImageDuration
		}

		transition := types.TransitionFade
		if i == 0 {
			transition = types.TransitionCut
		}

		segments = append(segments, types.TimelineSegment{
			StartTime:     start,
			EndTime:       end,
			NarrationText: narration.Text,
			ImagePath:     image.ImagePath,
			SceneID:       narration.SceneID,
			ShotID:        narration.ShotID,
			Transition:    transition,
		})
	}

	return segments, next
}

// Build folds BuildSegment over the full narration sequence, threading the
// cursor through each call, and returns the optimized timeline with metrics.
// A single build must not be parallelized across narration segments; the
// cursor ordering depends on sequential construction.
func Build(narration []types.NarrationSegment, images []types.ImageRequirement, cfg Config) types.Timeline {
	groups := GroupImages(images)

	var segments []types.TimelineSegment
	cursor := 0.0

	for _, seg := range narration {
		var built []types.TimelineSegment
		built, cursor = BuildSegment(seg, groups[seg.Index], cursor, cfg)
		segments = append(segments, built...)
	}

	segments = Optimize(segments, cfg)

	return types.Timeline{
		Segments: segments,
		Metrics:  ComputeMetrics(segments),
	}
}

// Package allocation packs narration sentences into shot groups under a
// character-length budget.
package allocation

import (
	"unicode/utf8"

	"github.com/ljc0311/storyvid/internal/types"
)

// Budget holds the character-length constraints for shot packing.
type Budget struct {
	// MinGroupRunes is the preferred lower bound for a closed group
	MinGroupRunes int
	// IdealGroupRunes is the soft target length used both for packing and
	// for deriving the target shot count from total text length
	IdealGroupRunes int
	// MaxGroupRunes is the hard upper bound; only a single over-long
	// sentence may exceed it, and then it occupies its own group unsplit
	MaxGroupRunes int
	// MaxShots caps the number of groups regardless of text length
	MaxShots int
}

// DefaultBudget returns the packing constraints used by the storyboard stage.
func DefaultBudget() Budget {
	return Budget{
		MinGroupRunes:   25,
		IdealGroupRunes: 35,
		MaxGroupRunes:   45,
		MaxShots:        15,
	}
}

// TargetShotCount derives the target group count from the sentence sequence:
// total character length divided by the ideal group length, clamped to
// [1, min(sentenceCount, MaxShots)].
func TargetShotCount(sentences []string, budget Budget) int {
	total := 0
	for _, s := range sentences {
		total += utf8.RuneCountInString(s)
	}

	target := total / budget.IdealGroupRunes
	if target < 1 {
		target = 1
	}
	if target > len(sentences) {
		target = len(sentences)
	}
	if target > budget.MaxShots {
		target = budget.MaxShots
	}
	return target
}

// Allocate bin-packs the sentence sequence into shot groups, then merges
// adjacent groups down toward targetShots. The output is an order-preserving
// partition: no sentence is dropped, duplicated, or reordered, and the group
// count never exceeds the sentence count.
func Allocate(sentences []string, targetShots int, budget Budget) types.ShotAssignment {
	if len(sentences) == 0 {
		return types.ShotAssignment{}
	}
	if targetShots < 1 {
		targetShots = 1
	}

	groups := packGreedy(sentences, budget)
	groups = mergeDown(groups, targetShots, budget)

	return types.ShotAssignment{Groups: groups}
}

// packGreedy runs a single forward pass, keeping a running group and closing
// it when appending the next sentence would overfill it.
func packGreedy(sentences []string, budget Budget) []types.ShotGroup {
	var groups []types.ShotGroup
	var current types.ShotGroup
	currentLen := 0

	for _, sentence := range sentences {
		sentenceLen := utf8.RuneCountInString(sentence)

		switch {
		case len(current.Sentences) == 0:
			current.Sentences = append(current.Sentences, sentence)
			currentLen = sentenceLen
		case currentLen+sentenceLen <= budget.MaxGroupRunes && currentLen < budget.IdealGroupRunes:
			current.Sentences = append(current.Sentences, sentence)
			currentLen += sentenceLen
		default:
			// Close the running group. When it is still under the minimum
			// we accept an under-filled group rather than exceed the cap.
			groups = append(groups, current)
			current = types.ShotGroup{Sentences: []string{sentence}}
			currentLen = sentenceLen
		}
	}

	if len(current.Sentences) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// mergeDown repeatedly merges the adjacent pair with the smallest combined
// length while that combined length fits the cap, until the target count is
// reached or no mergeable pair remains.
func mergeDown(groups []types.ShotGroup, targetShots int, budget Budget) []types.ShotGroup {
	for len(groups) > targetShots {
		bestIdx := -1
		bestLen := budget.MaxGroupRunes + 1

		for i := 0; i < len(groups)-1; i++ {
			combined := groups[i].RuneLen() + groups[i+1].RuneLen()
			if combined <= budget.MaxGroupRunes && combined < bestLen {
				bestIdx = i
				bestLen = combined
			}
		}

		if bestIdx < 0 {
			break
		}

		merged := types.ShotGroup{
			Sentences: append(append([]string{}, groups[bestIdx].Sentences...), groups[bestIdx+1].Sentences...),
		}
		groups = append(groups[:bestIdx], append([]types.ShotGroup{merged}, groups[bestIdx+2:]...)...)
	}

	return groups
}

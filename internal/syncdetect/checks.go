package syncdetect

import (
	"fmt"
	"strings"

	"github.com/ljc0311/storyvid/internal/types"
)

// checkDurations flags narration segments outside the duration bounds and
// high duration variance across the set.
func (d *Detector) checkDurations(durations []float64) []types.SyncIssue {
	var issues []types.SyncIssue
	if len(durations) == 0 {
		return issues
	}

	var short, long []int
	for i, duration := range durations {
		if duration < d.thresholds.MinSegmentDuration {
			short = append(short, i)
		} else if duration > d.thresholds.MaxSegmentDuration {
			long = append(long, i)
		}
	}

	if len(short) > 0 {
		issues = append(issues, types.SyncIssue{
			IssueType:        types.IssueDurationMismatch,
			Severity:         types.SeverityMedium,
			Description:      fmt.Sprintf("发现 %d 个过短的配音段落（<%.1f秒）", len(short), d.thresholds.MinSegmentDuration),
			AffectedSegments: short,
			SuggestedFix:     "建议合并相邻的短段落或增加配音内容",
			AutoFixable:      true,
		})
	}

	if len(long) > 0 {
		issues = append(issues, types.SyncIssue{
			IssueType:        types.IssueDurationMismatch,
			Severity:         types.SeverityMedium,
			Description:      fmt.Sprintf("发现 %d 个过长的配音段落（>%.1f秒）", len(long), d.thresholds.MaxSegmentDuration),
			AffectedSegments: long,
			SuggestedFix:     "建议分割长段落或增加更多图像变化",
			AutoFixable:      true,
		})
	}

	if len(durations) > 1 {
		mean := 0.0
		for _, duration := range durations {
			mean += duration
		}
		mean /= float64(len(durations))

		variance := 0.0
		for _, duration := range durations {
			diff := duration - mean
			variance += diff * diff
		}
		variance /= float64(len(durations))

		if variance > d.thresholds.DurationVarianceRatio*mean {
			all := make([]int, len(durations))
			for i := range all {
				all[i] = i
			}
			issues = append(issues, types.SyncIssue{
				IssueType:        types.IssueDurationMismatch,
				Severity:         types.SeverityLow,
				Description:      fmt.Sprintf("配音段落时长差异较大（方差: %.2f）", variance),
				AffectedSegments: all,
				SuggestedFix:     "建议调整配音段落长度，使其更加均匀",
				AutoFixable:      false,
			})
		}
	}

	return issues
}

// checkContent pairs records by array position and flags pairs whose
// word-set similarity falls below the threshold. Pairs with an empty
// narration text or image description are skipped.
func (d *Detector) checkContent(narration []types.NarrationSegment, images []types.ImageRequirement) []types.SyncIssue {
	var mismatched []int

	count := min(len(narration), len(images))
	for i := 0; i < count; i++ {
		text := narration[i].Text
		description := images[i].Description
		if text == "" || description == "" {
			continue
		}
		if jaccardSimilarity(text, description) < d.thresholds.ContentSimilarity {
			mismatched = append(mismatched, i)
		}
	}

	if len(mismatched) == 0 {
		return nil
	}
	return []types.SyncIssue{{
		IssueType:        types.IssueContentMismatch,
		Severity:         types.SeverityHigh,
		Description:      fmt.Sprintf("发现 %d 个配音与图像内容不匹配的段落", len(mismatched)),
		AffectedSegments: mismatched,
		SuggestedFix:     "建议使用按配音时间生成图像功能重新生成匹配的图像",
		AutoFixable:      true,
	}}
}

// checkCounts flags unequal narration and image counts; a difference of
// more than two segments is high severity.
func (d *Detector) checkCounts(narration []types.NarrationSegment, images []types.ImageRequirement) []types.SyncIssue {
	narrationCount := len(narration)
	imageCount := len(images)
	if narrationCount == imageCount {
		return nil
	}

	diff := narrationCount - imageCount
	if diff < 0 {
		diff = -diff
	}
	severity := types.SeverityMedium
	if diff > 2 {
		severity = types.SeverityHigh
	}

	affected := make([]int, max(narrationCount, imageCount))
	for i := range affected {
		affected[i] = i
	}

	return []types.SyncIssue{{
		IssueType:        types.IssueCountMismatch,
		Severity:         severity,
		Description:      fmt.Sprintf("配音段落数量（%d）与图像数量（%d）不匹配", narrationCount, imageCount),
		AffectedSegments: affected,
		SuggestedFix:     "建议使用按配音时间生成图像功能自动匹配数量",
		AutoFixable:      true,
	}}
}

// checkAssets flags records that name an audio or image file no longer
// present on disk. Records without a path are not flagged: the asset has
// simply not been generated yet.
func (d *Detector) checkAssets(narration []types.NarrationSegment, images []types.ImageRequirement) []types.SyncIssue {
	var issues []types.SyncIssue

	var missingAudio []int
	for i, seg := range narration {
		if seg.AudioPath != "" && !d.fileExists(seg.AudioPath) {
			missingAudio = append(missingAudio, i)
		}
	}
	if len(missingAudio) > 0 {
		issues = append(issues, types.SyncIssue{
			IssueType:        types.IssueQuality,
			Severity:         types.SeverityCritical,
			Description:      fmt.Sprintf("发现 %d 个缺失的音频文件", len(missingAudio)),
			AffectedSegments: missingAudio,
			SuggestedFix:     "请重新生成缺失的配音文件",
			AutoFixable:      false,
		})
	}

	var missingImages []int
	for i, image := range images {
		if image.ImagePath != "" && !d.fileExists(image.ImagePath) {
			missingImages = append(missingImages, i)
		}
	}
	if len(missingImages) > 0 {
		issues = append(issues, types.SyncIssue{
			IssueType:        types.IssueQuality,
			Severity:         types.SeverityCritical,
			Description:      fmt.Sprintf("发现 %d 个缺失的图像文件", len(missingImages)),
			AffectedSegments: missingImages,
			SuggestedFix:     "请重新生成缺失的图像文件",
			AutoFixable:      false,
		})
	}

	return issues
}

// jaccardSimilarity computes word-set intersection over union on the
// lowercased, whitespace-split token sets of the two texts.
func jaccardSimilarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	intersection := 0
	for token := range setA {
		if setB[token] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		set[token] = true
	}
	return set
}

package syncdetect

import (
	"strings"

	"github.com/ljc0311/storyvid/internal/types"
)

// recommendation text for the "sync is good" case
const recommendationSyncGood = "配音与图像同步良好，可以开始视频合成"

// recommendations produces advice keyed on the set of issue types present,
// plus heuristics on total duration and image density, and generic guidance
// based on which record arrays are populated.
func recommendations(result *types.SyncAnalysisResult, thresholds Thresholds) []string {
	var out []string

	if result.HasIssueType(types.IssueCountMismatch) {
		out = append(out, "使用按配音时间生成图像功能自动匹配配音与图像数量")
	}
	if result.HasIssueType(types.IssueContentMismatch) {
		out = append(out, "使用配音优先工作流程重新生成匹配的图像内容")
	}
	if result.HasIssueType(types.IssueDurationMismatch) {
		out = append(out, "调整配音段落时长，建议每段3-8秒为最佳")
	}
	if result.HasIssueType(types.IssueQuality) {
		out = append(out, "修复缺失的音频或图像文件")
	}

	switch {
	case result.NarrationCount > 0 && result.ImageCount == 0:
		out = append(out, "建议先生成图像，然后使用智能同步功能")
	case result.NarrationCount == 0 && result.ImageCount > 0:
		out = append(out, "建议先生成配音，然后使用智能同步功能")
	case result.NarrationCount > 0 && result.ImageCount > 0:
		if result.TotalNarrationDuration > thresholds.LongVideoSeconds {
			out = append(out, "视频较长，建议分段处理以提高质量")
		}
		if float64(result.ImageCount) < thresholds.ImageDensityRatio*float64(result.NarrationCount) {
			out = append(out, "图像数量偏少，建议增加图像以丰富视觉效果")
		}
	}

	if len(result.Issues) == 0 {
		out = append(out, recommendationSyncGood)
		out = append(out, "建议预览效果，确认满意后再进行最终渲染")
	}

	return out
}

// autoFixSuggestions maps each auto-fixable issue to its dispatchable
// remediation action and a rough time estimate.
func autoFixSuggestions(issues []types.SyncIssue) []types.AutoFixSuggestion {
	var suggestions []types.AutoFixSuggestion
	for _, issue := range issues {
		if !issue.AutoFixable {
			continue
		}
		suggestions = append(suggestions, types.AutoFixSuggestion{
			IssueType:        issue.IssueType,
			Description:      issue.Description,
			FixAction:        fixAction(issue),
			AffectedSegments: issue.AffectedSegments,
			EstimatedTime:    estimatedFixTime(issue.IssueType),
		})
	}
	return suggestions
}

func fixAction(issue types.SyncIssue) types.FixAction {
	switch issue.IssueType {
	case types.IssueCountMismatch:
		return types.FixRegenerateImagesByVoiceTime
	case types.IssueContentMismatch:
		return types.FixRegenerateMatchedImages
	case types.IssueDurationMismatch:
		// The duration check encodes which bound was violated in its
		// description; dispatch on it the way the issue list is rendered.
		if strings.Contains(issue.Description, "过短") {
			return types.FixMergeShortSegments
		}
		if strings.Contains(issue.Description, "过长") {
			return types.FixSplitLongSegments
		}
		return types.FixAdjustSegmentDurations
	default:
		return types.FixManualRequired
	}
}

func estimatedFixTime(issueType types.IssueType) string {
	switch issueType {
	case types.IssueCountMismatch:
		return "2-5分钟"
	case types.IssueContentMismatch:
		return "5-10分钟"
	case types.IssueDurationMismatch:
		return "1-3分钟"
	default:
		return "需要手动处理"
	}
}

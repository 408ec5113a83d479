// Package script turns free-form generated shot scripts into typed records
// and drives the generate→validate→retry loop for the storyboard stage.
package script

import (
	"regexp"
	"strings"

	"github.com/ljc0311/storyvid/internal/types"
)

// shotHeaderRe matches shot headings like "### 镜头3" or "## 镜头 12".
var shotHeaderRe = regexp.MustCompile(`^#{2,}\s*镜头\s*(\d+)`)

// field markers emitted by the script generator; both full-width and
// half-width colons appear in practice, with an optional list dash.
var (
	originalTextMarkers = []string{"**镜头原文**：", "**镜头原文**:", "镜头原文："}
	descriptionMarkers  = []string{"**画面描述**：", "**画面描述**:", "画面描述："}
	titleMarkers        = []string{"**镜头标题**：", "**镜头标题**:"}
)

// ParseShots extracts typed shot records from a generated script. Lines
// outside recognized markers are ignored, so the packing and coverage logic
// never has to touch raw script text. A script with no recognizable shots
// yields an empty slice, not an error.
func ParseShots(scriptText string) []types.ShotRecord {
	var records []types.ShotRecord
	var current *types.ShotRecord

	for _, line := range strings.Split(scriptText, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")

		if m := shotHeaderRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				records = append(records, *current)
			}
			current = &types.ShotRecord{Index: len(records) + 1}
			continue
		}

		if current == nil {
			continue
		}

		if value, ok := matchField(line, originalTextMarkers); ok {
			current.OriginalText = value
		} else if value, ok := matchField(line, descriptionMarkers); ok {
			current.Description = value
		} else if value, ok := matchField(line, titleMarkers); ok {
			current.Title = value
		}
	}

	if current != nil {
		records = append(records, *current)
	}
	return records
}

func matchField(line string, markers []string) (string, bool) {
	for _, marker := range markers {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return "", false
}

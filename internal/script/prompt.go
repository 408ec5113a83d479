package script

import (
	"fmt"
	"strings"

	"github.com/ljc0311/storyvid/internal/prompts"
	"github.com/ljc0311/storyvid/internal/types"
)

const promptFile = "storyboard.json"

// BuildGeneratePrompt assembles the shot-script generation prompt from the
// shot assignment and the original narration text.
func BuildGeneratePrompt(assignment types.ShotAssignment, originalText string) (string, error) {
	template, err := prompts.Get(promptFile, "generate-shot-script")
	if err != nil {
		return "", err
	}

	var groups strings.Builder
	for i, group := range assignment.Groups {
		groups.WriteString(fmt.Sprintf("镜头%d：%s\n", i+1, group.Text()))
	}

	return prompts.Format(template, map[string]string{
		"ShotCount":    fmt.Sprintf("%d", len(assignment.Groups)),
		"ShotGroups":   strings.TrimRight(groups.String(), "\n"),
		"OriginalText": originalText,
	}), nil
}

// BuildRetryPrompt assembles the augmented retry prompt listing the missing
// sentences verbatim, used for the single bounded retry.
func BuildRetryPrompt(missingSentences []string, originalText string) (string, error) {
	template, err := prompts.Get(promptFile, "retry-missing-sentences")
	if err != nil {
		return "", err
	}

	var missing strings.Builder
	for i, sentence := range missingSentences {
		missing.WriteString(fmt.Sprintf("%d. %s\n", i+1, sentence))
	}

	return prompts.Format(template, map[string]string{
		"MissingSentences": strings.TrimRight(missing.String(), "\n"),
		"OriginalText":     originalText,
	}), nil
}

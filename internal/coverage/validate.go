// Package coverage validates generated shot scripts against the original
// narration text.
package coverage

import (
	"strings"
	"unicode/utf8"

	"github.com/ljc0311/storyvid/internal/types"
)

const (
	// completeRatio is the coverage ratio at or above which a script can
	// be considered complete
	completeRatio = 0.85
	// retryRatio is the coverage ratio below which the generation loop
	// should attempt its single bounded retry
	retryRatio = 0.7
	// maxMissingForComplete is the largest missing-sentence count a
	// complete script may have
	maxMissingForComplete = 1
)

// Validate compares the parsed shot records against the original sentence
// sequence and full text. It is a pure function: calling it twice on the
// same inputs yields identical reports.
func Validate(records []types.ShotRecord, sentences []string, originalText string) types.CoverageReport {
	var report types.CoverageReport

	seen := make(map[string]bool)
	var covered strings.Builder

	for _, record := range records {
		text := strings.TrimSpace(record.OriginalText)
		if text == "" || isPlaceholder(text) {
			report.EmptyShotCount++
			continue
		}
		if seen[text] {
			report.DuplicateShotCount++
			continue
		}
		seen[text] = true
		covered.WriteString(text)
	}

	coveredText := covered.String()

	originalLen := utf8.RuneCountInString(originalText)
	if originalLen > 0 {
		report.CoverageRatio = float64(utf8.RuneCountInString(coveredText)) / float64(originalLen)
		if report.CoverageRatio > 1 {
			report.CoverageRatio = 1
		}
	}

	for _, sentence := range sentences {
		if !strings.Contains(coveredText, trimSentence(sentence)) {
			report.MissingSentences = append(report.MissingSentences, sentence)
		}
	}

	report.IsComplete = report.CoverageRatio >= completeRatio &&
		len(report.MissingSentences) <= maxMissingForComplete &&
		report.DuplicateShotCount == 0

	return report
}

// NeedsRetry reports whether the generation loop should re-invoke the
// script collaborator. The retry is bounded to one attempt by the caller.
func NeedsRetry(report types.CoverageReport) bool {
	return report.CoverageRatio < retryRatio || report.DuplicateShotCount > 0
}

// StrictlyWorse reports whether candidate is worse than baseline on both
// coverage ratio and duplicate count. The retry result is kept only when
// this returns false.
func StrictlyWorse(candidate, baseline types.CoverageReport) bool {
	return candidate.CoverageRatio < baseline.CoverageRatio &&
		candidate.DuplicateShotCount > baseline.DuplicateShotCount
}

// trimSentence strips whitespace and the terminal punctuation the splitter
// re-appended, so the substring check tolerates scripts that quote the
// sentence body without its full stop.
func trimSentence(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimRight(s, "。！？")
}

// bracket pairs that mark a field as a placeholder rather than script text
var bracketPairs = [][2]rune{
	{'[', ']'},
	{'(', ')'},
	{'{', '}'},
	{'【', '】'},
	{'（', '）'},
}

// isPlaceholder reports whether the field is a bracket-only placeholder
// such as "[待补充]" left behind by the generator.
func isPlaceholder(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	for _, pair := range bracketPairs {
		if first == pair[0] && last == pair[1] {
			return true
		}
	}
	return false
}

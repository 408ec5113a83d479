// Package estimate derives narration durations from text when no measured
// audio duration is available.
package estimate

import (
	"strings"
	"unicode"
)

const (
	cjkCharsPerSecond  = 4.0
	latinWordsPerSecond = 2.5
	pauseFactor         = 1.2
	minDurationSeconds  = 1.0
	maxDurationSeconds  = 30.0
	defaultDuration     = 3.0
)

// Duration estimates how long the given narration text takes to speak.
// CJK-dominant text is paced per character, latin-dominant text per word;
// a pause factor is applied and the result is clamped to [1, 30] seconds.
// Empty text falls back to a neutral default.
func Duration(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return defaultDuration
	}

	cjkChars := 0
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			cjkChars++
		}
	}

	latinWords := 0
	for _, word := range strings.Fields(text) {
		if isAlphaWord(word) {
			latinWords++
		}
	}

	var seconds float64
	if cjkChars > latinWords {
		seconds = float64(cjkChars) / cjkCharsPerSecond
	} else {
		seconds = float64(latinWords) / latinWordsPerSecond
	}

	seconds *= pauseFactor
	if seconds < minDurationSeconds {
		return minDurationSeconds
	}
	if seconds > maxDurationSeconds {
		return maxDurationSeconds
	}
	return seconds
}

func isAlphaWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Package splitter breaks narration text into sentence units for shot allocation.
package splitter

import (
	"strings"
	"unicode/utf8"
)

const (
	// minSentenceRunes is the noise threshold: fragments at or below this
	// length are discarded and never surface as standalone sentences.
	minSentenceRunes = 5

	// FallbackSentence is returned when the input contains no usable
	// sentences, so downstream allocators never see an empty sequence.
	FallbackSentence = "无内容。"
)

// terminal punctuation that closes a sentence
var terminators = []rune{'。', '！', '？'}

// SplitSentences splits narration text on terminal punctuation, trims each
// fragment, drops noise fragments, and re-terminates every surviving
// sentence with a full stop. The result is never empty.
func SplitSentences(text string) []string {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		for _, t := range terminators {
			if r == t {
				return true
			}
		}
		return false
	})

	sentences := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if utf8.RuneCountInString(fragment) <= minSentenceRunes {
			continue
		}
		if !endsWithTerminator(fragment) {
			fragment += "。"
		}
		sentences = append(sentences, fragment)
	}

	if len(sentences) == 0 {
		return []string{FallbackSentence}
	}
	return sentences
}

func endsWithTerminator(s string) bool {
	last, _ := utf8.DecodeLastRuneInString(s)
	for _, t := range terminators {
		if last == t {
			return true
		}
	}
	return false
}

// Package topics segments a time-ordered transcript into topic-coherent
// sections and extracts representative keywords. The whole engine is a pure
// function of its inputs: no I/O, no randomness, no shared state.
package topics

import (
	"strings"
	"unicode"
)

// MinTokenLength is the canonical minimum token length for both the
// segmentation path and the word cloud. The source app drifted between 2
// and 3 for the two consumers; one shared constant keeps them aligned.
const MinTokenLength = 3

// tokenize normalizes raw text into candidate keyword tokens: lowercase,
// strip everything outside letters and digits, split on whitespace, then
// drop short tokens, bare numbers and stopwords. Duplicates are retained
// for frequency counting.
func tokenize(text string, minLen int) []string {
	lowered := strings.ToLower(text)
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var tokens []string
	for _, f := range fields {
		if len([]rune(f)) < minLen {
			continue
		}
		if allDigits(f) {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

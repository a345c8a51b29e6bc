package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsValidTopic is a coarse heuristic gate for learning topics, applied
// before any generation call is made. It is not a semantic classifier;
// false positives and negatives are accepted.
func IsValidTopic(topic string) bool {
	cleaned := strings.TrimSpace(topic)
	total := utf8.RuneCountInString(cleaned)
	if total < 2 {
		return false
	}

	// Mostly letters and whitespace, some punctuation allowed.
	alpha := 0
	hasLetter := false
	for _, r := range cleaned {
		if isASCIILetter(r) {
			alpha++
			hasLetter = true
		} else if unicode.IsSpace(r) {
			alpha++
		}
	}
	if float64(alpha)/float64(total) < 0.6 {
		return false
	}
	if !hasLetter {
		return false
	}

	// Reject strings of one repeated character, like "aaa" or "111".
	unique := map[rune]bool{}
	for _, r := range strings.ToLower(cleaned) {
		if unicode.IsSpace(r) {
			continue
		}
		unique[r] = true
	}
	if len(unique) < 2 {
		return false
	}

	// Longer strings with no vowel are treated as keyboard noise.
	if total > 5 && !strings.ContainsAny(cleaned, "aeiouAEIOU") {
		return false
	}

	return true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

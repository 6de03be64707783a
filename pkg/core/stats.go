package core

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Stats summarizes the plain-text view of a content fragment.
type Stats struct {
	Words      int
	Characters int
	Sentences  int
}

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// ComputeStats strips the fragment to plain text and counts characters,
// whitespace-delimited words and sentence segments.
func ComputeStats(content string) Stats {
	text := StripMarkup(content)

	stats := Stats{Characters: utf8.RuneCountInString(text)}
	if strings.TrimSpace(text) == "" {
		return stats
	}

	stats.Words = len(strings.Fields(text))
	for _, segment := range sentenceEnd.Split(text, -1) {
		if strings.TrimSpace(segment) != "" {
			stats.Sentences++
		}
	}
	return stats
}

package util

import (
	"regexp"
	"strings"
)

var paragraphSplit = regexp.MustCompile(`\n\s*\n`)

// TextStats holds counts derived from raw essay text.
type TextStats struct {
	WordCount      int `json:"word_count"`
	CharCount      int `json:"char_count"`
	ParagraphCount int `json:"paragraph_count"`
}

// CountWords counts whitespace-delimited non-empty tokens. Empty or
// whitespace-only text counts as zero.
func CountWords(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	return len(strings.Fields(trimmed))
}

// CountParagraphs counts blocks separated by one-or-more blank lines,
// ignoring blocks with no non-whitespace content.
func CountParagraphs(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	count := 0
	for _, block := range paragraphSplit.Split(text, -1) {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}

// Stats derives all counters from the current text in one pass.
func Stats(text string) TextStats {
	return TextStats{
		WordCount:      CountWords(text),
		CharCount:      len(text),
		ParagraphCount: CountParagraphs(text),
	}
}

package compose

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxExcerpts      = 5
	minExcerptLength = 6
)

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// ExtractExcerpts returns up to five sentence-like fragments of source,
// trimmed and in source order. Fragments of five characters or fewer are
// skipped.
func ExtractExcerpts(source string) []string {
	if source == "" {
		return nil
	}

	var excerpts []string
	for _, piece := range sentenceBreak.Split(source, -1) {
		piece = strings.TrimSpace(piece)
		if utf8.RuneCountInString(piece) < minExcerptLength {
			continue
		}
		excerpts = append(excerpts, piece)
		if len(excerpts) == maxExcerpts {
			break
		}
	}
	return excerpts
}

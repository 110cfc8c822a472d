// Package remedy rewrites posts that run past the length limit, either by
// condensing them into one post or by splitting them into a numbered
// thread.
package remedy

import "unicode/utf8"

const (
	// Limit is the maximum post length in characters.
	Limit = 280
	// Ellipsis marks a cut.
	Ellipsis = "..."
)

// Length counts characters as Unicode code points.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Over reports whether s does not fit in a single post.
func Over(s string) bool {
	return Length(s) > Limit
}

// Truncate cuts s flatly so that it fits with a trailing Ellipsis.
func Truncate(s string) string {
	if !Over(s) {
		return s
	}
	runes := []rune(s)
	return string(runes[:Limit-len(Ellipsis)]) + Ellipsis
}

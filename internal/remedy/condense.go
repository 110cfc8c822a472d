package remedy

import (
	"regexp"
	"strings"
)

type rewrite struct {
	pattern *regexp.Regexp
	with    string
}

func wordRewrite(phrase, with string) rewrite {
	return rewrite{
		pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`),
		with:    with,
	}
}

var (
	fillers     = regexp.MustCompile(`(?i)\b(?:just|very|really|actually|basically|definitely|totally|i think|in my opinion|from my perspective)\b\s*`)
	extraSpaces = regexp.MustCompile(` {2,}`)

	// Applied in order.
	phrases = []rewrite{
		wordRewrite("in order to", "to"),
		wordRewrite("due to the fact that", "because"),
		wordRewrite("at this point in time", "now"),
		wordRewrite("for the purpose of", "for"),
		wordRewrite("in the event that", "if"),
		wordRewrite("a large number of", "many"),
		wordRewrite("the vast majority of", "most"),
		wordRewrite("in spite of the fact that", "although"),
	}

	synonyms = []rewrite{
		wordRewrite("approximately", "about"),
		wordRewrite("assistance", "help"),
		wordRewrite("attempt", "try"),
		wordRewrite("currently", "now"),
		wordRewrite("demonstrate", "show"),
		wordRewrite("determine", "find"),
		wordRewrite("implement", "do"),
		wordRewrite("individual", "person"),
		wordRewrite("information", "info"),
		wordRewrite("regarding", "about"),
		wordRewrite("requirements", "needs"),
		wordRewrite("utilize", "use"),
	}
)

// Cut windows used when the rewritten text is still too long. A clause
// break is looked for in (clauseFloor, cutAt], then a space in
// (wordFloor, cutAt].
const (
	cutAt       = Limit - len(Ellipsis)
	clauseFloor = 200
	wordFloor   = 240
)

// Condense shortens text into a single post. Text that already fits is
// returned unchanged. The result never exceeds Limit.
func Condense(text string) string {
	if !Over(text) {
		return text
	}

	s := fillers.ReplaceAllString(text, "")
	s = strings.TrimSpace(extraSpaces.ReplaceAllString(s, " "))

	for _, r := range phrases {
		s = r.pattern.ReplaceAllLiteralString(s, r.with)
	}
	s = strings.ReplaceAll(s, " and ", " & ")
	for _, r := range synonyms {
		s = r.pattern.ReplaceAllLiteralString(s, r.with)
	}

	return shorten(s)
}

func shorten(s string) string {
	runes := []rune(s)
	if len(runes) <= cutAt {
		return s
	}

	cut := lastIndex(runes, cutAt, clauseFloor, isClauseBreak)
	if cut < 0 {
		cut = lastIndex(runes, cutAt, wordFloor, func(r rune) bool { return r == ' ' })
	}
	if cut < 0 {
		cut = cutAt
	}
	return string(runes[:cut]) + Ellipsis
}

func isClauseBreak(r rune) bool {
	return strings.ContainsRune(".!?,;", r)
}

// lastIndex scans from index from down to, but not including, floor.
func lastIndex(runes []rune, from, floor int, match func(rune) bool) int {
	for i := from; i > floor; i-- {
		if match(runes[i]) {
			return i
		}
	}
	return -1
}

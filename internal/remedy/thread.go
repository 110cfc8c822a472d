package remedy

import (
	"fmt"
	"regexp"
	"strings"
)

// A sentence is a run of text closed by one or more terminators. Text
// after the last terminator is kept as a final sentence.
var sentencePattern = regexp.MustCompile(`[^.!?]*[.!?]+|[^.!?]+`)

// Thread splits text into numbered parts. Text that already fits is
// returned as the only element, without numbering.
//
// Parts are packed to at most Limit characters before the " (i/n)"
// suffix is added; the suffix is not counted, so a full part can end up
// longer than Limit. Advise reports such parts.
func Thread(text string) []string {
	if !Over(text) {
		return []string{text}
	}

	var p packer
	for _, sentence := range sentencePattern.FindAllString(text, -1) {
		p.addSentence(sentence)
	}
	p.flush()

	return number(p.parts)
}

type packer struct {
	parts   []string
	current string
}

func (p *packer) extend(next string) (string, bool) {
	candidate := next
	if p.current != "" {
		candidate = p.current + " " + next
	}
	return candidate, Length(candidate) <= Limit
}

func (p *packer) flush() {
	if p.current != "" {
		p.parts = append(p.parts, p.current)
		p.current = ""
	}
}

func (p *packer) addSentence(sentence string) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return
	}
	if candidate, ok := p.extend(sentence); ok {
		p.current = candidate
		return
	}

	p.flush()
	if !Over(sentence) {
		p.current = sentence
		return
	}
	for _, word := range strings.Fields(sentence) {
		p.addWord(word)
	}
}

func (p *packer) addWord(word string) {
	if candidate, ok := p.extend(word); ok {
		p.current = candidate
		return
	}

	p.flush()
	// A single word longer than a post is cut into post-sized pieces.
	for Over(word) {
		runes := []rune(word)
		p.parts = append(p.parts, string(runes[:Limit]))
		word = string(runes[Limit:])
	}
	p.current = word
}

func number(parts []string) []string {
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = fmt.Sprintf("%s (%d/%d)", part, i+1, len(parts))
	}
	return out
}

// Package compose turns a topic and optional source text into a short
// list of draft posts.
package compose

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sant0-9/quill/internal/category"
	"github.com/sant0-9/quill/internal/remedy"
	"github.com/sant0-9/quill/internal/rng"
	"github.com/sant0-9/quill/internal/templates"
)

const (
	templateDrafts = 4
	maxFileDrafts  = 2
	maxTopicDrafts = 2
	maxDrafts      = 6
)

var ordinals = []string{"first", "second", "third", "fourth", "fifth"}

// Composer is stateless apart from its template bank and may be shared.
type Composer struct {
	bank *templates.Bank
}

// New returns a Composer over bank, or over the built-in bank when nil.
func New(bank *templates.Bank) *Composer {
	if bank == nil {
		bank = templates.Default()
	}
	return &Composer{bank: bank}
}

// Compose builds up to six unique drafts, each at most remedy.Limit
// characters. An empty source means no file was supplied. r is consumed
// for template sampling and decoration only.
func (c *Composer) Compose(topic, source string, r rng.Source) []string {
	var drafts []string

	for _, tpl := range c.bank.Sample(category.Classify(topic), templateDrafts, r) {
		drafts = append(drafts, decorate(fill(tpl, r), topic, r))
	}

	if excerpts := ExtractExcerpts(source); len(excerpts) > 0 {
		drafts = append(drafts, excerptDrafts(excerpts)[:maxFileDrafts]...)
	}

	if topic != "" {
		drafts = append(drafts, topicDrafts(topic)[:maxTopicDrafts]...)
	}

	return finish(drafts)
}

func fill(tpl string, r rng.Source) string {
	return strings.Replace(tpl, templates.Placeholder, ordinals[r.IntN(len(ordinals))], 1)
}

// decorate mentions the topic once, either as a lead-in or as a hashtag,
// unless the draft already contains it.
func decorate(draft, topic string, r rng.Source) string {
	if topic == "" || strings.Contains(strings.ToLower(draft), strings.ToLower(topic)) {
		return draft
	}

	if r.Float64() >= 0.5 {
		return capitalize(topic) + " thoughts: " + draft
	}

	tag := hashtag(topic)
	if strings.Contains(draft, tag) {
		return draft
	}
	return draft + " " + tag
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

func hashtag(topic string) string {
	return "#" + strings.Join(strings.Fields(topic), "")
}

func excerptDrafts(excerpts []string) []string {
	second, third := excerpts[0], excerpts[0]
	if len(excerpts) > 1 {
		second = excerpts[1]
	}
	if len(excerpts) > 2 {
		third = excerpts[2]
	}
	return []string{
		fmt.Sprintf("Just read this gem: \"%s\" 💎 #LearningEveryday", excerpts[0]),
		fmt.Sprintf("Today I learned: %s 🧠 #GrowthMindset", second),
		fmt.Sprintf("Hot take from my reading today: %s Thoughts? 🤔 #InternInsights", third),
	}
}

func topicDrafts(topic string) []string {
	return []string{
		fmt.Sprintf("Been diving deep into %s today. My brain is full but my coffee cup is empty! ☕ #AlwaysLearning", topic),
		fmt.Sprintf("That moment when you finally understand %s after staring at documentation for hours 🤯 #Breakthrough", topic),
		fmt.Sprintf("Asked a \"quick question\" about %s in the team chat and accidentally started a 45-minute debate 😅 #TeamDiscussions", topic),
	}
}

// finish truncates, removes exact duplicates keeping the first, and caps
// the list.
func finish(drafts []string) []string {
	seen := make(map[string]bool, len(drafts))
	out := make([]string, 0, maxDrafts)
	for _, d := range drafts {
		d = remedy.Truncate(d)
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
		if len(out) == maxDrafts {
			break
		}
	}
	return out
}

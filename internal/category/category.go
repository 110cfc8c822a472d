// Package category maps free-text topics onto the fixed set of template
// categories.
package category

import (
	"errors"
	"fmt"
	"strings"
)

// Category selects which template set drafts are drawn from.
type Category string

const (
	General  Category = "general"
	FirstDay Category = "firstDay"
	WFH      Category = "wfh"
	Impostor Category = "impostor"
	Learning Category = "learning"
)

var ErrUnknown = errors.New("unknown category")

// All returns every category, General first.
func All() []Category {
	return []Category{General, FirstDay, WFH, Impostor, Learning}
}

// Parse accepts a category name as written in template files.
func Parse(s string) (Category, error) {
	for _, c := range All() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknown, s)
}

// Label is the human-readable name shown in the UI.
func (c Category) Label() string {
	switch c {
	case FirstDay:
		return "First day"
	case WFH:
		return "Working from home"
	case Impostor:
		return "Impostor syndrome"
	case Learning:
		return "Learning"
	default:
		return "General"
	}
}

// rule is checked in order; the first matching keyword wins.
type rule struct {
	category Category
	keywords []string
}

var rules = []rule{
	{FirstDay, []string{"first day", "new job", "started"}},
	{WFH, []string{"wfh", "work from home", "remote"}},
	{Impostor, []string{"imposter", "impostor", "confidence"}},
	{Learning, []string{"learning", "study", "skills"}},
}

// Classify picks the category for topic by case-insensitive substring
// match. Topics that match nothing, including the empty topic, are General.
func Classify(topic string) Category {
	lower := strings.ToLower(topic)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return General
}

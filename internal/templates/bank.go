// Package templates holds the post templates for each category.
package templates

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sant0-9/quill/internal/category"
	"github.com/sant0-9/quill/internal/rng"
)

// Placeholder is replaced with an ordinal word when a draft is rendered.
const Placeholder = "{nth}"

//go:embed templates.yaml
var builtin []byte

var ErrEmptySet = errors.New("template set is empty")

// Bank is read-only after construction and safe to share.
type Bank struct {
	sets map[category.Category][]string
}

var defaultBank = mustParse(builtin)

// Default returns the built-in bank.
func Default() *Bank {
	return defaultBank
}

// Load reads a YAML file of category -> templates. Categories present in
// the file replace the built-in set; the rest keep their defaults.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}

	override, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	sets := make(map[category.Category][]string, len(defaultBank.sets))
	for c, set := range defaultBank.sets {
		sets[c] = set
	}
	for c, set := range override.sets {
		sets[c] = set
	}
	return &Bank{sets: sets}, nil
}

func mustParse(data []byte) *Bank {
	b, err := parse(data)
	if err != nil {
		panic(fmt.Sprintf("templates: built-in set: %v", err))
	}
	return b
}

func parse(data []byte) (*Bank, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	b := &Bank{sets: make(map[category.Category][]string, len(raw))}
	for name, set := range raw {
		c, err := category.Parse(name)
		if err != nil {
			return nil, err
		}
		if len(set) == 0 {
			return nil, fmt.Errorf("%s: %w", name, ErrEmptySet)
		}
		b.sets[c] = append([]string(nil), set...)
	}
	return b, nil
}

// Templates returns a copy of the set for c in declaration order.
func (b *Bank) Templates(c category.Category) []string {
	return append([]string(nil), b.sets[c]...)
}

// Sample returns up to n templates of c in random order, without
// replacement. Only the first n positions of the permutation are drawn.
func (b *Bank) Sample(c category.Category, n int, r rng.Source) []string {
	set := b.Templates(c)
	if n > len(set) {
		n = len(set)
	}
	if n <= 0 {
		return nil
	}

	for i := 0; i < n; i++ {
		j := i + r.IntN(len(set)-i)
		set[i], set[j] = set[j], set[i]
	}
	return set[:n]
}

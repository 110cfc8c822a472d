package compose

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/quill/internal/category"
	"github.com/sant0-9/quill/internal/remedy"
	"github.com/sant0-9/quill/internal/rng"
	"github.com/sant0-9/quill/internal/templates"
)

func bankFrom(t *testing.T, yaml string) *templates.Bank {
	t.Helper()
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	b, err := templates.Load(path)
	require.NoError(t, err)
	return b
}

func assertWellFormed(t *testing.T, drafts []string) {
	t.Helper()
	assert.LessOrEqual(t, len(drafts), maxDrafts)
	seen := map[string]bool{}
	for _, d := range drafts {
		assert.LessOrEqual(t, remedy.Length(d), remedy.Limit, "draft %q", d)
		assert.False(t, seen[d], "duplicate draft %q", d)
		seen[d] = true
	}
}

func TestComposeFirstDayScenario(t *testing.T) {
	c := New(nil)
	firstDay := templates.Default().Templates(category.FirstDay)

	drafts := c.Compose("first day", "", &rng.Sequence{})

	require.Len(t, drafts, 6)
	assertWellFormed(t, drafts)

	assert.Equal(t, firstDay[0], drafts[0])
	assert.Equal(t, firstDay[1]+" #firstday", drafts[1])
	assert.Equal(t, firstDay[2], drafts[2])
	assert.Equal(t, firstDay[3], drafts[3])
	assert.Contains(t, drafts[4], "Been diving deep into first day today.")
	assert.Contains(t, drafts[5], "finally understand first day after")
}

func TestComposePrefixDecoration(t *testing.T) {
	c := New(nil)
	firstDay := templates.Default().Templates(category.FirstDay)

	drafts := c.Compose("first day", "", &rng.Sequence{Floats: []float64{0.9}})

	assert.Equal(t, "First day thoughts: "+firstDay[1], drafts[1])
}

func TestComposeSeededDraftsComeFromCategory(t *testing.T) {
	firstDay := templates.Default().Templates(category.FirstDay)

	for seed := uint64(0); seed < 25; seed++ {
		drafts := New(nil).Compose("first day", "", rng.New(seed))
		require.Len(t, drafts, 6)
		assertWellFormed(t, drafts)

		for _, d := range drafts[:4] {
			base := strings.TrimPrefix(d, "First day thoughts: ")
			base = strings.TrimSuffix(base, " #firstday")
			assert.Contains(t, firstDay, base)
		}
	}
}

func TestComposeFillsPlaceholder(t *testing.T) {
	drafts := New(nil).Compose("", "", &rng.Sequence{Ints: []int{0, 0, 0, 0, 2}})

	require.Len(t, drafts, 4)
	assert.True(t, strings.HasPrefix(drafts[0], "Just had my third coffee of the day."), drafts[0])
	for _, d := range drafts {
		assert.NotContains(t, d, templates.Placeholder)
	}
}

func TestComposeWithSourceText(t *testing.T) {
	source := "Go is fun. Tests are great! Short. Channels rock?"

	drafts := New(nil).Compose("", source, &rng.Sequence{})

	require.Len(t, drafts, 6)
	assert.Equal(t, `Just read this gem: "Go is fun" 💎 #LearningEveryday`, drafts[4])
	assert.Equal(t, "Today I learned: Tests are great 🧠 #GrowthMindset", drafts[5])
}

func TestComposeSingleExcerptIsReused(t *testing.T) {
	b := bankFrom(t, "general:\n  - \"One\"\n")

	drafts := New(b).Compose("", "Only one sentence here", &rng.Sequence{})

	assert.Equal(t, []string{
		"One",
		`Just read this gem: "Only one sentence here" 💎 #LearningEveryday`,
		"Today I learned: Only one sentence here 🧠 #GrowthMindset",
	}, drafts)
}

func TestComposeExistingHashtagNotRepeated(t *testing.T) {
	general := templates.Default().Templates(category.General)

	// "intern  life" is not a substring, but its hashtag #InternLife is.
	drafts := New(nil).Compose("Intern  Life", "", &rng.Sequence{})

	assert.Equal(t, strings.Replace(general[0], templates.Placeholder, "first", 1), drafts[0])
}

func TestComposeDeduplicates(t *testing.T) {
	b := bankFrom(t, "general:\n  - \"Same post\"\n  - \"Same post\"\n  - \"Same post\"\n")

	drafts := New(b).Compose("", "", rng.New(3))

	assert.Equal(t, []string{"Same post"}, drafts)
}

func TestComposeTruncatesLongDrafts(t *testing.T) {
	b := bankFrom(t, "general:\n  - \""+strings.Repeat("long ", 100)+"\"\n")

	drafts := New(b).Compose("", "", rng.New(1))

	require.Len(t, drafts, 1)
	assert.Equal(t, remedy.Limit, remedy.Length(drafts[0]))
	assert.True(t, strings.HasSuffix(drafts[0], remedy.Ellipsis))
}

func TestComposeCapsAtSix(t *testing.T) {
	source := strings.Repeat("A long enough sentence. ", 10)
	for seed := uint64(0); seed < 10; seed++ {
		drafts := New(nil).Compose("learning Go", source, rng.New(seed))
		assert.Len(t, drafts, 6)
		assertWellFormed(t, drafts)
	}
}

func TestComposeEmptyInputs(t *testing.T) {
	drafts := New(nil).Compose("", "", rng.New(9))
	assert.Len(t, drafts, 4)
	assertWellFormed(t, drafts)
}

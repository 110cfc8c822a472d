package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/quill/internal/category"
	"github.com/sant0-9/quill/internal/clipboard"
	"github.com/sant0-9/quill/internal/compose"
	"github.com/sant0-9/quill/internal/remedy"
	"github.com/sant0-9/quill/internal/rng"
)

func newTestApp(t *testing.T) (*App, *clipboard.Memory) {
	t.Helper()
	clip := &clipboard.Memory{}
	a := NewApp(compose.New(nil), &rng.Sequence{}, clip)
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return a, clip
}

func press(a *App, k tea.KeyMsg) tea.Cmd {
	_, cmd := a.Update(k)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

// generate types topic and runs the resulting command.
func generate(t *testing.T, a *App, topic string) {
	t.Helper()
	a.state.topicInput.SetValue(topic)
	cmd := a.handleKey(enter)
	require.NotNil(t, cmd)
	a.Update(cmd())
}

func TestGenerateDrafts(t *testing.T) {
	a, _ := newTestApp(t)

	generate(t, a, "first day")

	assert.Equal(t, viewDrafts, a.view)
	assert.Equal(t, category.FirstDay, a.state.category)
	assert.Len(t, a.state.drafts, 6)
	assert.Equal(t, 0, a.state.selected)
	assert.Contains(t, a.View(), "6 drafts")
}

func TestGenerateNeedsTopicOrFile(t *testing.T) {
	a, _ := newTestApp(t)

	cmd := a.handleKey(enter)

	assert.Nil(t, cmd)
	assert.Equal(t, viewCompose, a.view)
	assert.Equal(t, "Enter a topic or attach a file first", a.state.notice)
}

func TestSlashCommands(t *testing.T) {
	tests := []struct {
		input string
		want  view
		quit  bool
	}{
		{"/help", viewHelp, false},
		{"/h", viewHelp, false},
		{"/clear", viewCompose, false},
		{"/quit", viewCompose, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			a, _ := newTestApp(t)
			a.state.topicInput.SetValue(tt.input)
			a.handleKey(enter)

			if a.view != tt.want {
				t.Errorf("view = %v, want %v", a.view, tt.want)
			}
			if a.quitting != tt.quit {
				t.Errorf("quitting = %v, want %v", a.quitting, tt.quit)
			}
		})
	}
}

func TestHelpReturnsToPreviousView(t *testing.T) {
	a, _ := newTestApp(t)
	generate(t, a, "wfh")

	press(a, runes("?"))
	assert.Equal(t, viewHelp, a.view)

	press(a, esc)
	assert.Equal(t, viewDrafts, a.view)
}

func TestDraftNavigationAndCopy(t *testing.T) {
	a, clip := newTestApp(t)
	generate(t, a, "first day")

	press(a, runes("j"))
	press(a, runes("j"))
	press(a, runes("k"))
	assert.Equal(t, 1, a.state.selected)

	cmd := a.handleKey(runes("c"))
	require.NotNil(t, cmd)
	a.Update(cmd())
	assert.Equal(t, a.state.drafts[1], clip.Last())
	assert.Equal(t, "Copied draft", a.state.notice)

	a.Update(a.handleKey(runes("o"))())
	assert.Equal(t, remedy.IntentURL(a.state.drafts[1]), clip.Last())
}

func TestSelectionStaysInRange(t *testing.T) {
	a, _ := newTestApp(t)
	generate(t, a, "learning")

	press(a, runes("k"))
	assert.Equal(t, 0, a.state.selected)

	for range 10 {
		press(a, runes("j"))
	}
	assert.Equal(t, len(a.state.drafts)-1, a.state.selected)
}

func TestRefreshKeepsTopic(t *testing.T) {
	a, _ := newTestApp(t)
	generate(t, a, "impostor syndrome")
	a.state.selected = 2

	cmd := a.handleKey(runes("r"))
	require.NotNil(t, cmd)
	a.Update(cmd())

	assert.Equal(t, "impostor syndrome", a.state.topic)
	assert.Equal(t, category.Impostor, a.state.category)
	assert.Equal(t, 0, a.state.selected)
}

func TestGenerateWhileBusyIsIgnored(t *testing.T) {
	a, _ := newTestApp(t)
	generate(t, a, "first day")

	first := a.handleKey(runes("r"))
	require.NotNil(t, first)
	assert.True(t, a.state.generating)

	second := a.handleKey(runes("r"))
	assert.Nil(t, second)

	a.Update(first())
	assert.False(t, a.state.generating)

	third := a.handleKey(runes("r"))
	assert.NotNil(t, third)
}

func TestEnterWhileBusyIsIgnored(t *testing.T) {
	a, _ := newTestApp(t)
	a.state.topicInput.SetValue("wfh")

	require.NotNil(t, a.handleKey(enter))
	assert.Nil(t, a.handleKey(enter))
}

func TestEditorRemediation(t *testing.T) {
	a, clip := newTestApp(t)
	generate(t, a, "first day")

	press(a, runes("e"))
	require.Equal(t, viewEditor, a.view)
	assert.Equal(t, a.state.drafts[0], a.state.editor.Value())
	assert.Nil(t, a.state.remediation)

	long := strings.TrimSpace(strings.Repeat("This is really a very long sentence about interning. ", 8))
	a.state.editor.SetValue(long)
	a.refreshRemediation()
	require.NotNil(t, a.state.remediation)
	assert.Contains(t, a.View(), "Condensed")

	a.handleKey(tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Equal(t, remedy.Condense(long), a.state.editor.Value())
	assert.LessOrEqual(t, remedy.Length(a.state.editor.Value()), remedy.Limit)
	assert.Nil(t, a.state.remediation)

	a.state.editor.SetValue(long)
	a.refreshRemediation()
	a.handleKey(tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Equal(t, remedy.Thread(long)[0], a.state.editor.Value())

	a.state.editor.SetValue(long)
	a.Update(a.handleKey(tea.KeyMsg{Type: tea.KeyCtrlL})())
	assert.Equal(t, strings.Join(remedy.Thread(long), "\n\n"), clip.Last())

	press(a, esc)
	assert.Equal(t, viewDrafts, a.view)
	assert.Equal(t, long, a.state.drafts[0])
}

func TestAttachDocument(t *testing.T) {
	a, _ := newTestApp(t)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("Shipped my first feature. Pairing helped a lot!"), 0o644))

	press(a, tab)
	require.Equal(t, fieldPath, a.state.focus)
	a.state.pathInput.SetValue(`"` + path + `"`)

	cmd := a.handleKey(enter)
	require.NotNil(t, cmd)
	a.Update(cmd())

	require.NotNil(t, a.state.document)
	assert.Equal(t, "notes.txt", a.state.document.Name)
	assert.Equal(t, fieldTopic, a.state.focus)
	assert.Contains(t, a.View(), "notes.txt")

	// A file alone is enough to generate.
	cmd = a.handleKey(enter)
	require.NotNil(t, cmd)
	a.Update(cmd())
	assert.Contains(t, a.state.drafts, "Just read this gem: \"Shipped my first feature\" 💎 #LearningEveryday")

	press(a, esc)
	press(a, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Nil(t, a.state.document)
}

func TestAttachMissingFileShowsError(t *testing.T) {
	a, _ := newTestApp(t)

	press(a, tab)
	a.state.pathInput.SetValue(filepath.Join(t.TempDir(), "nope.txt"))
	a.Update(a.handleKey(enter)())

	assert.Equal(t, viewError, a.view)
	assert.Contains(t, a.View(), "file not found")
	assert.Contains(t, a.View(), "Check the file path is correct")

	press(a, enter)
	assert.Equal(t, viewCompose, a.view)
	assert.Nil(t, a.state.err)
}

func TestEscQuitsFromCompose(t *testing.T) {
	a, _ := newTestApp(t)

	cmd := a.handleKey(esc)

	assert.True(t, a.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", a.View())
}

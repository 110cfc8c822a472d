package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sant0-9/quill/internal/category"
	"github.com/sant0-9/quill/internal/document"
	"github.com/sant0-9/quill/internal/remedy"
)

type field int

const (
	fieldTopic field = iota
	fieldPath
)

type state struct {
	// Compose inputs
	topicInput textinput.Model
	pathInput  textinput.Model
	focus      field

	// Attached file
	document *document.Document

	// Drafts from the last generation
	topic      string
	category   category.Category
	drafts     []string
	selected   int
	generating bool

	// Editor
	editor      textarea.Model
	remediation *remedy.Remediation

	// One-line feedback under the current view, cleared on the next key
	notice string

	err      error
	errorFor view
}

func newState() *state {
	topic := textinput.New()
	topic.Placeholder = "What's on your mind? (/help for commands)"
	topic.CharLimit = 500
	topic.Width = 60
	topic.Focus()

	path := textinput.New()
	path.Placeholder = "Optional: path to a .txt, .pdf or .docx file"
	path.CharLimit = 1024
	path.Width = 60

	editor := textarea.New()
	editor.Placeholder = "Write your post..."
	editor.ShowLineNumbers = false
	editor.CharLimit = 4000
	editor.SetWidth(66)
	editor.SetHeight(8)

	return &state{
		topicInput: topic,
		pathInput:  path,
		editor:     editor,
	}
}

// source returns the attached file's text, or "" when nothing is attached.
func (s *state) source() string {
	if s.document == nil {
		return ""
	}
	return s.document.Content
}

func (s *state) selectedDraft() (string, bool) {
	if s.selected < 0 || s.selected >= len(s.drafts) {
		return "", false
	}
	return s.drafts[s.selected], true
}

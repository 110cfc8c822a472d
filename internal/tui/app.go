package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/quill/internal/category"
	"github.com/sant0-9/quill/internal/clipboard"
	"github.com/sant0-9/quill/internal/compose"
	"github.com/sant0-9/quill/internal/document"
	"github.com/sant0-9/quill/internal/observability"
	"github.com/sant0-9/quill/internal/remedy"
	"github.com/sant0-9/quill/internal/rng"
)

type view int

const (
	viewCompose view = iota
	viewDrafts
	viewEditor
	viewHelp
	viewError
)

type App struct {
	width    int
	height   int
	view     view
	prevView view
	state    *state
	quitting bool

	composer *compose.Composer
	source   rng.Source
	clip     clipboard.Writer
}

func NewApp(composer *compose.Composer, source rng.Source, clip clipboard.Writer) *App {
	if composer == nil {
		composer = compose.New(nil)
	}
	if source == nil {
		source = rng.NewRandom()
	}
	if clip == nil {
		clip = &clipboard.Memory{}
	}
	return &App{
		view:     viewCompose,
		state:    newState(),
		composer: composer,
		source:   source,
		clip:     clip,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		a.state.notice = ""
		before := a.view
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		// Keys that switched views are not also typed into the new view.
		if before != a.view {
			return a, tea.Batch(cmds...)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		width := min(70, a.width-4) - 4
		if width > 10 {
			a.state.topicInput.Width = width
			a.state.pathInput.Width = width
			a.state.editor.SetWidth(width)
		}

	case draftsReadyMsg:
		a.state.generating = false
		a.state.topic = msg.topic
		a.state.category = msg.category
		a.state.drafts = msg.drafts
		a.state.selected = 0
		a.view = viewDrafts
		observability.Logger().Debug("drafts ready", "category", msg.category, "count", len(msg.drafts))
		return a, nil

	case documentLoadedMsg:
		a.state.document = msg.doc
		a.state.pathInput.Reset()
		a.setFocus(fieldTopic)
		a.state.notice = fmt.Sprintf("Attached %s (%s)", msg.doc.Name, msg.doc.Metadata.FileSizeHuman())
		observability.Logger().Info("document attached", "name", msg.doc.Name, "words", msg.doc.Metadata.WordCount)
		return a, nil

	case copiedMsg:
		if msg.err != nil {
			a.state.notice = "Copy failed: " + msg.err.Error()
			observability.Logger().Warn("clipboard write failed", "error", msg.err)
		} else {
			a.state.notice = "Copied " + msg.what
		}
		return a, nil

	case errMsg:
		a.state.generating = false
		a.state.err = msg.error
		a.state.errorFor = a.view
		a.view = viewError
		observability.Logger().Error("operation failed", "error", msg.error)
		return a, nil
	}

	switch a.view {
	case viewCompose:
		var cmd tea.Cmd
		if a.state.focus == fieldPath {
			a.state.pathInput, cmd = a.state.pathInput.Update(msg)
		} else {
			a.state.topicInput, cmd = a.state.topicInput.Update(msg)
		}
		cmds = append(cmds, cmd)
	case viewEditor:
		var cmd tea.Cmd
		a.state.editor, cmd = a.state.editor.Update(msg)
		cmds = append(cmds, cmd)
		a.refreshRemediation()
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		a.quitting = true
		return tea.Quit
	}

	switch a.view {
	case viewCompose:
		return a.handleComposeKey(msg)
	case viewDrafts:
		return a.handleDraftsKey(msg)
	case viewEditor:
		return a.handleEditorKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Quit) {
			a.view = a.prevView
		}
	case viewError:
		if key.Matches(msg, keys.Quit) || key.Matches(msg, keys.Enter) {
			a.state.err = nil
			a.view = a.state.errorFor
			if a.view == viewEditor || a.view == viewError {
				a.view = viewCompose
			}
		}
	}
	return nil
}

func (a *App) handleComposeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Tab):
		if a.state.focus == fieldTopic {
			return a.setFocus(fieldPath)
		}
		return a.setFocus(fieldTopic)

	case key.Matches(msg, keys.Detach):
		if a.state.document != nil {
			a.state.notice = "Removed " + a.state.document.Name
			a.state.document = nil
		}
		return nil

	case key.Matches(msg, keys.Enter):
		if a.state.focus == fieldPath {
			return a.loadDocument()
		}
		return a.handleInput()
	}
	return nil
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.topicInput.Value())

	// Handle slash commands
	if strings.HasPrefix(input, "/") {
		cmd := strings.ToLower(input)
		switch {
		case cmd == "/help" || cmd == "/h":
			a.state.topicInput.Reset()
			a.showHelp()
			return nil
		case cmd == "/clear" || cmd == "/c":
			a.state.topicInput.Reset()
			a.state.pathInput.Reset()
			a.state.document = nil
			a.state.drafts = nil
			return nil
		case cmd == "/quit" || cmd == "/q":
			a.quitting = true
			return tea.Quit
		}
		a.state.notice = "Unknown command " + input
		return nil
	}

	if input == "" && a.state.document == nil {
		a.state.notice = "Enter a topic or attach a file first"
		return nil
	}
	return a.generate(input)
}

func (a *App) handleDraftsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		a.view = viewCompose
		return a.setFocus(fieldTopic)

	case key.Matches(msg, keys.Help):
		a.showHelp()

	case key.Matches(msg, keys.Up):
		if a.state.selected > 0 {
			a.state.selected--
		}

	case key.Matches(msg, keys.Down):
		if a.state.selected < len(a.state.drafts)-1 {
			a.state.selected++
		}

	case key.Matches(msg, keys.Copy):
		if text, ok := a.state.selectedDraft(); ok {
			return a.copy("draft", text)
		}

	case key.Matches(msg, keys.Share):
		if text, ok := a.state.selectedDraft(); ok {
			return a.copy("share link", remedy.IntentURL(text))
		}

	case key.Matches(msg, keys.Refresh):
		if a.state.topic == "" && a.state.document == nil {
			return nil
		}
		return a.generate(a.state.topic)

	case key.Matches(msg, keys.Edit):
		if text, ok := a.state.selectedDraft(); ok {
			a.state.editor.SetValue(text)
			a.refreshRemediation()
			a.view = viewEditor
			return a.state.editor.Focus()
		}
	}
	return nil
}

func (a *App) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	rem := a.state.remediation

	switch {
	case key.Matches(msg, keys.Quit):
		// Edits are kept in the draft list.
		a.state.drafts[a.state.selected] = a.state.editor.Value()
		a.state.editor.Blur()
		a.view = viewDrafts

	case key.Matches(msg, keys.AdoptCondensed):
		if rem != nil {
			a.adopt(rem.Choose(remedy.OptionCondensed))
		}

	case key.Matches(msg, keys.AdoptThread):
		if rem != nil {
			a.adopt(rem.Choose(remedy.OptionThread))
		}

	case key.Matches(msg, keys.CopyText):
		return a.copy("post", a.state.editor.Value())

	case key.Matches(msg, keys.CopyThread):
		parts := remedy.Thread(a.state.editor.Value())
		return a.copy(fmt.Sprintf("thread (%d parts)", len(parts)), strings.Join(parts, "\n\n"))
	}
	return nil
}

func (a *App) adopt(text string) {
	a.state.editor.SetValue(text)
	a.refreshRemediation()
}

// refreshRemediation recomputes both alternatives whenever the editor text
// is over the limit.
func (a *App) refreshRemediation() {
	text := a.state.editor.Value()
	if !remedy.Over(text) {
		a.state.remediation = nil
		return
	}
	rem := remedy.Advise(text)
	a.state.remediation = &rem
}

func (a *App) setFocus(f field) tea.Cmd {
	a.state.focus = f
	if f == fieldPath {
		a.state.topicInput.Blur()
		return a.state.pathInput.Focus()
	}
	a.state.pathInput.Blur()
	return a.state.topicInput.Focus()
}

func (a *App) showHelp() {
	a.prevView = a.view
	a.view = viewHelp
}

// generate returns nil while a previous generation is still running: the
// session's source is not safe for concurrent use.
func (a *App) generate(topic string) tea.Cmd {
	if a.state.generating {
		return nil
	}
	a.state.generating = true
	composer, src, source := a.composer, a.source, a.state.source()
	return func() tea.Msg {
		return draftsReadyMsg{
			topic:    topic,
			category: category.Classify(topic),
			drafts:   composer.Compose(topic, source, src),
		}
	}
}

func (a *App) loadDocument() tea.Cmd {
	path := strings.TrimSpace(a.state.pathInput.Value())
	// Terminals quote dropped paths.
	path = strings.Trim(path, `"'`)
	if path == "" {
		return a.setFocus(fieldTopic)
	}
	return func() tea.Msg {
		doc, err := document.Read(path)
		if err != nil {
			return errMsg{err}
		}
		return documentLoadedMsg{doc}
	}
}

func (a *App) copy(what, text string) tea.Cmd {
	clip := a.clip
	return func() tea.Msg {
		return copiedMsg{what: what, err: clip.Write(text)}
	}
}

type draftsReadyMsg struct {
	topic    string
	category category.Category
	drafts   []string
}

type documentLoadedMsg struct{ doc *document.Document }

type copiedMsg struct {
	what string
	err  error
}

type errMsg struct{ error }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewCompose:
		return a.renderCompose()
	case viewDrafts:
		return a.renderDrafts()
	case viewEditor:
		return a.renderEditor()
	case viewHelp:
		return a.renderHelp()
	case viewError:
		return a.renderError()
	default:
		return a.renderCompose()
	}
}

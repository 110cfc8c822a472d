package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `
  ██████╗ ██╗   ██╗██╗██╗     ██╗
 ██╔═══██╗██║   ██║██║██║     ██║
 ██║   ██║██║   ██║██║██║     ██║
 ██║▄▄ ██║██║   ██║██║██║     ██║
 ╚██████╔╝╚██████╔╝██║███████╗███████╗
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚══════╝
`

func (a *App) renderCompose() string {
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleLogo.Render(logo)))
	b.WriteString("\n")
	subtitle := styleSubtitle.Render("Post drafts from a topic or a file")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	b.WriteString(a.renderField("Topic", a.state.topicInput.View(), a.state.focus == fieldTopic))
	b.WriteString(a.renderField("File", a.state.pathInput.View(), a.state.focus == fieldPath))

	// Attached document
	if doc := a.state.document; doc != nil {
		title := lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true).
			Render(doc.Name)
		meta := styleSubtitle.Render(fmt.Sprintf("%s  |  %s  |  ~%d words",
			strings.ToUpper(doc.Metadata.SourceFormat), doc.Metadata.FileSizeHuman(), doc.Metadata.WordCount))
		preview := styleSubtitle.Render(doc.Preview(120))

		infoBox := styleBox.Copy().
			Width(a.boxWidth()).
			BorderForeground(colorSuccess).
			Render(lipgloss.JoinVertical(lipgloss.Left, title, meta, preview))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, infoBox))
		b.WriteString("\n\n")
	}

	if a.state.generating {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render("Drafting...")))
		b.WriteString("\n\n")
	}
	if a.state.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleNotice.Render(a.state.notice)))
		b.WriteString("\n\n")
	}

	status := "[Enter] Generate  [Tab] Switch field  [Esc] Quit"
	if a.state.focus == fieldPath {
		status = "[Enter] Attach file  [Tab] Switch field  [Esc] Quit"
	}
	if a.state.document != nil {
		status += "  [Ctrl+X] Remove file"
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(status)))

	return a.centerVertically(b.String())
}

func (a *App) renderField(label, input string, focused bool) string {
	border := colorMuted
	if focused {
		border = colorSecondary
	}
	box := styleBox.Copy().
		Width(a.boxWidth()).
		BorderForeground(border).
		Render(input)

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render(label)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")
	return b.String()
}

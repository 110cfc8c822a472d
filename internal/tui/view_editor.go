package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/quill/internal/remedy"
)

func (a *App) renderEditor() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Edit post")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	editorBox := styleBox.Copy().
		Width(a.boxWidth()).
		BorderForeground(colorSecondary).
		Render(a.state.editor.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, editorBox))
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.renderCounter()))
	b.WriteString("\n\n")

	if rem := a.state.remediation; rem != nil {
		b.WriteString(a.renderRemediation(rem))
	}

	if a.state.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleNotice.Render(a.state.notice)))
		b.WriteString("\n\n")
	}

	status := "[Ctrl+Y] Copy  [Esc] Done"
	if a.state.remediation != nil {
		status = "[Ctrl+O] Use condensed  [Ctrl+G] Use thread part 1  [Ctrl+L] Copy thread  " + status
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(status)))

	return a.centerVertically(b.String())
}

func (a *App) renderCounter() string {
	n := remedy.Length(a.state.editor.Value())
	style := styleSubtitle
	switch {
	case n > remedy.Limit:
		style = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	case n > remedy.Limit-20:
		style = lipgloss.NewStyle().Foreground(colorWarning)
	}
	return style.Render(fmt.Sprintf("%d/%d", n, remedy.Limit))
}

func (a *App) renderRemediation(rem *remedy.Remediation) string {
	var b strings.Builder
	width := a.boxWidth()

	warning := lipgloss.NewStyle().
		Foreground(colorError).
		Render(fmt.Sprintf("%d characters over the limit", rem.Length-remedy.Limit))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, warning))
	b.WriteString("\n\n")

	condensed := lipgloss.JoinVertical(lipgloss.Left,
		styleSelected.Render("Condensed"),
		rem.Condensed,
		styleSubtitle.Render(fmt.Sprintf("%d/%d", remedy.Length(rem.Condensed), remedy.Limit)),
	)
	condensedBox := styleBox.Copy().
		Width(width).
		BorderForeground(colorSuccess).
		Render(condensed)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, condensedBox))
	b.WriteString("\n")

	parts := []string{styleSelected.Render(fmt.Sprintf("Thread (%d parts)", len(rem.Thread)))}
	for i, part := range rem.Thread {
		line := truncate(part, width*2)
		if slices.Contains(rem.Overflow, i) {
			line = lipgloss.NewStyle().Foreground(colorWarning).Render(line + "  (over after numbering)")
		}
		parts = append(parts, line)
	}
	threadBox := styleBox.Copy().
		Width(width).
		BorderForeground(colorSuccess).
		Render(strings.Join(parts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, threadBox))
	b.WriteString("\n\n")

	return b.String()
}

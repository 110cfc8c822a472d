package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/quill/internal/remedy"
)

func (a *App) renderDrafts() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(fmt.Sprintf("%d drafts", len(a.state.drafts)))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")

	// What the drafts were made from
	var from []string
	if a.state.topic != "" {
		from = append(from, fmt.Sprintf("> %s", a.state.topic))
	}
	from = append(from, a.state.category.Label())
	if a.state.document != nil {
		from = append(from, a.state.document.Name)
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render(strings.Join(from, "  |  "))))
	b.WriteString("\n\n")

	if len(a.state.drafts) == 0 {
		empty := styleSubtitle.Render("Nothing to show. Press [Esc] and try another topic.")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, empty))
		b.WriteString("\n\n")
	}

	for i, d := range a.state.drafts {
		border := colorMuted
		marker := "  "
		if i == a.state.selected {
			border = colorPrimary
			marker = styleSelected.Render("> ")
		}
		counter := styleSubtitle.Render(fmt.Sprintf("%d/%d", remedy.Length(d), remedy.Limit))
		body := lipgloss.JoinVertical(lipgloss.Left, marker+d, counter)

		box := styleBox.Copy().
			Width(a.boxWidth()).
			BorderForeground(border).
			Render(body)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if a.state.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleNotice.Render(a.state.notice)))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[j/k] Select  [e] Edit  [c] Copy  [o] Share link  [r] Refresh  [?] Help  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

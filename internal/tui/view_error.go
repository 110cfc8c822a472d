package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/quill/internal/document"
)

func (a *App) renderError() string {
	var b strings.Builder

	// Error icon and title
	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Error message
	errMsg := "Unknown error"
	if a.state.err != nil {
		errMsg = a.state.err.Error()
	}

	errBox := styleBox.Copy().
		Width(min(60, a.width-4)).
		BorderForeground(colorError).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	if suggestions := suggest(a.state.err); len(suggestions) > 0 {
		suggBox := styleBox.Copy().
			Width(min(60, a.width-4)).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	// Actions
	status := styleStatusBar.Render("[Enter] OK  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func suggest(err error) []string {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, document.ErrUnsupportedType):
		return []string{"Attach a PDF, TXT or DOCX file"}
	case errors.Is(err, document.ErrTooLarge):
		return []string{"Files must be 5 MB or smaller", "Try pasting the key passage into a .txt file"}
	}

	errLower := strings.ToLower(err.Error())
	if strings.Contains(errLower, "not found") || strings.Contains(errLower, "no such file") {
		return []string{"Check the file path is correct", "Make sure the file exists and is readable"}
	}
	if strings.Contains(errLower, "directory") {
		return []string{"Point at a file inside the directory"}
	}
	return nil
}

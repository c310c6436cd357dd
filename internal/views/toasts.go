package views

import (
	"github.com/charmbracelet/lipgloss"

	"tundeajayi/vendaterm/internal/notify"
	"tundeajayi/vendaterm/internal/utils"
)

// RenderToasts draws the active notifications as a stack of accented
// bars, oldest first. Returns "" when nothing is showing.
func RenderToasts(store *notify.Store, width int) string {
	toasts := store.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	maxWidth := width - 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	var lines []string
	for _, t := range toasts {
		colour := utils.ToastColour(string(t.Kind))

		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(colour)).
			Background(lipgloss.Color(utils.Colours.Surface0)).
			Padding(0, 1).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(colour))

		lines = append(lines, style.Render(utils.TruncateText(t.Text, maxWidth)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/linku/linku/internal/ui/theme"
)

// RadioList renders a single-select option list. Like Checklist, the
// chosen value lives in the caller.
type RadioList struct {
	Labels []string
	Values []string
	Cursor int
}

// View renders the option rows with chosen marking the active value.
func (r RadioList) View(chosen string, focused bool) string {
	var s string
	for i, label := range r.Labels {
		mark := "( )"
		if r.Values[i] == chosen && chosen != "" {
			mark = "(•)"
		}

		cursor := "  "
		if focused && i == r.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("  %s%s %s", cursor, mark, label)

		var style lipgloss.Style
		switch {
		case focused && i == r.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case r.Values[i] == chosen && chosen != "":
			style = lipgloss.NewStyle().Foreground(theme.Success)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}

		s += style.Render(line) + "\n"
	}
	return s
}

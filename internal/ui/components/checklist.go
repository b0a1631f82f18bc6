package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/linku/linku/internal/ui/theme"
)

// Checklist renders a multi-select option list with checkbox glyphs.
// Selection state lives in the caller; the checklist only tracks which
// option the cursor is on. Toggling past the cap is the caller's call
// to refuse, so a full list renders unchecked options dimmed.
type Checklist struct {
	Labels []string
	Values []string
	Cursor int
}

// View renders the option rows. checked reports per-value selection
// state; atCap dims unchecked rows when the selection limit is reached.
func (c Checklist) View(checked func(value string) bool, atCap bool, focused bool) string {
	var s string
	for i, label := range c.Labels {
		isChecked := checked(c.Values[i])

		box := "[ ]"
		if isChecked {
			box = "[x]"
		}

		cursor := "  "
		if focused && i == c.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("  %s%s %s", cursor, box, label)

		var style lipgloss.Style
		switch {
		case focused && i == c.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case isChecked:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case atCap:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}

		s += style.Render(line) + "\n"
	}
	return s
}

package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/linku/linku/internal/ui/theme"
)

// Scale renders a horizontal agreement scale with endpoint labels.
// Values are the option values in order; the chosen value is the
// caller's state.
type Scale struct {
	Values     []string
	LeftLabel  string
	RightLabel string
	Cursor     int
}

// View renders the scale row with endpoint labels underneath.
func (s Scale) View(chosen string, focused bool) string {
	cells := make([]string, 0, len(s.Values))
	for i, v := range s.Values {
		cell := fmt.Sprintf(" %s ", v)
		if v == chosen && chosen != "" {
			cell = fmt.Sprintf("(%s)", v)
		}

		var style lipgloss.Style
		switch {
		case focused && i == s.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case v == chosen && chosen != "":
			style = lipgloss.NewStyle().Foreground(theme.Success)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		cells = append(cells, style.Render(cell))
	}

	row := "    " + strings.Join(cells, "  ")

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	rowWidth := lipgloss.Width(row)
	gap := rowWidth - 4 - len(s.LeftLabel) - len(s.RightLabel)
	if gap < 2 {
		gap = 2
	}
	labels := "    " + dim.Render(s.LeftLabel) + strings.Repeat(" ", gap) + dim.Render(s.RightLabel)

	return row + "\n" + labels + "\n"
}

package matches

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/linku/linku/internal/match"
	"github.com/linku/linku/internal/ui/theme"
)

func (s *MatchesScreen) View(width, height int) string {
	if !s.loaded {
		return theme.Hint.Render("  Loading matches...")
	}
	if s.errMsg != "" && len(s.matches) == 0 {
		return theme.Invalid.Render("  " + s.errMsg)
	}
	if len(s.matches) == 0 {
		return theme.Hint.Render("  No matches stored. Take the quiz first.")
	}

	listWidth := width * 2 / 5
	if listWidth < 30 {
		listWidth = 30
	}
	detailWidth := width - listWidth - 2

	list := s.renderList(listWidth, height-2)
	detail := s.renderDetail(detailWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail)

	var footer string
	switch {
	case s.exporting:
		footer = theme.Hint.Render("  Exporting report...")
	case s.errMsg != "":
		footer = theme.Invalid.Render("  " + s.errMsg)
	case s.status != "":
		footer = lipgloss.NewStyle().Foreground(theme.Success).Render("  " + s.status)
	}
	if footer != "" {
		body += "\n\n" + footer
	}
	return body
}

// renderList draws the ranked program list.
func (s *MatchesScreen) renderList(width, height int) string {
	var lines []string
	for i, m := range s.matches {
		if height > 0 && len(lines) >= height {
			break
		}

		cursor := "  "
		if i == s.cursor {
			cursor = "▸ "
		}
		pct := match.Percent(m.Overall)

		label := fmt.Sprintf("%s%2d. %s — %s", cursor, i+1, m.School, m.Program)
		label = truncateLabel(label, width-len(pct)-2)

		gap := width - lipgloss.Width(label) - len(pct)
		if gap < 1 {
			gap = 1
		}
		line := label + strings.Repeat(" ", gap) + pct

		if i == s.cursor {
			lines = append(lines, theme.Selected.Render(line))
		} else {
			lines = append(lines, theme.Unselected.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// truncateLabel shortens a label to max cells, cutting on rune
// boundaries so a multibyte separator is never split.
func truncateLabel(label string, max int) string {
	if max <= 0 || lipgloss.Width(label) <= max {
		return label
	}
	runes := []rune(label)
	if max-1 < len(runes) {
		runes = runes[:max-1]
	}
	return string(runes) + "…"
}

// renderDetail draws the score breakdown and mentors for the selection.
func (s *MatchesScreen) renderDetail(width int) string {
	m := s.sel.Current()
	if m == nil {
		return ""
	}

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(title.Render(m.School) + "\n")
	b.WriteString(dim.Render(m.Program) + "\n\n")

	rows := []struct {
		label string
		score float64
	}{
		{"Overall", m.Overall},
		{"Academic", m.Academic},
		{"Campus", m.Campus},
		{"Social", m.Social},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n",
			dim.Render(fmt.Sprintf("%-10s", r.label)),
			val.Render(match.Percent(r.score))))
	}

	b.WriteString("\n" + title.Render("Mentors") + "\n")
	switch {
	case s.sel.Loading():
		b.WriteString(theme.Hint.Render("Looking up mentors..."))
	case len(s.sel.Mentors()) == 0:
		b.WriteString(theme.Hint.Render("No mentors yet"))
	default:
		for _, mt := range s.sel.Mentors() {
			b.WriteString(val.Render("• "+mt.Name) + "\n")
			if mt.Details != "" {
				b.WriteString(dim.Render("  "+mt.Details) + "\n")
			}
			if mt.ContactLink != "" {
				b.WriteString(dim.Render("  "+mt.ContactLink) + "\n")
			}
		}
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

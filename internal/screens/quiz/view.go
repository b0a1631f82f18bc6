package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/linku/linku/internal/catalog"
	qz "github.com/linku/linku/internal/quiz"
	"github.com/linku/linku/internal/ui/components"
	"github.com/linku/linku/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if len(s.visible) == 0 {
		return theme.Hint.Render("  No questions to show.")
	}

	q := s.visible[s.pos]

	var b strings.Builder

	b.WriteString(s.renderProgress(width))
	b.WriteString("\n\n")

	section := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + strings.ToUpper(s.sectionTitle(q.ID)))
	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("   question %d of %d", s.pos+1, len(s.visible)))
	b.WriteString(section + counter + "\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("  "+q.Text) + "\n")
	if hint := kindHint(q, s.answers); hint != "" {
		b.WriteString(theme.Hint.Render("  "+hint) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(s.renderQuestionBody(q))

	if s.submitting {
		b.WriteString("\n" + theme.Hint.Render("  Scoring your answers..."))
	} else if s.errMsg != "" {
		b.WriteString("\n" + theme.Invalid.Render("  "+s.errMsg))
	} else if qz.IsComplete(s.cat, s.answers) {
		b.WriteString("\n" + lipgloss.NewStyle().
			Foreground(theme.Success).
			Render("  All questions answered — press S to submit."))
	}

	return b.String()
}

// renderProgress shows answered-vs-visible completion.
func (s *QuizScreen) renderProgress(width int) string {
	answered := 0
	for _, q := range s.visible {
		if s.answers.IsAnswered(q.ID) {
			answered++
		}
	}
	pct := float64(answered) / float64(len(s.visible))

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	bar := components.NewProgressBar("", pct, true, barWidth)
	return "  " + bar.View()
}

func (s *QuizScreen) renderQuestionBody(q catalog.Question) string {
	switch q.Kind {
	case catalog.KindMulti:
		cl := components.Checklist{
			Labels: optionLabels(q),
			Values: optionValues(q),
			Cursor: s.optCursor[q.ID],
		}
		atCap := s.answers.SelectionCount(q.ID) >= q.MaxSelections
		return cl.View(func(v string) bool {
			return s.answers.Selected(q.ID, v)
		}, atCap, true)

	case catalog.KindSingle:
		rl := components.RadioList{
			Labels: optionLabels(q),
			Values: optionValues(q),
			Cursor: s.optCursor[q.ID],
		}
		return rl.View(s.chosen(q.ID), true)

	case catalog.KindScale:
		sc := components.Scale{
			Values:     optionValues(q),
			LeftLabel:  q.LeftLabel,
			RightLabel: q.RightLabel,
			Cursor:     s.optCursor[q.ID],
		}
		return sc.View(s.chosen(q.ID), true)

	case catalog.KindNumber:
		input := s.numInput(q)
		out := "    " + input.View() + "\n"
		if q.Min != nil && q.Max != nil {
			out += theme.Hint.Render(fmt.Sprintf("    %s – %s",
				trimFloat(*q.Min), trimFloat(*q.Max))) + "\n"
		}
		return out
	}
	return ""
}

// chosen returns the recorded single/scale choice for a question.
func (s *QuizScreen) chosen(questionID string) string {
	a, ok := s.answers[questionID]
	if !ok {
		return ""
	}
	return a.Choice
}

// sectionTitle returns the title of the section containing the question.
func (s *QuizScreen) sectionTitle(questionID string) string {
	for _, sec := range s.cat.Sections {
		for _, q := range sec.Questions {
			if q.ID == questionID {
				return sec.Title
			}
		}
	}
	return ""
}

// kindHint is the per-kind instruction line under the question text.
func kindHint(q catalog.Question, answers qz.AnswerSet) string {
	switch q.Kind {
	case catalog.KindMulti:
		return fmt.Sprintf("Pick up to %d (%d selected)",
			q.MaxSelections, answers.SelectionCount(q.ID))
	case catalog.KindScale:
		return "Use ↑↓ to move along the scale, enter to choose"
	case catalog.KindNumber:
		return "Type a number, enter to continue"
	}
	return ""
}

func optionLabels(q catalog.Question) []string {
	out := make([]string, len(q.Options))
	for i, o := range q.Options {
		out[i] = o.Label
	}
	return out
}

func optionValues(q catalog.Question) []string {
	out := make([]string, len(q.Options))
	for i, o := range q.Options {
		out[i] = o.Value
	}
	return out
}

// trimFloat formats a float without trailing zeros.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

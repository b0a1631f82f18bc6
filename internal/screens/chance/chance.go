package chance

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linku/linku/internal/api"
	ch "github.com/linku/linku/internal/chance"
	"github.com/linku/linku/internal/screen"
	"github.com/linku/linku/internal/ui/components"
	"github.com/linku/linku/internal/ui/layout"
	"github.com/linku/linku/internal/ui/theme"
)

const (
	fieldSchool = iota
	fieldProgram
	fieldTop6
	fieldECs
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"School",
	"Program",
	"Top 6 average",
	"Extracurriculars",
}

// ChanceScreen collects an applicant profile and asks the estimator for
// an admission likelihood.
type ChanceScreen struct {
	client *api.Client

	inputs  [fieldCount]components.TextInput
	focus   int
	waiting bool

	prediction string
	errMsg     string
}

var _ screen.Screen = (*ChanceScreen)(nil)
var _ screen.KeyHintProvider = (*ChanceScreen)(nil)

// New creates a ChanceScreen.
func New(client *api.Client) *ChanceScreen {
	s := &ChanceScreen{client: client}
	s.inputs[fieldSchool] = components.NewTextInput("e.g. Waterloo", false, 60)
	s.inputs[fieldProgram] = components.NewTextInput("e.g. Software Engineering", false, 60)
	s.inputs[fieldTop6] = components.NewTextInput("0-100", true, 6)
	s.inputs[fieldECs] = components.NewTextInput("clubs, jobs, volunteering...", false, 200)
	s.setFocus(fieldSchool)
	return s
}

func (s *ChanceScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Init()
}

func (s *ChanceScreen) Title() string {
	return "Chance Me"
}

func (s *ChanceScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Estimate"},
		{Key: "Ctrl+R", Description: "Reset"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChanceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case predictionMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.prediction = msg.Text
		}
		return s, nil

	case tea.KeyMsg:
		if s.waiting {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
		case "enter":
			return s, s.submit()
		case "ctrl+r":
			s.reset()
			return s, s.inputs[s.focus].Init()
		}

		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

// setFocus moves keyboard focus to the given field.
func (s *ChanceScreen) setFocus(i int) tea.Cmd {
	for f := range s.inputs {
		s.inputs[f].Blur()
	}
	s.focus = i
	return s.inputs[i].Focus()
}

// form assembles the current field values.
func (s *ChanceScreen) form() ch.Form {
	return ch.Form{
		School:  s.inputs[fieldSchool].Value(),
		Program: s.inputs[fieldProgram].Value(),
		Top6:    s.inputs[fieldTop6].Value(),
		ECs:     s.inputs[fieldECs].Value(),
	}
}

// submit validates locally, then asks the estimator.
func (s *ChanceScreen) submit() tea.Cmd {
	s.errMsg = ""
	s.prediction = ""

	f := s.form()
	if err := f.Validate(); err != nil {
		s.errMsg = err.Error()
		return nil
	}

	s.waiting = true
	req := f.Request()
	return func() tea.Msg {
		text, err := s.client.ChanceMe(context.Background(), req)
		return predictionMsg{Text: text, Err: err}
	}
}

// reset clears the form and any previous result.
func (s *ChanceScreen) reset() {
	for f := range s.inputs {
		s.inputs[f].SetValue("")
	}
	s.prediction = ""
	s.errMsg = ""
	s.setFocus(fieldSchool)
}

func (s *ChanceScreen) View(width, height int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	focused := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var b strings.Builder
	b.WriteString(theme.Body.Render("  How likely is an offer? Fill in a profile and find out.") + "\n\n")

	for i := 0; i < fieldCount; i++ {
		st := label
		if i == s.focus {
			st = focused
		}
		b.WriteString(st.Render("  "+fieldLabels[i]) + "\n")
		b.WriteString("    " + s.inputs[i].View() + "\n\n")
	}

	switch {
	case s.waiting:
		b.WriteString(theme.Hint.Render("  Estimating..."))
	case s.errMsg != "":
		b.WriteString(theme.Invalid.Render("  " + s.errMsg))
	case s.prediction != "":
		box := theme.Card.Render(s.prediction)
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Success).Render("Estimate") + "\n")
		b.WriteString(box)
	}

	return b.String()
}

package quiz

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/linku/linku/internal/api"
	"github.com/linku/linku/internal/catalog"
	qz "github.com/linku/linku/internal/quiz"
	"github.com/linku/linku/internal/router"
	"github.com/linku/linku/internal/screen"
	"github.com/linku/linku/internal/screens/matches"
	"github.com/linku/linku/internal/store"
	"github.com/linku/linku/internal/ui/components"
	"github.com/linku/linku/internal/ui/layout"
)

// QuizScreen walks the user through the visible questions one at a
// time. Answering a gating question re-derives visibility, so the
// question sequence can grow or shrink mid-quiz.
type QuizScreen struct {
	cat      *catalog.Catalog
	repo     store.SessionRepo
	client   *api.Client
	exporter matches.Exporter

	answers qz.AnswerSet
	visible []catalog.Question
	pos     int // index into visible

	// Per-question interaction state, keyed by question ID so it
	// survives visibility changes.
	optCursor map[string]int
	numInputs map[string]components.TextInput

	submitting bool
	errMsg     string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. Previously stored answers (if any) seed the
// working set so a re-take starts from the old responses.
func New(cat *catalog.Catalog, repo store.SessionRepo, client *api.Client, exporter matches.Exporter) *QuizScreen {
	answers := qz.NewAnswerSet()
	if repo != nil {
		if stored, err := repo.LoadAnswers(context.Background()); err == nil && stored != nil {
			answers = qz.FromPayload(cat, stored)
		}
	}

	s := &QuizScreen{
		cat:       cat,
		repo:      repo,
		client:    client,
		exporter:  exporter,
		answers:   answers,
		optCursor: make(map[string]int),
		numInputs: make(map[string]components.TextInput),
	}
	s.refreshVisible()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Select"},
	}
	if qz.IsComplete(s.cat, s.answers) {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Submit"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		return s.handleSubmitResult(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.submitting {
		return s, nil
	}
	if len(s.visible) == 0 {
		return s, nil
	}

	q := s.visible[s.pos]
	key := msg.String()

	// Navigation and submission work the same for every question kind.
	switch key {
	case "tab":
		s.move(1)
		return s, nil
	case "shift+tab":
		s.move(-1)
		return s, nil
	case "ctrl+s":
		if qz.IsComplete(s.cat, s.answers) {
			return s, s.submit()
		}
		return s, nil
	}

	// A number question owns the remaining keys: they edit the field,
	// except enter which advances.
	if q.Kind == catalog.KindNumber {
		if key == "enter" {
			s.move(1)
			return s, nil
		}
		input := s.numInput(q)
		var cmd tea.Cmd
		input, cmd = input.Update(msg)
		s.numInputs[q.ID] = input
		s.commitNumber(q, input)
		return s, cmd
	}

	switch key {
	case "left", "h":
		s.move(-1)
	case "right", "l":
		s.move(1)
	case "up", "k":
		s.moveOption(q, -1)
	case "down", "j":
		s.moveOption(q, 1)
	case "space", "enter":
		s.choose(q)
	case "s":
		if qz.IsComplete(s.cat, s.answers) {
			return s, s.submit()
		}
	}
	return s, nil
}

// move shifts the question position by delta within the visible set.
func (s *QuizScreen) move(delta int) {
	next := s.pos + delta
	if next < 0 || next >= len(s.visible) {
		return
	}
	s.pos = next
}

// moveOption moves the option cursor of q by delta.
func (s *QuizScreen) moveOption(q catalog.Question, delta int) {
	n := len(q.Options)
	if n == 0 {
		return
	}
	cur := s.optCursor[q.ID] + delta
	if cur < 0 || cur >= n {
		return
	}
	s.optCursor[q.ID] = cur
}

// choose applies the option under the cursor to the answer set and
// re-derives question visibility.
func (s *QuizScreen) choose(q catalog.Question) {
	cur := s.optCursor[q.ID]
	if cur < 0 || cur >= len(q.Options) {
		return
	}
	value := q.Options[cur].Value

	switch q.Kind {
	case catalog.KindMulti:
		s.answers.Toggle(&q, value)
	default:
		s.answers.SetChoice(&q, value)
	}
	s.refreshVisible()
}

// commitNumber syncs the numeric input's current text into the answer
// set. An empty or unparsable field clears the answer.
func (s *QuizScreen) commitNumber(q catalog.Question, input components.TextInput) {
	v, err := input.NumericValue()
	if err != nil {
		s.answers.Remove(q.ID)
	} else {
		s.answers.SetNumber(&q, v)
	}
	s.refreshVisible()
}

// numInput returns (lazily creating) the text input for a number question.
func (s *QuizScreen) numInput(q catalog.Question) components.TextInput {
	if input, ok := s.numInputs[q.ID]; ok {
		return input
	}
	input := components.NewTextInput(q.Placeholder, true, 8)
	if a, ok := s.answers[q.ID]; ok && a.Kind == catalog.KindNumber {
		input.SetValue(trimFloat(a.Number))
	}
	s.numInputs[q.ID] = input
	return input
}

// refreshVisible recomputes the visible question sequence and keeps the
// position on the same question when it survives the change.
func (s *QuizScreen) refreshVisible() {
	var keep string
	if s.pos < len(s.visible) {
		keep = s.visible[s.pos].ID
	}

	s.visible = qz.VisibleQuestions(s.cat, s.answers)

	s.pos = 0
	for i, q := range s.visible {
		if q.ID == keep {
			s.pos = i
			break
		}
	}
}

// submit sends the answers to the scoring service and persists both the
// answers and the returned matches.
func (s *QuizScreen) submit() tea.Cmd {
	s.submitting = true
	s.errMsg = ""
	payload := s.answers.Payload()

	return func() tea.Msg {
		ctx := context.Background()

		result, err := s.client.SubmitQuiz(ctx, payload)
		if err != nil {
			return submitResultMsg{Err: err}
		}
		if err := s.repo.SaveAnswers(ctx, payload); err != nil {
			return submitResultMsg{Err: fmt.Errorf("save answers: %w", err)}
		}
		if err := s.repo.SaveMatches(ctx, result); err != nil {
			return submitResultMsg{Err: fmt.Errorf("save matches: %w", err)}
		}
		return submitResultMsg{Matches: result}
	}
}

func (s *QuizScreen) handleSubmitResult(msg submitResultMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	// Swap in the results screen so Esc returns to home, not to the
	// finished quiz.
	next := matches.New(s.repo, s.client, s.exporter)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/linku/linku/internal/catalog"
	qz "github.com/linku/linku/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func spaceKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: ' '}
}

func newTestQuiz(t *testing.T) *QuizScreen {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return New(cat, nil, nil, nil)
}

// jumpTo advances the question position to the question with the given id.
func jumpTo(t *testing.T, s *QuizScreen, id string) {
	t.Helper()
	for i, q := range s.visible {
		if q.ID == id {
			s.pos = i
			return
		}
	}
	t.Fatalf("question %s not visible", id)
}

func TestChooseTogglesMultiOption(t *testing.T) {
	s := newTestQuiz(t)
	jumpTo(t, s, "AA")

	s.Update(spaceKey())
	if !s.answers.Selected("AA", "engineering") {
		t.Error("first option should be selected after space")
	}

	s.Update(spaceKey())
	if s.answers.Selected("AA", "engineering") {
		t.Error("space again should deselect")
	}
}

func TestMultiSelectionCapHolds(t *testing.T) {
	s := newTestQuiz(t)
	jumpTo(t, s, "AA")

	// Walk down the option list selecting everything.
	for range s.visible[s.pos].Options {
		s.Update(spaceKey())
		s.Update(specialKey(tea.KeyDown))
	}

	if got := s.answers.SelectionCount("AA"); got != 3 {
		t.Errorf("selections = %d, want the cap of 3", got)
	}
}

func TestDependentQuestionAppearsOnGatingAnswer(t *testing.T) {
	s := newTestQuiz(t)

	before := len(s.visible)
	for _, q := range s.visible {
		if q.ID == "ALT" {
			t.Fatal("ALT should be hidden before ENG is answered yes")
		}
	}

	jumpTo(t, s, "ENG")
	// Cursor starts on "yes".
	s.Update(specialKey(tea.KeyEnter))

	if len(s.visible) != before+1 {
		t.Errorf("visible count = %d, want %d", len(s.visible), before+1)
	}
	found := false
	for _, q := range s.visible {
		if q.ID == "ALT" {
			found = true
		}
	}
	if !found {
		t.Error("ALT should be visible after ENG=yes")
	}
}

func TestGatingFlipHidesDependentButKeepsAnswer(t *testing.T) {
	s := newTestQuiz(t)

	jumpTo(t, s, "ENG")
	s.Update(specialKey(tea.KeyEnter)) // yes

	jumpTo(t, s, "ALT")
	s.Update(spaceKey()) // select an alt subject

	jumpTo(t, s, "ENG")
	s.Update(specialKey(tea.KeyDown))  // move to "no"
	s.Update(specialKey(tea.KeyEnter)) // choose it

	for _, q := range s.visible {
		if q.ID == "ALT" {
			t.Fatal("ALT should hide when ENG=no")
		}
	}
	if s.answers.SelectionCount("ALT") != 1 {
		t.Error("hidden answer should be retained, not erased")
	}
}

func TestNumberInputCommitsAnswer(t *testing.T) {
	s := newTestQuiz(t)
	jumpTo(t, s, "AVG")

	s.Update(keyPress('8'))
	s.Update(keyPress('7'))

	a, ok := s.answers["AVG"]
	if !ok || a.Number != 87 {
		t.Errorf("answer = %+v, want number 87", a)
	}
}

func TestSubmitRefusedWhileIncomplete(t *testing.T) {
	s := newTestQuiz(t)
	jumpTo(t, s, "AA")

	if qz.IsComplete(s.cat, s.answers) {
		t.Fatal("fresh quiz should not be complete")
	}

	_, cmd := s.Update(keyPress('s'))
	if cmd != nil {
		t.Error("submit should be refused while questions remain unanswered")
	}
	if s.submitting {
		t.Error("submitting flag should stay false")
	}
}

func TestPositionSurvivesVisibilityChange(t *testing.T) {
	s := newTestQuiz(t)

	jumpTo(t, s, "LS")
	s.Update(specialKey(tea.KeyEnter)) // answer the scale question

	if got := s.visible[s.pos].ID; got != "LS" {
		t.Errorf("position moved to %s, want to stay on LS", got)
	}
}

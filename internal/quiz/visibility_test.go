package quiz

import (
	"reflect"
	"testing"

	"github.com/linku/linku/internal/catalog"
)

// testCatalog builds A (single), B (single, visible iff A == "x") and
// C (number).
func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Title: "t",
		Sections: []catalog.Section{{
			ID:    "s",
			Title: "S",
			Questions: []catalog.Question{
				{ID: "A", Text: "a?", Kind: catalog.KindSingle, Options: []catalog.Option{
					{ID: "a1", Label: "x", Value: "x"},
					{ID: "a2", Label: "y", Value: "y"},
				}},
				{ID: "B", Text: "b?", Kind: catalog.KindSingle,
					Dependency: &catalog.Dependency{Question: "A", Value: "x"},
					Options: []catalog.Option{
						{ID: "b1", Label: "p", Value: "p"},
						{ID: "b2", Label: "q", Value: "q"},
					}},
				{ID: "C", Text: "c?", Kind: catalog.KindNumber},
			},
		}},
	}
}

func ids(qs []catalog.Question) []string {
	var out []string
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}

func TestDependentQuestionHiddenUntilSatisfied(t *testing.T) {
	c := testCatalog()
	as := NewAnswerSet()

	if got := ids(VisibleQuestions(c, as)); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Fatalf("visible = %v, want [A C]", got)
	}

	as.SetChoice(c.ByID("A"), "x")
	if got := ids(VisibleQuestions(c, as)); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("visible after A=x: %v, want [A B C]", got)
	}

	as.SetChoice(c.ByID("A"), "y")
	if got := ids(VisibleQuestions(c, as)); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Fatalf("visible after A=y: %v, want [A C]", got)
	}
}

func TestHidingRetainsRecordedAnswer(t *testing.T) {
	c := testCatalog()
	as := NewAnswerSet()

	as.SetChoice(c.ByID("A"), "x")
	as.SetChoice(c.ByID("B"), "p")

	// Flip the dependency away and back: B's answer survives.
	as.SetChoice(c.ByID("A"), "y")
	if _, ok := as["B"]; !ok {
		t.Fatal("hiding B must not erase its answer")
	}
	as.SetChoice(c.ByID("A"), "x")
	if got := as["B"].Choice; got != "p" {
		t.Errorf("restored B answer = %q, want p", got)
	}
}

func TestVisibleQuestionsIsPure(t *testing.T) {
	c := testCatalog()
	as := NewAnswerSet()
	as.SetChoice(c.ByID("A"), "x")

	first := ids(VisibleQuestions(c, as))
	second := ids(VisibleQuestions(c, as))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated derivation differs: %v vs %v", first, second)
	}
}

func TestDependencyOnMultiAnswerMatchesContainment(t *testing.T) {
	c := &catalog.Catalog{
		Title: "t",
		Sections: []catalog.Section{{
			ID: "s", Title: "S",
			Questions: []catalog.Question{
				{ID: "M", Text: "m?", Kind: catalog.KindMulti, MaxSelections: 2, Options: []catalog.Option{
					{ID: "m1", Label: "a", Value: "a"},
					{ID: "m2", Label: "b", Value: "b"},
				}},
				{ID: "D", Text: "d?", Kind: catalog.KindSingle,
					Dependency: &catalog.Dependency{Question: "M", Value: "a"},
					Options: []catalog.Option{
						{ID: "d1", Label: "1", Value: "1"},
						{ID: "d2", Label: "2", Value: "2"},
					}},
			},
		}},
	}
	as := NewAnswerSet()

	if Visible(c.ByID("D"), as) {
		t.Fatal("D should be hidden with no answer for M")
	}
	as.Toggle(c.ByID("M"), "b")
	if Visible(c.ByID("D"), as) {
		t.Fatal("D should stay hidden while a is unselected")
	}
	as.Toggle(c.ByID("M"), "a")
	if !Visible(c.ByID("D"), as) {
		t.Fatal("D should be visible once a is selected")
	}
}

func TestIsCompleteIgnoresHiddenAnswers(t *testing.T) {
	c := testCatalog()
	as := NewAnswerSet()

	as.SetChoice(c.ByID("A"), "x")
	as.SetNumber(c.ByID("C"), 72)
	if IsComplete(c, as) {
		t.Fatal("B is visible and unanswered; quiz must not be complete")
	}

	as.SetChoice(c.ByID("B"), "p")
	if !IsComplete(c, as) {
		t.Fatal("all visible questions answered; quiz should be complete")
	}

	// Hide B: its (still recorded) answer must not matter either way.
	as.SetChoice(c.ByID("A"), "y")
	if !IsComplete(c, as) {
		t.Fatal("with B hidden, A and C answered should be complete")
	}
}

func TestEndToEndCompletionScenario(t *testing.T) {
	c := &catalog.Catalog{
		Title: "t",
		Sections: []catalog.Section{{
			ID: "s", Title: "S",
			Questions: []catalog.Question{
				{ID: "1", Text: "one?", Kind: catalog.KindMulti, MaxSelections: 2, Options: []catalog.Option{
					{ID: "o1", Label: "a", Value: "a"},
					{ID: "o2", Label: "b", Value: "b"},
					{ID: "o3", Label: "c", Value: "c"},
				}},
				{ID: "2", Text: "two?", Kind: catalog.KindSingle, Options: []catalog.Option{
					{ID: "o4", Label: "x", Value: "x"},
					{ID: "o5", Label: "y", Value: "y"},
				}},
				{ID: "3", Text: "three?", Kind: catalog.KindNumber},
			},
		}},
	}

	as := NewAnswerSet()
	as.Toggle(c.ByID("1"), "a")
	as.Toggle(c.ByID("1"), "b")
	as.SetChoice(c.ByID("2"), "x")
	as.SetNumber(c.ByID("3"), 72)

	if !IsComplete(c, as) {
		t.Fatal("quiz should be complete")
	}
	payload := as.Payload()
	if !reflect.DeepEqual(payload["1"], []string{"a", "b"}) {
		t.Errorf("payload[1] = %v", payload["1"])
	}
	if payload["2"] != "x" || payload["3"] != float64(72) {
		t.Errorf("payload = %v", payload)
	}
}

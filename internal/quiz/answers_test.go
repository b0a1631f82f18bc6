package quiz

import (
	"math"
	"reflect"
	"testing"

	"github.com/linku/linku/internal/catalog"
)

func multiQuestion(id string, max int, values ...string) *catalog.Question {
	q := &catalog.Question{ID: id, Text: id + "?", Kind: catalog.KindMulti, MaxSelections: max}
	for _, v := range values {
		q.Options = append(q.Options, catalog.Option{ID: id + v, Label: v, Value: v})
	}
	return q
}

func singleQuestion(id string, values ...string) *catalog.Question {
	q := &catalog.Question{ID: id, Text: id + "?", Kind: catalog.KindSingle}
	for _, v := range values {
		q.Options = append(q.Options, catalog.Option{ID: id + v, Label: v, Value: v})
	}
	return q
}

func numberQuestion(id string) *catalog.Question {
	return &catalog.Question{ID: id, Text: id + "?", Kind: catalog.KindNumber}
}

func TestToggleAddsAndRemoves(t *testing.T) {
	q := multiQuestion("M", 3, "a", "b", "c")
	as := NewAnswerSet()

	as.Toggle(q, "a")
	as.Toggle(q, "b")
	if got := as["M"].Selections; !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("selections = %v, want [a b]", got)
	}

	as.Toggle(q, "a")
	if got := as["M"].Selections; !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("after removal selections = %v, want [b]", got)
	}
}

func TestToggleCapIsSilent(t *testing.T) {
	q := multiQuestion("M", 2, "a", "b", "c", "d")
	as := NewAnswerSet()

	as.Toggle(q, "a")
	as.Toggle(q, "b")
	as.Toggle(q, "c") // over the cap, silently dropped
	if got := as.SelectionCount("M"); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}
	if as.Selected("M", "c") {
		t.Error("c should not have been added past the cap")
	}
}

func TestToggleCapHoldsOverArbitrarySequences(t *testing.T) {
	const k = 2
	q := multiQuestion("M", k, "a", "b", "c", "d", "e")
	as := NewAnswerSet()

	seq := []string{"a", "b", "c", "b", "d", "e", "a", "a", "c", "d", "b", "e"}
	for _, v := range seq {
		as.Toggle(q, v)
		if got := as.SelectionCount("M"); got > k {
			t.Fatalf("selection count %d exceeded cap %d", got, k)
		}
	}
}

func TestToggleRemovalAlwaysAllowedAtCap(t *testing.T) {
	q := multiQuestion("M", 2, "a", "b", "c")
	as := NewAnswerSet()
	as.Toggle(q, "a")
	as.Toggle(q, "b")

	as.Toggle(q, "b")
	if as.Selected("M", "b") {
		t.Error("toggling a selected value at cap must remove it")
	}
}

func TestSetChoiceReplaces(t *testing.T) {
	q := singleQuestion("S", "x", "y")
	as := NewAnswerSet()

	as.SetChoice(q, "x")
	as.SetChoice(q, "y")
	if got := as["S"].Choice; got != "y" {
		t.Errorf("choice = %q, want y", got)
	}
}

func TestSetNumberDoesNotClamp(t *testing.T) {
	q := numberQuestion("N")
	as := NewAnswerSet()

	as.SetNumber(q, 250)
	if got := as["N"].Number; got != 250 {
		t.Errorf("number = %v, want 250 (store must not clamp)", got)
	}
}

func TestIsAnswered(t *testing.T) {
	m := multiQuestion("M", 2, "a")
	s := singleQuestion("S", "x", "y")
	n := numberQuestion("N")
	as := NewAnswerSet()

	if as.IsAnswered("M") || as.IsAnswered("S") || as.IsAnswered("N") {
		t.Fatal("empty set should have no answered questions")
	}

	as.Toggle(m, "a")
	as.SetChoice(s, "x")
	as.SetNumber(n, 72)
	for _, id := range []string{"M", "S", "N"} {
		if !as.IsAnswered(id) {
			t.Errorf("IsAnswered(%s) = false, want true", id)
		}
	}

	// Empty multi selection after a full toggle cycle is unanswered.
	as.Toggle(m, "a")
	if as.IsAnswered("M") {
		t.Error("empty selection should not count as answered")
	}

	as.SetNumber(n, math.NaN())
	if as.IsAnswered("N") {
		t.Error("NaN should not count as answered")
	}
}

func TestPayloadIncludesHiddenLeftovers(t *testing.T) {
	m := multiQuestion("M", 2, "a", "b")
	s := singleQuestion("S", "x", "y")
	n := numberQuestion("N")
	as := NewAnswerSet()
	as.Toggle(m, "a")
	as.Toggle(m, "b")
	as.SetChoice(s, "x")
	as.SetNumber(n, 72)

	got := as.Payload()
	want := map[string]any{
		"M": []string{"a", "b"},
		"S": "x",
		"N": float64(72),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("payload = %#v, want %#v", got, want)
	}
}

package match

import "testing"

func TestSelectClearsPreviousMentorsImmediately(t *testing.T) {
	var s Selection
	p1 := &Match{School: "Waterloo", Program: "SE"}
	p2 := &Match{School: "Toronto", Program: "CS"}

	gen1 := s.Select(p1)
	s.Apply(gen1, []Mentor{{Name: "Ada"}})
	if len(s.Mentors()) != 1 {
		t.Fatal("mentors should be applied for current selection")
	}

	s.Select(p2)
	if len(s.Mentors()) != 0 {
		t.Error("switching selection must clear mentors before the new fetch resolves")
	}
	if !s.Loading() {
		t.Error("new selection should be loading mentors")
	}
}

func TestStaleResolutionDiscarded(t *testing.T) {
	var s Selection
	p1 := &Match{School: "Waterloo", Program: "SE"}
	p2 := &Match{School: "Toronto", Program: "CS"}

	gen1 := s.Select(p1)
	gen2 := s.Select(p2) // user switched before p1's fetch resolved

	if applied := s.Apply(gen1, []Mentor{{Name: "P1 mentor"}}); applied {
		t.Fatal("stale resolution must not be applied")
	}
	if len(s.Mentors()) != 0 {
		t.Fatalf("mentors = %v, want none until p2 resolves", s.Mentors())
	}

	if applied := s.Apply(gen2, []Mentor{{Name: "P2 mentor"}}); !applied {
		t.Fatal("current resolution should be applied")
	}
	if s.Mentors()[0].Name != "P2 mentor" {
		t.Errorf("mentor = %q, want P2 mentor", s.Mentors()[0].Name)
	}
}

func TestOutOfOrderResolution(t *testing.T) {
	var s Selection
	gen1 := s.Select(&Match{School: "A", Program: "p"})
	gen2 := s.Select(&Match{School: "B", Program: "q"})

	// p2's fetch resolves first, then p1's arrives late.
	s.Apply(gen2, []Mentor{{Name: "B mentor"}})
	s.Apply(gen1, []Mentor{{Name: "A mentor"}})

	if got := s.Mentors()[0].Name; got != "B mentor" {
		t.Errorf("mentors reflect %q, want the current selection's B mentor", got)
	}
}

func TestClearInvalidatesInFlightFetches(t *testing.T) {
	var s Selection
	gen := s.Select(&Match{School: "A", Program: "p"})
	s.Clear()

	if s.Apply(gen, []Mentor{{Name: "late"}}) {
		t.Error("resolution after Clear must be discarded")
	}
	if s.Current() != nil {
		t.Error("cleared selection should have no current match")
	}
}

func TestApplyEmptyListStopsLoading(t *testing.T) {
	var s Selection
	gen := s.Select(&Match{School: "A", Program: "p"})

	if !s.Apply(gen, nil) {
		t.Fatal("empty mentor list is a valid resolution")
	}
	if s.Loading() {
		t.Error("loading should end even when no mentors exist")
	}
}

package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/linku/linku/ent/sessionrecord"
	"github.com/linku/linku/internal/match"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestAnswersRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	got, err := repo.LoadAnswers(ctx)
	if err != nil {
		t.Fatalf("LoadAnswers on empty store: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil answers on empty store, got %v", got)
	}

	answers := map[string]any{
		"AA":  []any{"engineering", "math"},
		"LS":  "3",
		"AVG": 87.5,
	}
	if err := repo.SaveAnswers(ctx, answers); err != nil {
		t.Fatalf("SaveAnswers: %v", err)
	}

	got, err = repo.LoadAnswers(ctx)
	if err != nil {
		t.Fatalf("LoadAnswers: %v", err)
	}
	if got["LS"] != "3" {
		t.Errorf("LS = %v, want 3", got["LS"])
	}
	if got["AVG"] != 87.5 {
		t.Errorf("AVG = %v, want 87.5", got["AVG"])
	}
}

func TestSaveIsWholeValueReplacement(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.SaveAnswers(ctx, map[string]any{"A": "old", "B": "kept?"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveAnswers(ctx, map[string]any{"A": "new"}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.LoadAnswers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got["B"]; ok {
		t.Error("writes must replace the whole value, not merge")
	}
	if got["A"] != "new" {
		t.Errorf("A = %v, want new", got["A"])
	}

	// Still exactly one row per key.
	n, err := s.Client().SessionRecord.Query().
		Where(sessionrecord.Key(KeyAnswers)).
		Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("answer rows = %d, want 1", n)
	}
}

func TestMatchesRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	matches := []match.Match{
		{School: "Waterloo", Program: "SE", Overall: 0.9, Academic: 0.95, Campus: 0.8, Social: 0.7},
		{School: "Toronto", Program: "CS", Overall: 0.8, Academic: 0.85, Campus: 0.75, Social: 0.7},
	}
	if err := repo.SaveMatches(ctx, matches); err != nil {
		t.Fatalf("SaveMatches: %v", err)
	}

	got, err := repo.LoadMatches(ctx)
	if err != nil {
		t.Fatalf("LoadMatches: %v", err)
	}
	if len(got) != 2 || got[0].School != "Waterloo" || got[1].School != "Toronto" {
		t.Errorf("matches = %+v", got)
	}
}

func TestLoadMatchesNormalizesLegacyWrappedShape(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// Simulate a record persisted by an older client that stored the
	// wrapped object form.
	legacy := json.RawMessage(`{"matches":[{"school":"A","program":"p","overall":0.5,"academic":0.5,"campus":0.5,"social":0.5}]}`)
	_, err := s.Client().SessionRecord.Create().
		SetKey(KeyMatches).
		SetData(legacy).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	got, err := repo.LoadMatches(ctx)
	if err != nil {
		t.Fatalf("LoadMatches: %v", err)
	}
	if len(got) != 1 || got[0].School != "A" {
		t.Errorf("matches = %+v", got)
	}
}

func TestLoadWeightsDefaults(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	w, err := repo.LoadWeights(ctx)
	if err != nil {
		t.Fatalf("LoadWeights: %v", err)
	}
	if w != DefaultWeights() {
		t.Errorf("weights = %+v, want defaults %+v", w, DefaultWeights())
	}
}

func TestLoadWeightsDefaultsAbsentFields(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	partial := json.RawMessage(`{"academic": 0.9}`)
	_, err := s.Client().SessionRecord.Create().
		SetKey(KeyPreferences).
		SetData(partial).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	w, err := repo.LoadWeights(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if w.Academic != 0.9 {
		t.Errorf("Academic = %v, want stored 0.9", w.Academic)
	}
	if w.Campus != 0.2 || w.Social != 0.2 {
		t.Errorf("absent fields should default: %+v", w)
	}
}

func TestClearRemovesEverything(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.SaveAnswers(ctx, map[string]any{"A": "x"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveMatches(ctx, []match.Match{{School: "W"}}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	answers, err := repo.LoadAnswers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	matches, err := repo.LoadMatches(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if answers != nil || matches != nil {
		t.Error("cleared store should be empty")
	}
}

package matches

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"github.com/linku/linku/internal/match"
)

// stubExporter counts export calls.
type stubExporter struct {
	calls atomic.Int32
	path  string
	err   error
}

func (e *stubExporter) Export(context.Context) (string, error) {
	e.calls.Add(1)
	return e.path, e.err
}

func (e *stubExporter) InFlight() bool { return false }

func testMatches() []match.Match {
	return []match.Match{
		{School: "Waterloo", Program: "Software Engineering", Overall: 0.92},
		{School: "Toronto", Program: "Computer Science", Overall: 0.81},
		{School: "McGill", Program: "Physics", Overall: 0.66},
	}
}

func loaded(s *MatchesScreen) {
	// Install the result set without exercising the store.
	s.Update(matchesLoadedMsg{Matches: testMatches()})
}

func TestLoadSelectsFirstMatch(t *testing.T) {
	s := New(nil, nil, nil)
	loaded(s)

	cur := s.sel.Current()
	if cur == nil || cur.School != "Waterloo" {
		t.Fatalf("current = %+v, want first match selected", cur)
	}
	if !s.sel.Loading() {
		t.Error("mentor fetch should be pending for the initial selection")
	}
}

func TestStaleMentorResolutionDiscarded(t *testing.T) {
	s := New(nil, nil, nil)
	loaded(s)

	staleGen := 1 // generation of the initial selection
	s.cursor = 1
	s.selectCurrent() // bumps the generation

	s.Update(mentorsMsg{Gen: staleGen, Mentors: []match.Mentor{{Name: "Old"}}})
	if len(s.sel.Mentors()) != 0 {
		t.Error("stale mentor resolution must not surface")
	}

	s.Update(mentorsMsg{Gen: staleGen + 1, Mentors: []match.Mentor{{Name: "New"}}})
	if got := s.sel.Mentors(); len(got) != 1 || got[0].Name != "New" {
		t.Errorf("mentors = %+v, want the current generation's list", got)
	}
}

func TestEmptyMentorListRendersPlaceholder(t *testing.T) {
	s := New(nil, nil, nil)
	loaded(s)

	s.Update(mentorsMsg{Gen: 1, Mentors: nil})

	view := s.View(120, 40)
	if !strings.Contains(view, "No mentors yet") {
		t.Error("empty mentor list should render the placeholder line")
	}
}

func TestExportKeyRunsExporterOnce(t *testing.T) {
	exp := &stubExporter{path: "/tmp/LinkU_matches_20260829_150405.pdf"}
	s := New(nil, nil, exp)
	loaded(s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if cmd == nil {
		t.Fatal("d should trigger an export command")
	}

	// While the first export is pending, a second press is ignored.
	if _, again := s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"}); again != nil {
		t.Error("second export trigger should be ignored while pending")
	}

	msg := cmd()
	done, ok := msg.(exportDoneMsg)
	if !ok {
		t.Fatalf("msg = %T, want exportDoneMsg", msg)
	}
	if done.Err != nil || done.Path != exp.path {
		t.Errorf("export result = %+v", done)
	}
	if got := exp.calls.Load(); got != 1 {
		t.Errorf("export calls = %d, want 1", got)
	}

	s.Update(done)
	if s.exporting {
		t.Error("exporting flag should clear on completion")
	}
	if !strings.Contains(s.status, exp.path) {
		t.Errorf("status = %q, want saved path", s.status)
	}
}

func TestStatusReflectsExportProgress(t *testing.T) {
	exp := &stubExporter{path: "/tmp/report.pdf"}
	s := New(nil, nil, exp)
	loaded(s)

	if s.Status() != "" {
		t.Errorf("idle status = %q, want empty", s.Status())
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if s.Status() == "" {
		t.Error("status should show while an export is pending")
	}

	s.Update(cmd())
	if s.Status() != "" {
		t.Errorf("status = %q, want empty after completion", s.Status())
	}
}

func TestListTruncationKeepsValidUTF8(t *testing.T) {
	s := New(nil, nil, nil)
	s.Update(matchesLoadedMsg{Matches: []match.Match{
		{School: "École Polytechnique de Montréal", Program: "Génie Logiciel", Overall: 0.75},
	}})

	// Force truncation across a range of widths so the cut lands on
	// every byte offset, including inside the multibyte separator.
	for max := 1; max < 50; max++ {
		label := truncateLabel("▸  1. École — Génie Logiciel", max)
		if !utf8.ValidString(label) {
			t.Fatalf("truncation at %d produced invalid UTF-8: %q", max, label)
		}
	}

	view := s.View(40, 20)
	if !utf8.ValidString(view) {
		t.Error("narrow view should never contain invalid UTF-8")
	}
}

func TestExportFailureSurfacesError(t *testing.T) {
	exp := &stubExporter{err: errors.New("report service down")}
	s := New(nil, nil, exp)
	loaded(s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	s.Update(cmd())

	if s.errMsg == "" {
		t.Error("export failure should surface in the error line")
	}
	if s.exporting {
		t.Error("exporting flag should clear on failure")
	}
}

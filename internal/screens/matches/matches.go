package matches

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/linku/linku/internal/api"
	"github.com/linku/linku/internal/match"
	"github.com/linku/linku/internal/screen"
	"github.com/linku/linku/internal/store"
	"github.com/linku/linku/internal/ui/layout"
)

// Exporter is the slice of the report exporter the screen needs.
type Exporter interface {
	Export(ctx context.Context) (string, error)
	InFlight() bool
}

// MatchesScreen shows the stored result set as a navigable list with a
// detail pane for the selected program, including its mentors.
type MatchesScreen struct {
	repo     store.SessionRepo
	client   *api.Client
	exporter Exporter

	matches []match.Match
	cursor  int
	sel     match.Selection

	loaded    bool
	exporting bool
	status    string
	errMsg    string
}

var _ screen.Screen = (*MatchesScreen)(nil)
var _ screen.KeyHintProvider = (*MatchesScreen)(nil)
var _ screen.StatusProvider = (*MatchesScreen)(nil)

// New creates a MatchesScreen. The result set is loaded from the store
// on Init, so the screen works both right after a quiz submission and
// on a later browse.
func New(repo store.SessionRepo, client *api.Client, exporter Exporter) *MatchesScreen {
	return &MatchesScreen{
		repo:     repo,
		client:   client,
		exporter: exporter,
	}
}

func (s *MatchesScreen) Init() tea.Cmd {
	return s.load()
}

func (s *MatchesScreen) Title() string {
	return "Matches"
}

// Status surfaces export progress in the header's right slot.
func (s *MatchesScreen) Status() string {
	if s.exporting || (s.exporter != nil && s.exporter.InFlight()) {
		return "exporting report"
	}
	return ""
}

func (s *MatchesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Program"},
		{Key: "D", Description: "Export report"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *MatchesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case matchesLoadedMsg:
		return s.handleLoaded(msg)
	case mentorsMsg:
		s.sel.Apply(msg.Gen, msg.Mentors)
		return s, nil
	case exportDoneMsg:
		s.exporting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.status = "Report saved to " + msg.Path
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *MatchesScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		return s, s.moveCursor(-1)
	case "down", "j":
		return s, s.moveCursor(1)
	case "d":
		return s, s.export()
	}
	return s, nil
}

// moveCursor selects the match at the new cursor position and kicks off
// its mentor fetch.
func (s *MatchesScreen) moveCursor(delta int) tea.Cmd {
	next := s.cursor + delta
	if next < 0 || next >= len(s.matches) {
		return nil
	}
	s.cursor = next
	return s.selectCurrent()
}

// selectCurrent points the selection at the cursor row. The returned
// command resolves the mentor lookup tagged with the selection
// generation, so a slow response for a program the user has already
// moved past is dropped on arrival.
func (s *MatchesScreen) selectCurrent() tea.Cmd {
	if len(s.matches) == 0 {
		s.sel.Clear()
		return nil
	}

	m := &s.matches[s.cursor]
	gen := s.sel.Select(m)
	school, program := m.School, m.Program

	return func() tea.Msg {
		mentors, _ := s.client.ProgramMentors(context.Background(), school, program)
		return mentorsMsg{Gen: gen, Mentors: mentors}
	}
}

func (s *MatchesScreen) load() tea.Cmd {
	return func() tea.Msg {
		stored, err := s.repo.LoadMatches(context.Background())
		return matchesLoadedMsg{Matches: stored, Err: err}
	}
}

func (s *MatchesScreen) handleLoaded(msg matchesLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loaded = true
	if msg.Err != nil {
		s.errMsg = fmt.Sprintf("load matches: %v", msg.Err)
		return s, nil
	}
	s.matches = msg.Matches
	s.cursor = 0
	return s, s.selectCurrent()
}

// export runs the report exporter off the UI goroutine. The exporter
// itself refuses overlapping runs; the exporting flag only drives the
// spinner line and key hint state.
func (s *MatchesScreen) export() tea.Cmd {
	if s.exporting || s.exporter == nil {
		return nil
	}
	s.exporting = true
	s.status = ""
	s.errMsg = ""

	return func() tea.Msg {
		path, err := s.exporter.Export(context.Background())
		return exportDoneMsg{Path: path, Err: err}
	}
}

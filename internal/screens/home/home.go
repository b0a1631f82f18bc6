package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/linku/linku/internal/api"
	"github.com/linku/linku/internal/catalog"
	"github.com/linku/linku/internal/router"
	"github.com/linku/linku/internal/screen"
	"github.com/linku/linku/internal/screens/chance"
	"github.com/linku/linku/internal/screens/matches"
	quizscreen "github.com/linku/linku/internal/screens/quiz"
	"github.com/linku/linku/internal/store"
	"github.com/linku/linku/internal/ui/components"
	"github.com/linku/linku/internal/ui/theme"
)

// HomeScreen is the entry menu of the application.
type HomeScreen struct {
	menu      components.Menu
	exporter  matches.Exporter
	exporting bool
	status    string
	errMsg    string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. Browsing is offered only when a stored
// result set exists; until then the entry is listed but disabled.
func New(cat *catalog.Catalog, repo store.SessionRepo, client *api.Client, exporter matches.Exporter) *HomeScreen {
	var hasMatches bool
	if repo != nil {
		stored, err := repo.LoadMatches(context.Background())
		hasMatches = err == nil && len(stored) > 0
	}

	h := &HomeScreen{exporter: exporter}

	items := []components.MenuItem{
		{Label: "Take the quiz", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizscreen.New(cat, repo, client, exporter),
				}
			}
		}},
		{
			Label:    "Browse matches",
			Disabled: !hasMatches,
			Hint:     "take the quiz first",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: matches.New(repo, client, exporter),
					}
				}
			},
		},
		{Label: "Chance me", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chance.New(client)}
			}
		}},
		{
			Label:    "Export report",
			Disabled: !hasMatches,
			Hint:     "take the quiz first",
			Action: func() tea.Cmd {
				return h.export()
			},
		},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		h.exporting = false
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
		} else {
			h.status = "Report saved to " + msg.Path
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// export runs the report exporter in the background.
func (h *HomeScreen) export() tea.Cmd {
	if h.exporting || h.exporter == nil {
		return nil
	}
	h.exporting = true
	h.status = ""
	h.errMsg = ""

	return func() tea.Msg {
		path, err := h.exporter.Export(context.Background())
		return exportDoneMsg{Path: path, Err: err}
	}
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("LinkU")
	subtitle := theme.Subtitle.Width(width).Render("Find the university programs that fit you")
	sections = append(sections, title+"\n"+subtitle)

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	switch {
	case h.exporting:
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render("Exporting report..."))
	case h.errMsg != "":
		sections = append(sections, theme.Invalid.Width(width).Align(lipgloss.Center).Render(h.errMsg))
	case h.status != "":
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Success).
			Width(width).
			Align(lipgloss.Center).
			Render(h.status))
	}

	content := strings.Join(sections, "\n\n")

	// Vertically center within the content area.
	pad := (height - lipgloss.Height(content)) / 3
	if pad > 0 {
		content = strings.Repeat("\n", pad) + content
	}
	return content
}

func (h *HomeScreen) Title() string {
	return "Home"
}

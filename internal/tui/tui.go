// Package tui hosts the Bubble Tea program for interactive practice.
package tui

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathprep/pathprep/internal/router"
	"github.com/pathprep/pathprep/internal/screen"
	"github.com/pathprep/pathprep/internal/screens/practice"
	"github.com/pathprep/pathprep/internal/session"
	"github.com/pathprep/pathprep/internal/skillgraph"
	"github.com/pathprep/pathprep/internal/ui/layout"
)

// Model is the root Bubble Tea model: router plus frame chrome.
type Model struct {
	router      *router.Router
	learnerID   string
	progressPct int
	width       int
	height      int
}

// NewModel creates the root model with the given initial screen.
func NewModel(initial screen.Screen, learnerID string, progressPct int) Model {
	return Model{
		router:      router.New(initial),
		learnerID:   learnerID,
		progressPct: progressPct,
	}
}

func (m Model) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.learnerID, m.progressPct, m.width)

	hints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if h := provider.KeyHints(); h != nil {
			hints = h
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// RunPractice starts an interactive practice session.
func RunPractice(recorder practice.Recorder, graph *skillgraph.Graph, sess *session.PracticeSession, progressPct int) error {
	scr := practice.New(recorder, graph, sess)
	p := tea.NewProgram(NewModel(scr, sess.LearnerID, progressPct))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

// Package practice is the interactive practice session screen. It walks
// the learner through a mixed practice plan one concept at a time and
// records the outcome of each attempt.
package practice

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathprep/pathprep/internal/mastery"
	"github.com/pathprep/pathprep/internal/screen"
	"github.com/pathprep/pathprep/internal/session"
	"github.com/pathprep/pathprep/internal/skillgraph"
	"github.com/pathprep/pathprep/internal/ui/layout"
	"github.com/pathprep/pathprep/internal/ui/theme"
)

// Recorder records an attempt and returns the updated mastery record.
// Satisfied by *mastery.Service.
type Recorder interface {
	RecordExposure(ctx context.Context, learnerID, conceptID string, success bool) (*mastery.MasteryRecord, error)
}

type phase int

const (
	phaseAsking phase = iota
	phaseFeedback
	phaseDone
)

// outcome is the result of one recorded attempt.
type outcome struct {
	ConceptID string
	Success   bool
	NewScore  int
}

// recordedMsg carries the result of an async RecordExposure call.
type recordedMsg struct {
	Outcome outcome
	Err     error
}

// Screen drives one practice session.
type Screen struct {
	recorder Recorder
	graph    *skillgraph.Graph
	sess     *session.PracticeSession

	phase    phase
	idx      int
	pending  bool // a record call is in flight
	sp       spinner.Model
	outcomes []outcome
	last     *outcome
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the practice screen for a generated session.
func New(recorder Recorder, graph *skillgraph.Graph, sess *session.PracticeSession) *Screen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	s := &Screen{
		recorder: recorder,
		graph:    graph,
		sess:     sess,
		sp:       sp,
	}
	if sess.Empty() {
		s.phase = phaseDone
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.sp.Tick
}

func (s *Screen) Title() string {
	return "Practice"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAsking:
		return []layout.KeyHint{
			{Key: "Y", Description: "Got it right"},
			{Key: "N", Description: "Got it wrong"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next"},
		}
	default:
		return []layout.KeyHint{
			{Key: "any key", Description: "Exit"},
		}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordedMsg:
		return s.handleRecorded(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.sp, cmd = s.sp.Update(msg)
		return s, cmd
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" || s.phase == phaseDone {
		return s, tea.Quit
	}

	switch s.phase {
	case phaseAsking:
		if s.pending {
			return s, nil
		}
		switch key {
		case "y", "Y":
			return s.record(true)
		case "n", "N":
			return s.record(false)
		}
	case phaseFeedback:
		s.advance()
		return s, nil
	}

	return s, nil
}

func (s *Screen) record(success bool) (screen.Screen, tea.Cmd) {
	item := s.sess.Items[s.idx]
	s.pending = true
	return s, func() tea.Msg {
		rec, err := s.recorder.RecordExposure(context.Background(), s.sess.LearnerID, item.ConceptID, success)
		if err != nil {
			return recordedMsg{Err: err}
		}
		return recordedMsg{Outcome: outcome{
			ConceptID: item.ConceptID,
			Success:   success,
			NewScore:  rec.Score,
		}}
	}
}

func (s *Screen) handleRecorded(msg recordedMsg) (screen.Screen, tea.Cmd) {
	s.pending = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.outcomes = append(s.outcomes, msg.Outcome)
	s.last = &msg.Outcome
	s.phase = phaseFeedback
	return s, nil
}

// advance moves to the next item or the summary.
func (s *Screen) advance() {
	s.idx++
	if s.idx >= len(s.sess.Items) {
		s.phase = phaseDone
		return
	}
	s.phase = phaseAsking
}

// correctCount returns how many attempts succeeded so far.
func (s *Screen) correctCount() int {
	n := 0
	for _, o := range s.outcomes {
		if o.Success {
			n++
		}
	}
	return n
}

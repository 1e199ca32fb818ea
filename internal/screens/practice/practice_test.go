package practice

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/pathprep/pathprep/internal/mastery"
	"github.com/pathprep/pathprep/internal/screen"
	"github.com/pathprep/pathprep/internal/session"
	"github.com/pathprep/pathprep/internal/skillgraph"
)

type fakeRecorder struct {
	calls []struct {
		ConceptID string
		Success   bool
	}
	score int
	err   error
}

func (f *fakeRecorder) RecordExposure(_ context.Context, _, conceptID string, success bool) (*mastery.MasteryRecord, error) {
	f.calls = append(f.calls, struct {
		ConceptID string
		Success   bool
	}{conceptID, success})
	if f.err != nil {
		return nil, f.err
	}
	return &mastery.MasteryRecord{ConceptID: conceptID, Score: f.score}, nil
}

func testGraph(t *testing.T) *skillgraph.Graph {
	t.Helper()
	g, err := skillgraph.New([]skillgraph.Concept{
		{ID: "flexbox", Title: "Flexbox Layout", Phase: skillgraph.PhaseHTMLCSS, Skills: []string{"flex"}},
		{ID: "js-loops", Title: "Loops & Iteration", Phase: skillgraph.PhaseJavaScript, Prerequisites: []string{"flexbox"}},
	})
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func testSession() *session.PracticeSession {
	return &session.PracticeSession{
		ID:        "sess-1",
		LearnerID: "local",
		Items: []session.Item{
			{ConceptID: "flexbox", Tag: session.TagWeak, Score: 32},
			{ConceptID: "js-loops", Tag: session.TagReview, Score: 65},
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// step applies a message and runs any returned command synchronously,
// feeding resulting messages back in.
func step(t *testing.T, scr screen.Screen, msg tea.Msg) screen.Screen {
	t.Helper()
	scr, cmd := scr.Update(msg)
	for cmd != nil {
		next := cmd()
		if next == nil {
			break
		}
		scr, cmd = scr.Update(next)
	}
	return scr
}

func TestPracticeWalksAllItems(t *testing.T) {
	rec := &fakeRecorder{score: 48}
	scr := screen.Screen(New(rec, testGraph(t), testSession()))

	// First item: answer correct, then continue past feedback.
	scr = step(t, scr, keyPress('y'))
	if got := scr.View(80, 24); !strings.Contains(got, "Nice work") {
		t.Errorf("expected success feedback, got:\n%s", got)
	}
	scr = step(t, scr, keyPress(' '))

	// Second item: answer wrong.
	scr = step(t, scr, keyPress('n'))
	scr = step(t, scr, keyPress(' '))

	view := scr.View(80, 24)
	if !strings.Contains(view, "Session complete") {
		t.Fatalf("expected summary, got:\n%s", view)
	}
	if !strings.Contains(view, "1 of 2 correct") {
		t.Errorf("expected score line in summary, got:\n%s", view)
	}

	if len(rec.calls) != 2 {
		t.Fatalf("recorded %d exposures, want 2", len(rec.calls))
	}
	if rec.calls[0].ConceptID != "flexbox" || !rec.calls[0].Success {
		t.Errorf("first call = %+v", rec.calls[0])
	}
	if rec.calls[1].ConceptID != "js-loops" || rec.calls[1].Success {
		t.Errorf("second call = %+v", rec.calls[1])
	}
}

func TestPracticeShowsConceptDetails(t *testing.T) {
	scr := New(&fakeRecorder{score: 48}, testGraph(t), testSession())

	view := scr.View(80, 24)
	if !strings.Contains(view, "Flexbox Layout") {
		t.Errorf("expected concept title, got:\n%s", view)
	}
	if !strings.Contains(view, "Concept 1 of 2") {
		t.Errorf("expected position indicator, got:\n%s", view)
	}
	if !strings.Contains(view, "WEAK") {
		t.Errorf("expected weak tag badge, got:\n%s", view)
	}
}

func TestPracticeIgnoresOtherKeysWhileAsking(t *testing.T) {
	rec := &fakeRecorder{score: 48}
	scr := screen.Screen(New(rec, testGraph(t), testSession()))

	scr = step(t, scr, keyPress('x'))
	scr = step(t, scr, keyPress('7'))

	if len(rec.calls) != 0 {
		t.Errorf("recorded %d exposures from stray keys, want 0", len(rec.calls))
	}
	if got := scr.View(80, 24); !strings.Contains(got, "Concept 1 of 2") {
		t.Errorf("expected to still be on first item, got:\n%s", got)
	}
}

func TestPracticeEmptySessionGoesStraightToSummary(t *testing.T) {
	sess := &session.PracticeSession{ID: "sess-2", LearnerID: "local"}
	scr := New(&fakeRecorder{}, testGraph(t), sess)

	view := scr.View(80, 24)
	if !strings.Contains(view, "All caught up") {
		t.Errorf("expected all-caught-up message, got:\n%s", view)
	}
}

func TestPracticeRecordFailureShowsError(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("database is locked")}
	scr := screen.Screen(New(rec, testGraph(t), testSession()))

	scr = step(t, scr, keyPress('y'))

	view := scr.View(80, 24)
	if !strings.Contains(view, "database is locked") {
		t.Errorf("expected error message, got:\n%s", view)
	}
}

package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/pathprep/pathprep/internal/mastery"
	"github.com/pathprep/pathprep/internal/skillgraph"
)

type fakeSource struct {
	exposed   []*mastery.MasteryRecord
	due       []*mastery.MasteryRecord
	completed map[string]bool
}

func (f *fakeSource) ExposedRecords(context.Context, string) ([]*mastery.MasteryRecord, error) {
	return f.exposed, nil
}

func (f *fakeSource) DueForReview(context.Context, string) ([]*mastery.MasteryRecord, error) {
	return f.due, nil
}

func (f *fakeSource) CompletedSet(context.Context, string) (map[string]bool, error) {
	if f.completed == nil {
		return map[string]bool{}, nil
	}
	return f.completed, nil
}

func defaultGraph(t *testing.T) *skillgraph.Graph {
	t.Helper()
	g, err := skillgraph.Default()
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func weakRec(conceptID string, score int) *mastery.MasteryRecord {
	return &mastery.MasteryRecord{
		LearnerID: "u1", ConceptID: conceptID,
		Exposures: 3, Successes: 1, Failures: 2,
		Score: score, Status: mastery.StatusInProgress,
	}
}

func TestRecommend_FreshLearnerGetsRootConcept(t *testing.T) {
	r := NewRanker(&fakeSource{}, defaultGraph(t))

	got, err := r.Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(got))
	}
	if got[0].Type != TypeNewConcept || got[0].ConceptID != "design-principles" {
		t.Errorf("fresh learner should be pointed at the root concept, got %+v", got[0])
	}
	if got[0].Priority != PriorityNormal {
		t.Errorf("new-concept priority = %q, want normal", got[0].Priority)
	}
}

func TestRecommend_WeakConceptsLeadAscending(t *testing.T) {
	src := &fakeSource{
		exposed: []*mastery.MasteryRecord{
			weakRec("js-loops", 40),
			weakRec("js-variables", 20),
			weakRec("flexbox", 30),
		},
	}
	r := NewRanker(src, defaultGraph(t))

	got, err := r.Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) < 3 {
		t.Fatalf("got %d recommendations, want at least 3", len(got))
	}
	wantOrder := []string{"js-variables", "flexbox", "js-loops"}
	for i, id := range wantOrder {
		if got[i].ConceptID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ConceptID, id)
		}
		if got[i].Priority != PriorityHigh {
			t.Errorf("%q: priority %q, want high", id, got[i].Priority)
		}
	}
	if got[0].Reason != "Mastery at 20% - needs practice" {
		t.Errorf("reason should cite the numeric mastery, got %q", got[0].Reason)
	}
}

func TestRecommend_TruncatesToFive(t *testing.T) {
	src := &fakeSource{
		exposed: []*mastery.MasteryRecord{
			weakRec("a", 10), weakRec("b", 20), weakRec("c", 30),
			weakRec("d", 40), weakRec("e", 45), weakRec("f", 48),
		},
	}
	r := NewRanker(src, defaultGraph(t))

	got, err := r.Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("got %d recommendations, want 5", len(got))
	}
}

func TestRecommend_DueAfterWeakWithoutRepeats(t *testing.T) {
	dueRec := weakRec("js-operators", 60)
	dueRec.Status = mastery.StatusInProgress
	src := &fakeSource{
		exposed: []*mastery.MasteryRecord{weakRec("js-variables", 20), dueRec},
		due:     []*mastery.MasteryRecord{weakRec("js-variables", 20), dueRec},
	}
	r := NewRanker(src, defaultGraph(t))

	got, err := r.Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].ConceptID != "js-variables" || got[0].Type != TypeWeakReview {
		t.Fatalf("weak concept should lead, got %+v", got[0])
	}
	if got[1].ConceptID != "js-operators" || got[1].Type != TypeSpacedReview {
		t.Fatalf("due concept should follow, got %+v", got[1])
	}
	for _, rec := range got[2:] {
		if rec.ConceptID == "js-variables" {
			t.Error("a concept must not appear as both weak and due")
		}
	}
}

func TestRecommend_MixedPracticeNeedsBreadth(t *testing.T) {
	src := &fakeSource{
		exposed: []*mastery.MasteryRecord{weakRec("a", 10), weakRec("b", 20)},
	}
	r := NewRanker(src, defaultGraph(t))
	got, err := r.Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, rec := range got {
		if rec.Type == TypePractice {
			t.Error("practice suggestion requires 3+ exposed concepts")
		}
	}

	src.exposed = append(src.exposed, weakRec("c", 30))
	got, err = r.Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, rec := range got {
		if rec.Type == TypePractice {
			found = true
			if rec.ConceptID != "" {
				t.Error("practice suggestion carries no concept ID")
			}
		}
	}
	if !found {
		t.Error("expected a mixed practice suggestion with 3 exposed concepts")
	}
}

func TestRecommend_AllCaughtUpSentinel(t *testing.T) {
	// A tiny fully-mastered curriculum with nothing due.
	g, err := skillgraph.New([]skillgraph.Concept{
		{ID: "a", Title: "A", Phase: skillgraph.PhaseFoundation},
		{ID: "b", Title: "B", Phase: skillgraph.PhaseFoundation, Prerequisites: []string{"a"}},
	})
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}

	future := time.Now().AddDate(0, 0, 30)
	mastered := func(id string) *mastery.MasteryRecord {
		return &mastery.MasteryRecord{
			LearnerID: "u1", ConceptID: id,
			Exposures: 5, Successes: 5,
			Score: 100, Status: mastery.StatusMastered,
			NextReviewAt: &future,
		}
	}
	src := &fakeSource{
		exposed:   []*mastery.MasteryRecord{mastered("a"), mastered("b")},
		completed: map[string]bool{"a": true, "b": true},
	}
	r := NewRanker(src, g)

	got, err := r.Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Type != TypeAllCaughtUp {
		t.Fatalf("want a single all-caught-up sentinel, got %+v", got)
	}
}

package session

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/pathprep/pathprep/internal/mastery"
)

type fakeSource struct {
	records []*mastery.MasteryRecord
}

func (f *fakeSource) ExposedRecords(context.Context, string) ([]*mastery.MasteryRecord, error) {
	return f.records, nil
}

func fixedRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 7))
}

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func rec(conceptID string, score int, dueDaysAgo int) *mastery.MasteryRecord {
	r := &mastery.MasteryRecord{
		LearnerID: "u1",
		ConceptID: conceptID,
		Exposures: 3,
		Successes: 2,
		Failures:  1,
		Score:     score,
		Status:    mastery.DeriveStatus(3, score),
	}
	review := testNow.AddDate(0, 0, -dueDaysAgo)
	practiced := review.AddDate(0, 0, -2)
	r.LastPracticedAt = &practiced
	r.NextReviewAt = &review
	return r
}

func newTestGenerator(src RecordSource) *Generator {
	g := NewGenerator(src, fixedRNG())
	g.Now = func() time.Time { return testNow }
	return g
}

func TestMixedPractice_EmptyForFreshLearner(t *testing.T) {
	g := newTestGenerator(&fakeSource{})
	s, err := g.MixedPractice(context.Background(), "u1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Empty() {
		t.Errorf("fresh learner should get an empty session, got %d items", len(s.Items))
	}
	if s.ID == "" {
		t.Error("session should carry an ID even when empty")
	}
}

func TestMixedPractice_WeakAndDueMix(t *testing.T) {
	// 2 weak concepts and 5 eligible, all due: a 5-slot session holds
	// both weak concepts plus 3 review concepts.
	src := &fakeSource{records: []*mastery.MasteryRecord{
		rec("w1", 20, 1),
		rec("w2", 30, 1),
		rec("e1", 60, 5),
		rec("e2", 65, 4),
		rec("e3", 70, 3),
		rec("e4", 75, 2),
		rec("e5", 80, 1),
	}}
	g := newTestGenerator(src)

	s, err := g.MixedPractice(context.Background(), "u1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Items) != 5 {
		t.Fatalf("got %d items, want 5", len(s.Items))
	}

	seen := map[string]PriorityTag{}
	for _, item := range s.Items {
		if _, dup := seen[item.ConceptID]; dup {
			t.Errorf("duplicate concept %q in session", item.ConceptID)
		}
		seen[item.ConceptID] = item.Tag
	}

	if seen["w1"] != TagWeak || seen["w2"] != TagWeak {
		t.Errorf("both weak concepts should be included and tagged weak: %v", seen)
	}
	reviews := 0
	for _, tag := range seen {
		if tag == TagReview {
			reviews++
		}
	}
	if reviews != 3 {
		t.Errorf("got %d review items, want 3", reviews)
	}
	// Most overdue eligible first: e1, e2, e3 fill the review slots.
	for _, id := range []string{"e1", "e2", "e3"} {
		if _, ok := seen[id]; !ok {
			t.Errorf("expected most-overdue concept %q in session", id)
		}
	}
}

func TestMixedPractice_WeakSlotsLeastMasteredFirst(t *testing.T) {
	// 4 weak concepts, 5 requested: ceil(5*0.6)=3 weak slots go to the
	// three least mastered.
	src := &fakeSource{records: []*mastery.MasteryRecord{
		rec("w-40", 40, 1),
		rec("w-10", 10, 1),
		rec("w-20", 20, 1),
		rec("w-30", 30, 1),
		rec("e1", 90, 1),
		rec("e2", 95, 1),
	}}
	g := newTestGenerator(src)

	s, err := g.MixedPractice(context.Background(), "u1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	weakIncluded := map[string]bool{}
	for _, item := range s.Items {
		if item.Tag == TagWeak {
			weakIncluded[item.ConceptID] = true
		}
	}
	if len(weakIncluded) != 3 {
		t.Fatalf("got %d weak items, want 3", len(weakIncluded))
	}
	for _, id := range []string{"w-10", "w-20", "w-30"} {
		if !weakIncluded[id] {
			t.Errorf("least-mastered concept %q missing from weak slots", id)
		}
	}
	if weakIncluded["w-40"] {
		t.Error("w-40 should lose its slot to lower-mastery concepts")
	}
}

func TestMixedPractice_ShorterWhenFewConcepts(t *testing.T) {
	src := &fakeSource{records: []*mastery.MasteryRecord{
		rec("a", 20, 1),
		rec("b", 90, 1),
	}}
	g := newTestGenerator(src)

	s, err := g.MixedPractice(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Items) != 2 {
		t.Errorf("got %d items, want 2 (never padded)", len(s.Items))
	}
}

func TestMixedPractice_SamplesNonDueEligible(t *testing.T) {
	// No weak, one due, rest not due: remaining slots sample from the
	// not-due eligible pool without replacement.
	src := &fakeSource{records: []*mastery.MasteryRecord{
		rec("due", 60, 2),
		{LearnerID: "u1", ConceptID: "fresh1", Exposures: 1, Score: 70, Status: mastery.StatusInProgress, NextReviewAt: timePtr(testNow.AddDate(0, 0, 3))},
		{LearnerID: "u1", ConceptID: "fresh2", Exposures: 1, Score: 75, Status: mastery.StatusInProgress, NextReviewAt: timePtr(testNow.AddDate(0, 0, 4))},
	}}
	g := newTestGenerator(src)

	s, err := g.MixedPractice(context.Background(), "u1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(s.Items))
	}
	seen := map[string]bool{}
	for _, item := range s.Items {
		if seen[item.ConceptID] {
			t.Errorf("duplicate %q", item.ConceptID)
		}
		seen[item.ConceptID] = true
		if item.Tag != TagReview {
			t.Errorf("item %q should be tagged review", item.ConceptID)
		}
	}
}

func TestMixedPractice_DeterministicUnderFixedSeed(t *testing.T) {
	src := &fakeSource{records: []*mastery.MasteryRecord{
		rec("a", 10, 1), rec("b", 20, 2), rec("c", 60, 3),
		rec("d", 70, 4), rec("e", 80, 5), rec("f", 90, 6),
	}}

	run := func() []string {
		g := newTestGenerator(src)
		s, err := g.MixedPractice(context.Background(), "u1", 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids := make([]string, len(s.Items))
		for i, item := range s.Items {
			ids[i] = item.ConceptID
		}
		return ids
	}

	first, second := run(), run()
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different sessions: %v vs %v", first, second)
		}
	}
}

func TestReinforcements(t *testing.T) {
	src := &fakeSource{records: []*mastery.MasteryRecord{
		rec("current", 30, 1), // excluded: it's the concept being studied
		rec("weak-a", 25, 0),
		rec("weak-b", 45, 0),
		rec("due-c", 60, 2),
		rec("weak-d", 10, 0),
		{LearnerID: "u1", ConceptID: "fine", Exposures: 4, Score: 85, Status: mastery.StatusMastered, NextReviewAt: timePtr(testNow.AddDate(0, 0, 10))},
	}}
	g := newTestGenerator(src)

	got, err := g.Reinforcements(context.Background(), "u1", "current")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d reinforcements, want 3", len(got))
	}
	if got[0].ConceptID != "weak-d" || got[1].ConceptID != "weak-a" || got[2].ConceptID != "weak-b" {
		t.Errorf("want weakest first [weak-d weak-a weak-b], got %v", got)
	}
	for _, r := range got {
		if r.ConceptID == "current" {
			t.Error("current concept must not be reinforced")
		}
		if r.Reason != ReasonWeak {
			t.Errorf("%q: want reason weak, got %q", r.ConceptID, r.Reason)
		}
	}
}

func timePtr(t time.Time) *time.Time { return &t }

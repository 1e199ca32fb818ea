package readiness

import (
	"context"
	"testing"
	"time"

	"github.com/pathprep/pathprep/internal/mastery"
	"github.com/pathprep/pathprep/internal/skillgraph"
)

type fakeSource struct {
	records []*mastery.MasteryRecord
}

func (f *fakeSource) ExposedRecords(context.Context, string) ([]*mastery.MasteryRecord, error) {
	return f.records, nil
}

func newTestEvaluator(t *testing.T, recs ...*mastery.MasteryRecord) *Evaluator {
	t.Helper()
	g, err := skillgraph.Default()
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return NewEvaluator(&fakeSource{records: recs}, g, skillgraph.DefaultCategories())
}

func exposedRec(conceptID string, score, successes, failures int) *mastery.MasteryRecord {
	return &mastery.MasteryRecord{
		LearnerID: "u1",
		ConceptID: conceptID,
		Exposures: successes + failures,
		Successes: successes,
		Failures:  failures,
		Score:     score,
		Status:    mastery.DeriveStatus(successes+failures, score),
	}
}

func TestSkillRadar_FixedOrderAndAverages(t *testing.T) {
	e := newTestEvaluator(t,
		exposedRec("design-principles", 80, 4, 1),
		exposedRec("layout-reasoning", 60, 3, 2),
		exposedRec("js-variables", 20, 1, 4),
	)

	radar, err := e.SkillRadar(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{"Foundation", "HTML/CSS", "JS Basics", "JS Advanced", "DOM & Async"}
	if len(radar) != len(wantOrder) {
		t.Fatalf("got %d categories, want %d", len(radar), len(wantOrder))
	}
	for i, name := range wantOrder {
		if radar[i].Category != name {
			t.Errorf("radar[%d] = %q, want %q", i, radar[i].Category, name)
		}
	}

	// Foundation averages its two exposed concepts; ux-thinking is
	// unexposed and excluded from the average.
	if radar[0].Score != 70 {
		t.Errorf("Foundation score = %d, want 70", radar[0].Score)
	}
	if radar[2].Score != 20 {
		t.Errorf("JS Basics score = %d, want 20", radar[2].Score)
	}
	// No exposures at all in HTML/CSS.
	if radar[1].Score != 0 {
		t.Errorf("HTML/CSS score = %d, want 0", radar[1].Score)
	}
}

func TestReadiness_ZeroExposure(t *testing.T) {
	e := newTestEvaluator(t)
	res, err := e.Readiness(context.Background(), "u1", "frontend")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Overall != 0 {
		t.Errorf("overall = %d, want 0", res.Overall)
	}
	if res.Level != LevelJustStarted {
		t.Errorf("level = %q, want %q", res.Level, LevelJustStarted)
	}
}

func TestReadiness_Composite(t *testing.T) {
	// 10 exposed concepts at mastery 80, all answers correct, frontend
	// expects 20: mastery 80*0.4 + coverage 50*0.3 + consistency
	// 100*0.3 = 77.
	var recs []*mastery.MasteryRecord
	ids := []string{
		"design-principles", "layout-reasoning", "ux-thinking",
		"html-semantic", "css-box-model", "flexbox", "css-grid",
		"responsive-design", "js-variables", "js-operators",
	}
	for _, id := range ids {
		recs = append(recs, exposedRec(id, 80, 5, 0))
	}
	e := newTestEvaluator(t, recs...)

	res, err := e.Readiness(context.Background(), "u1", "frontend")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Overall != 77 {
		t.Errorf("overall = %d, want 77", res.Overall)
	}
	if res.Level != LevelAlmostReady {
		t.Errorf("level = %q, want %q", res.Level, LevelAlmostReady)
	}
	if res.Breakdown.Mastery != 80 || res.Breakdown.Coverage != 50 || res.Breakdown.Consistency != 100 {
		t.Errorf("breakdown = %+v, want 80/50/100", res.Breakdown)
	}
}

func TestReadiness_CoverageCapsAt100(t *testing.T) {
	var recs []*mastery.MasteryRecord
	g, _ := skillgraph.Default()
	for _, c := range g.All() {
		recs = append(recs, exposedRec(c.ID, 100, 5, 0))
	}
	// fullstack expects 40 concepts; only 19 exist, coverage 48.
	e := newTestEvaluator(t, recs...)
	res, err := e.Readiness(context.Background(), "u1", "fullstack")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Breakdown.Coverage != 48 {
		t.Errorf("coverage = %d, want 48", res.Breakdown.Coverage)
	}
	if res.Overall < 0 || res.Overall > 100 {
		t.Errorf("overall %d out of range", res.Overall)
	}
}

func TestReadiness_UnknownRoleUsesDefault(t *testing.T) {
	if got := ExpectedConcepts("data-wizard"); got != 20 {
		t.Errorf("unknown role expectation = %d, want 20", got)
	}
	if got := ExpectedConcepts("backend"); got != 25 {
		t.Errorf("backend expectation = %d, want 25", got)
	}
}

func TestGaps_SortedAscendingWithRecommendation(t *testing.T) {
	// Foundation 80, HTML/CSS 40, JS Basics 20.
	e := newTestEvaluator(t,
		exposedRec("design-principles", 80, 4, 1),
		exposedRec("css-box-model", 40, 2, 3),
		exposedRec("js-variables", 20, 1, 4),
	)

	got, err := e.Gaps(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// JS Advanced and DOM & Async are unexposed (score 0) and gap too;
	// the weakest exposed categories still sort correctly among them.
	var jsIdx, htmlIdx = -1, -1
	for i, cs := range got.Gaps {
		switch cs.Category {
		case "JS Basics":
			jsIdx = i
		case "HTML/CSS":
			htmlIdx = i
		}
	}
	if jsIdx == -1 || htmlIdx == -1 {
		t.Fatalf("expected JS Basics and HTML/CSS among gaps, got %+v", got.Gaps)
	}
	if jsIdx > htmlIdx {
		t.Errorf("JS Basics (20) should sort before HTML/CSS (40)")
	}
	for i := 1; i < len(got.Gaps); i++ {
		if got.Gaps[i].Score < got.Gaps[i-1].Score {
			t.Errorf("gaps not ascending: %+v", got.Gaps)
		}
	}
	if got.Recommendation == NoGapsMessage {
		t.Error("expected a focus recommendation, got the no-gaps sentinel")
	}
}

func TestGaps_NoGapsSentinel(t *testing.T) {
	var recs []*mastery.MasteryRecord
	g, _ := skillgraph.Default()
	for _, c := range g.All() {
		recs = append(recs, exposedRec(c.ID, 90, 9, 1))
	}
	e := newTestEvaluator(t, recs...)

	got, err := e.Gaps(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Gaps) != 0 {
		t.Errorf("expected no gaps, got %+v", got.Gaps)
	}
	if got.Recommendation != NoGapsMessage {
		t.Errorf("recommendation = %q, want sentinel", got.Recommendation)
	}
}

func TestStats_Buckets(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	overdue := now.AddDate(0, 0, -1)
	r := exposedRec("flexbox", 85, 5, 1)
	r.NextReviewAt = &overdue

	e := newTestEvaluator(t,
		r,
		exposedRec("css-grid", 70, 3, 2),
		exposedRec("js-variables", 45, 2, 3),
		exposedRec("js-loops", 20, 1, 4),
	)

	s, err := e.Stats(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalPracticed != 4 {
		t.Errorf("totalPracticed = %d, want 4", s.TotalPracticed)
	}
	if s.MasteredCount != 1 || s.ProficientCount != 1 || s.LearningCount != 1 || s.StrugglingCount != 1 {
		t.Errorf("buckets = %d/%d/%d/%d, want 1/1/1/1",
			s.MasteredCount, s.ProficientCount, s.LearningCount, s.StrugglingCount)
	}
	if s.DueForReview != 1 {
		t.Errorf("dueForReview = %d, want 1", s.DueForReview)
	}
	// 11 successes of 21 attempts.
	if s.SuccessRate != 52 {
		t.Errorf("successRate = %d, want 52", s.SuccessRate)
	}
	if s.AverageMastery != 55 {
		t.Errorf("averageMastery = %d, want 55", s.AverageMastery)
	}
}

func TestDifficultyLevel(t *testing.T) {
	// No records: easy.
	e := newTestEvaluator(t)
	if d, _ := e.DifficultyLevel(context.Background(), "u1"); d != DifficultyEasy {
		t.Errorf("fresh learner difficulty = %q, want easy", d)
	}

	// High mastery, perfect accuracy: expert.
	e = newTestEvaluator(t,
		exposedRec("flexbox", 90, 5, 0),
		exposedRec("css-grid", 85, 4, 0),
	)
	if d, _ := e.DifficultyLevel(context.Background(), "u1"); d != DifficultyExpert {
		t.Errorf("difficulty = %q, want expert", d)
	}

	// Middling: 50*0.6 + 0.5*100*0.4 = 50 -> medium.
	e = newTestEvaluator(t, exposedRec("flexbox", 50, 2, 2))
	if d, _ := e.DifficultyLevel(context.Background(), "u1"); d != DifficultyMedium {
		t.Errorf("difficulty = %q, want medium", d)
	}
}

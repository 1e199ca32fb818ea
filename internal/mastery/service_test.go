package mastery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pathprep/pathprep/internal/skillgraph"
)

type fakeRepo struct {
	records   map[string]*MasteryRecord
	upsertErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*MasteryRecord)}
}

func key(learnerID, conceptID string) string { return learnerID + "/" + conceptID }

func clone(r *MasteryRecord) *MasteryRecord {
	c := *r
	if r.LastPracticedAt != nil {
		t := *r.LastPracticedAt
		c.LastPracticedAt = &t
	}
	if r.NextReviewAt != nil {
		t := *r.NextReviewAt
		c.NextReviewAt = &t
	}
	return &c
}

func (f *fakeRepo) Get(_ context.Context, learnerID, conceptID string) (*MasteryRecord, error) {
	r, ok := f.records[key(learnerID, conceptID)]
	if !ok {
		return nil, nil
	}
	return clone(r), nil
}

func (f *fakeRepo) ForLearner(_ context.Context, learnerID string) ([]*MasteryRecord, error) {
	var out []*MasteryRecord
	for _, r := range f.records {
		if r.LearnerID == learnerID {
			out = append(out, clone(r))
		}
	}
	return out, nil
}

func (f *fakeRepo) Upsert(_ context.Context, rec *MasteryRecord) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.records[key(rec.LearnerID, rec.ConceptID)] = clone(rec)
	return nil
}

type fakeLog struct {
	exposures []Exposure
	err       error
}

func (f *fakeLog) AppendExposure(_ context.Context, e Exposure) error {
	if f.err != nil {
		return f.err
	}
	f.exposures = append(f.exposures, e)
	return nil
}

func newTestService(t *testing.T, repo Repo, log ExposureLog, now time.Time) *Service {
	t.Helper()
	g, err := skillgraph.Default()
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	svc := NewService(repo, log, g)
	svc.Now = func() time.Time { return now }
	return svc
}

func TestRecordExposure_FirstSuccess(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	log := &fakeLog{}
	svc := newTestService(t, repo, log, now)

	rec, err := svc.RecordExposure(context.Background(), "u1", "js-variables", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Exposures != 1 || rec.Successes != 1 || rec.Failures != 0 {
		t.Errorf("counters = %d/%d/%d, want 1/1/0", rec.Exposures, rec.Successes, rec.Failures)
	}
	if rec.Score != 68 {
		t.Errorf("score = %d, want 68", rec.Score)
	}
	if rec.Status != StatusInProgress {
		t.Errorf("status = %q, want %q", rec.Status, StatusInProgress)
	}
	if rec.LastPracticedAt == nil || !rec.LastPracticedAt.Equal(now) {
		t.Errorf("lastPracticedAt = %v, want %v", rec.LastPracticedAt, now)
	}
	// Band(68) = 4, interval 14 days.
	wantNext := now.AddDate(0, 0, 14)
	if rec.NextReviewAt == nil || !rec.NextReviewAt.Equal(wantNext) {
		t.Errorf("nextReviewAt = %v, want %v", rec.NextReviewAt, wantNext)
	}

	if len(log.exposures) != 1 || log.exposures[0].ScoreAfter != 68 {
		t.Errorf("exposure log not appended: %+v", log.exposures)
	}
}

func TestRecordExposure_CountsFailures(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := newTestService(t, repo, nil, now)
	ctx := context.Background()

	if _, err := svc.RecordExposure(ctx, "u1", "js-variables", true); err != nil {
		t.Fatal(err)
	}
	rec, err := svc.RecordExposure(ctx, "u1", "js-variables", false)
	if err != nil {
		t.Fatal(err)
	}

	if rec.Exposures != 2 || rec.Successes != 1 || rec.Failures != 1 {
		t.Errorf("counters = %d/%d/%d, want 2/1/1", rec.Exposures, rec.Successes, rec.Failures)
	}
	// 16 + 0.5*40 + 20 = 56.
	if rec.Score != 56 {
		t.Errorf("score = %d, want 56", rec.Score)
	}
}

func TestRecordExposure_RecencyPenaltyAfterGap(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := newTestService(t, repo, nil, start)
	ctx := context.Background()

	if _, err := svc.RecordExposure(ctx, "u1", "js-variables", true); err != nil {
		t.Fatal(err)
	}

	// 17 days later the recency factor has fully decayed.
	svc.Now = func() time.Time { return start.AddDate(0, 0, 17) }
	rec, err := svc.RecordExposure(ctx, "u1", "js-variables", true)
	if err != nil {
		t.Fatal(err)
	}
	// 16 + 40 + max(0, 20-2*10) = 56.
	if rec.Score != 56 {
		t.Errorf("score = %d, want 56", rec.Score)
	}
}

func TestRecordExposure_UnknownConcept(t *testing.T) {
	svc := newTestService(t, newFakeRepo(), nil, time.Now())
	if _, err := svc.RecordExposure(context.Background(), "u1", "quantum-css", true); err == nil {
		t.Fatal("expected error for unknown concept, got nil")
	}
}

func TestRecordExposure_PersistFailureSurfaces(t *testing.T) {
	repo := newFakeRepo()
	repo.upsertErr = errors.New("disk full")
	svc := newTestService(t, repo, nil, time.Now())

	_, err := svc.RecordExposure(context.Background(), "u1", "js-variables", true)
	if err == nil {
		t.Fatal("expected persistence error, got nil")
	}
	if len(repo.records) != 0 {
		t.Error("no record should be stored after a failed upsert")
	}
}

func TestRecordExposure_LogFailureIsNonFatal(t *testing.T) {
	repo := newFakeRepo()
	log := &fakeLog{err: errors.New("log unavailable")}
	svc := newTestService(t, repo, log, time.Now())

	rec, err := svc.RecordExposure(context.Background(), "u1", "js-variables", true)
	if err != nil {
		t.Fatalf("log failure must not fail the exposure: %v", err)
	}
	if rec == nil || rec.Exposures != 1 {
		t.Error("record should still be updated")
	}
}

func TestGetRecord_SynthesizesDefault(t *testing.T) {
	svc := newTestService(t, newFakeRepo(), nil, time.Now())
	rec, err := svc.GetRecord(context.Background(), "u1", "flexbox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Exposures != 0 || rec.Score != 0 || rec.Status != StatusNotStarted {
		t.Errorf("want zero-state default, got %+v", rec)
	}
	if rec.LastPracticedAt != nil || rec.NextReviewAt != nil {
		t.Error("zero-state record must have no timestamps")
	}
}

func TestDueForReview_SortedMostOverdueFirst(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := newTestService(t, repo, nil, now)
	ctx := context.Background()

	mk := func(conceptID string, reviewDaysAgo int) {
		review := now.AddDate(0, 0, -reviewDaysAgo)
		practiced := review.AddDate(0, 0, -1)
		repo.records[key("u1", conceptID)] = &MasteryRecord{
			LearnerID: "u1", ConceptID: conceptID,
			Exposures: 2, Successes: 1, Failures: 1,
			Score: 40, Status: StatusInProgress,
			LastPracticedAt: &practiced, NextReviewAt: &review,
		}
	}
	mk("js-loops", 3)
	mk("flexbox", 10)
	future := now.AddDate(0, 0, 5)
	repo.records[key("u1", "css-grid")] = &MasteryRecord{
		LearnerID: "u1", ConceptID: "css-grid",
		Exposures: 1, Score: 68, Status: StatusInProgress,
		NextReviewAt: &future,
	}

	due, err := svc.DueForReview(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("got %d due records, want 2", len(due))
	}
	if due[0].ConceptID != "flexbox" || due[1].ConceptID != "js-loops" {
		t.Errorf("got order [%s %s], want [flexbox js-loops]", due[0].ConceptID, due[1].ConceptID)
	}
}

func TestCompletedSet(t *testing.T) {
	now := time.Now()
	repo := newFakeRepo()
	svc := newTestService(t, repo, nil, now)

	repo.records[key("u1", "design-principles")] = &MasteryRecord{
		LearnerID: "u1", ConceptID: "design-principles",
		Exposures: 5, Score: 90, Status: StatusMastered,
	}
	repo.records[key("u1", "js-loops")] = &MasteryRecord{
		LearnerID: "u1", ConceptID: "js-loops",
		Exposures: 2, Score: 40, Status: StatusInProgress,
	}

	completed, err := svc.CompletedSet(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !completed["design-principles"] || completed["js-loops"] || len(completed) != 1 {
		t.Errorf("got %v, want only design-principles", completed)
	}
}

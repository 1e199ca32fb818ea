package store

import (
	"context"
	"testing"
	"time"

	"github.com/pathprep/pathprep/internal/mastery"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMasteryRepoGetAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()

	rec, err := repo.Get(context.Background(), "local", "flexbox")
	if err != nil {
		t.Fatalf("get absent: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil record for never-practiced concept, got %+v", rec)
	}
}

func TestMasteryRepoUpsertInsertThenUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	next := now.AddDate(0, 0, 7)

	rec := &mastery.MasteryRecord{
		LearnerID:       "local",
		ConceptID:       "flexbox",
		Exposures:       3,
		Successes:       2,
		Failures:        1,
		Score:           51,
		Status:          mastery.StatusInProgress,
		LastPracticedAt: &now,
		NextReviewAt:    &next,
	}
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.Get(ctx, "local", "flexbox")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected record after insert")
	}
	if got.Exposures != 3 || got.Score != 51 || got.Status != mastery.StatusInProgress {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.LastPracticedAt == nil || !got.LastPracticedAt.Equal(now) {
		t.Errorf("last practiced = %v, want %v", got.LastPracticedAt, now)
	}

	// Second upsert on the same key must update in place, not duplicate.
	rec.Exposures = 4
	rec.Successes = 3
	rec.Score = 62
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, err := repo.ForLearner(ctx, "local")
	if err != nil {
		t.Fatalf("for learner: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("rows after double upsert = %d, want 1", len(all))
	}
	if all[0].Exposures != 4 || all[0].Score != 62 {
		t.Errorf("updated record mismatch: %+v", all[0])
	}
}

func TestMasteryRepoForLearnerScoped(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	for _, pair := range []struct{ learner, concept string }{
		{"alice", "flexbox"},
		{"alice", "js-loops"},
		{"bob", "flexbox"},
	} {
		err := repo.Upsert(ctx, &mastery.MasteryRecord{
			LearnerID: pair.learner,
			ConceptID: pair.concept,
			Exposures: 1,
			Successes: 1,
			Score:     48,
			Status:    mastery.StatusInProgress,
		})
		if err != nil {
			t.Fatalf("upsert %s/%s: %v", pair.learner, pair.concept, err)
		}
	}

	recs, err := repo.ForLearner(ctx, "alice")
	if err != nil {
		t.Fatalf("for learner: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("alice records = %d, want 2", len(recs))
	}
	// Sorted by concept ID.
	if recs[0].ConceptID != "flexbox" || recs[1].ConceptID != "js-loops" {
		t.Errorf("unexpected order: %s, %s", recs[0].ConceptID, recs[1].ConceptID)
	}
}

func TestExposureEventsSequencedAndQueried(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	attempts := []bool{true, false, true, true}
	for _, ok := range attempts {
		err := events.AppendExposure(ctx, mastery.Exposure{
			LearnerID:  "local",
			ConceptID:  "css-selectors",
			Success:    ok,
			ScoreAfter: 40,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	acc, err := events.ConceptAccuracy(ctx, "local", "css-selectors")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}

	// Unseen concept reads as zero, not an error.
	acc, err = events.ConceptAccuracy(ctx, "local", "recursion")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy (empty) = %v, want 0", acc)
	}

	ts, err := events.LatestExposureTime(ctx, "local", "css-selectors")
	if err != nil {
		t.Fatalf("latest exposure: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected non-zero latest exposure time")
	}

	ts, err = events.LatestExposureTime(ctx, "local", "recursion")
	if err != nil {
		t.Fatalf("latest exposure (empty): %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("latest exposure (empty) = %v, want zero time", ts)
	}
}

func TestContentEventAppend(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	err := events.AppendContentRequest(ctx, ContentEventData{
		Provider:     "mock",
		Model:        "mock-model",
		ConceptID:    "flexbox",
		InputTokens:  120,
		OutputTokens: 310,
		LatencyMs:    45,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append content event: %v", err)
	}

	count, err := s.Client().ContentEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("content events = %d, want 1", count)
	}
}

func TestResetLearnerScopesDeletion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, learner := range []string{"alice", "bob"} {
		err := s.MasteryRepo().Upsert(ctx, &mastery.MasteryRecord{
			LearnerID: learner, ConceptID: "flexbox", Exposures: 1, Score: 28,
			Status: mastery.StatusInProgress,
		})
		if err != nil {
			t.Fatalf("upsert %s: %v", learner, err)
		}
		err = s.Events().AppendExposure(ctx, mastery.Exposure{
			LearnerID: learner, ConceptID: "flexbox", Success: true, ScoreAfter: 28,
		})
		if err != nil {
			t.Fatalf("append %s: %v", learner, err)
		}
	}

	if err := s.ResetLearner(ctx, "alice"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	aliceRecs, err := s.MasteryRepo().ForLearner(ctx, "alice")
	if err != nil {
		t.Fatalf("for learner: %v", err)
	}
	if len(aliceRecs) != 0 {
		t.Errorf("alice records after reset = %d, want 0", len(aliceRecs))
	}

	bobRecs, err := s.MasteryRepo().ForLearner(ctx, "bob")
	if err != nil {
		t.Fatalf("for learner: %v", err)
	}
	if len(bobRecs) != 1 {
		t.Errorf("bob records after reset = %d, want 1", len(bobRecs))
	}
}

func TestContentUsageByModel(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	for _, d := range []ContentEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", InputTokens: 100, OutputTokens: 200, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", InputTokens: 50, OutputTokens: 75, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", InputTokens: 10, OutputTokens: 20, Success: false},
	} {
		if err := events.AppendContentRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := events.ContentUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	haiku := usage["claude-haiku-4-5"]
	if haiku.Requests != 2 || haiku.InputTokens != 150 || haiku.OutputTokens != 275 {
		t.Errorf("haiku usage = %+v", haiku)
	}
	if usage["gpt-4o-mini"].Requests != 1 {
		t.Errorf("gpt-4o-mini usage = %+v", usage["gpt-4o-mini"])
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	err := events.AppendExposure(ctx, mastery.Exposure{
		LearnerID: "local", ConceptID: "flexbox", Success: true, ScoreAfter: 28,
	})
	if err != nil {
		t.Fatalf("append exposure: %v", err)
	}
	err = events.AppendContentRequest(ctx, ContentEventData{
		Provider: "mock", Model: "mock-model", ConceptID: "flexbox", Success: true,
	})
	if err != nil {
		t.Fatalf("append content: %v", err)
	}

	exp, err := s.Client().ExposureEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query exposure: %v", err)
	}
	ce, err := s.Client().ContentEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query content: %v", err)
	}
	if exp.Sequence != 1 || ce.Sequence != 2 {
		t.Errorf("sequences = %d, %d; want 1, 2", exp.Sequence, ce.Sequence)
	}
}

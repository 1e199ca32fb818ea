package mastery

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/pathprep/pathprep/internal/skillgraph"
	"github.com/pathprep/pathprep/internal/spacedrep"
)

// Repo is the persistence boundary for mastery records. Implementations
// must make Upsert atomic on the (learner, concept) key so interleaved
// exposure reports cannot lose an increment.
type Repo interface {
	// Get returns the record for a learner×concept pair, or (nil, nil)
	// if the learner has never been exposed to the concept.
	Get(ctx context.Context, learnerID, conceptID string) (*MasteryRecord, error)

	// ForLearner returns all records for a learner.
	ForLearner(ctx context.Context, learnerID string) ([]*MasteryRecord, error)

	// Upsert writes the record, inserting or replacing the row keyed on
	// (learner_id, concept_id) in a single statement.
	Upsert(ctx context.Context, rec *MasteryRecord) error
}

// Exposure is one recorded attempt at a concept, for the append-only
// exposure log.
type Exposure struct {
	LearnerID  string
	ConceptID  string
	Success    bool
	ScoreAfter int
}

// ExposureLog records exposures for audit and analytics. Append failures
// are non-fatal; the mastery record is the source of truth.
type ExposureLog interface {
	AppendExposure(ctx context.Context, e Exposure) error
}

// Service applies the mastery update policy and answers record queries.
// All collaborators are injected; the service holds no ambient state.
type Service struct {
	repo  Repo
	log   ExposureLog
	graph *skillgraph.Graph

	// Now is the clock used for recency and review stamping.
	// Overridable in tests.
	Now func() time.Time
}

// NewService creates a mastery service. log may be nil to disable the
// exposure log.
func NewService(repo Repo, log ExposureLog, graph *skillgraph.Graph) *Service {
	return &Service{
		repo:  repo,
		log:   log,
		graph: graph,
		Now:   time.Now,
	}
}

// RecordExposure registers one attempt at a concept and returns the
// updated record. The new record is computed fully before any write, so
// a persistence failure surfaces as a retryable error without corrupting
// the computation.
func (s *Service) RecordExposure(ctx context.Context, learnerID, conceptID string, success bool) (*MasteryRecord, error) {
	if _, ok := s.graph.Get(conceptID); !ok {
		return nil, fmt.Errorf("unknown concept %q", conceptID)
	}

	rec, err := s.repo.Get(ctx, learnerID, conceptID)
	if err != nil {
		return nil, fmt.Errorf("fetch mastery record: %w", err)
	}
	if rec == nil {
		rec = NewRecord(learnerID, conceptID)
	}

	now := s.Now()

	daysSinceLast := 0
	if rec.LastPracticedAt != nil {
		daysSinceLast = int(now.Sub(*rec.LastPracticedAt).Hours() / 24)
	}

	rec.Exposures++
	if success {
		rec.Successes++
	} else {
		rec.Failures++
	}

	rec.Score = Score(rec.Exposures, rec.SuccessRate(), daysSinceLast)
	rec.LastPracticedAt = &now
	next := spacedrep.NextReviewDate(rec.Score, now)
	rec.NextReviewAt = &next
	rec.Status = DeriveStatus(rec.Exposures, rec.Score)

	if err := s.repo.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist mastery record: %w", err)
	}

	if s.log != nil {
		e := Exposure{
			LearnerID:  learnerID,
			ConceptID:  conceptID,
			Success:    success,
			ScoreAfter: rec.Score,
		}
		if logErr := s.log.AppendExposure(ctx, e); logErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log exposure event: %v\n", logErr)
		}
	}

	return rec, nil
}

// GetRecord returns the learner's record for a concept, synthesizing the
// zero-state default for concepts never practiced.
func (s *Service) GetRecord(ctx context.Context, learnerID, conceptID string) (*MasteryRecord, error) {
	rec, err := s.repo.Get(ctx, learnerID, conceptID)
	if err != nil {
		return nil, fmt.Errorf("fetch mastery record: %w", err)
	}
	if rec == nil {
		return NewRecord(learnerID, conceptID), nil
	}
	return rec, nil
}

// ExposedRecords returns all records with at least one exposure.
func (s *Service) ExposedRecords(ctx context.Context, learnerID string) ([]*MasteryRecord, error) {
	recs, err := s.repo.ForLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("fetch learner records: %w", err)
	}
	exposed := recs[:0]
	for _, r := range recs {
		if r.Exposures > 0 {
			exposed = append(exposed, r)
		}
	}
	return exposed, nil
}

// DueForReview returns the learner's records whose review date is at or
// before now, most overdue first.
func (s *Service) DueForReview(ctx context.Context, learnerID string) ([]*MasteryRecord, error) {
	recs, err := s.ExposedRecords(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	now := s.Now()

	var due []*MasteryRecord
	for _, r := range recs {
		if r.IsDue(now) {
			due = append(due, r)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].NextReviewAt.Equal(*due[j].NextReviewAt) {
			return due[i].NextReviewAt.Before(*due[j].NextReviewAt)
		}
		return due[i].ConceptID < due[j].ConceptID
	})
	return due, nil
}

// CompletedSet returns the set of concept IDs the learner has mastered,
// in the shape graph queries expect.
func (s *Service) CompletedSet(ctx context.Context, learnerID string) (map[string]bool, error) {
	recs, err := s.ExposedRecords(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	completed := make(map[string]bool)
	for _, r := range recs {
		if r.Status == StatusMastered {
			completed[r.ConceptID] = true
		}
	}
	return completed, nil
}

package readiness

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Stats is an aggregate view of a learner's history.
type Stats struct {
	TotalPracticed  int // concepts with at least one exposure
	AverageMastery  int
	TotalExposures  int
	TotalSuccesses  int
	TotalFailures   int
	SuccessRate     int // 0-100
	MasteredCount   int // mastery >= 80
	ProficientCount int // 60-79
	LearningCount   int // 40-59
	StrugglingCount int // < 40
	DueForReview    int
}

// Stats aggregates the learner's records into counts and rates.
func (e *Evaluator) Stats(ctx context.Context, learnerID string, now time.Time) (*Stats, error) {
	recs, err := e.source.ExposedRecords(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	s := &Stats{
		TotalPracticed: len(recs),
		AverageMastery: int(math.Round(averageMastery(recs))),
	}
	for _, r := range recs {
		s.TotalExposures += r.Exposures
		s.TotalSuccesses += r.Successes
		s.TotalFailures += r.Failures
		switch {
		case r.Score >= 80:
			s.MasteredCount++
		case r.Score >= 60:
			s.ProficientCount++
		case r.Score >= 40:
			s.LearningCount++
		default:
			s.StrugglingCount++
		}
		if r.IsDue(now) {
			s.DueForReview++
		}
	}

	if attempts := s.TotalSuccesses + s.TotalFailures; attempts > 0 {
		s.SuccessRate = int(math.Round(100 * float64(s.TotalSuccesses) / float64(attempts)))
	}
	return s, nil
}

// Difficulty is a coarse difficulty tier for generated practice content.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// DifficultyLevel derives the tier a learner should practice at from
// average mastery (60%) and average per-concept success rate (40%).
func (e *Evaluator) DifficultyLevel(ctx context.Context, learnerID string) (Difficulty, error) {
	recs, err := e.source.ExposedRecords(ctx, learnerID)
	if err != nil {
		return DifficultyEasy, fmt.Errorf("load records: %w", err)
	}
	if len(recs) == 0 {
		return DifficultyEasy, nil
	}

	rateSum := 0.0
	for _, r := range recs {
		rateSum += r.SuccessRate()
	}
	avgRate := rateSum / float64(len(recs))

	score := averageMastery(recs)*0.6 + avgRate*100*0.4
	switch {
	case score >= 80:
		return DifficultyExpert, nil
	case score >= 60:
		return DifficultyHard, nil
	case score >= 40:
		return DifficultyMedium, nil
	default:
		return DifficultyEasy, nil
	}
}

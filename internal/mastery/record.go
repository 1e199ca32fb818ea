package mastery

import "time"

// Status describes a learner's standing on a concept, derived from the
// mastery score.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusMastered   Status = "mastered"
)

// MasteredThreshold is the mastery score at which a concept counts as
// mastered.
const MasteredThreshold = 80

// DeriveStatus returns the status implied by exposure count and score.
func DeriveStatus(exposures, score int) Status {
	switch {
	case exposures == 0:
		return StatusNotStarted
	case score >= MasteredThreshold:
		return StatusMastered
	default:
		return StatusInProgress
	}
}

// MasteryRecord tracks one learner's history with one concept. Records
// are created lazily on first exposure and mutated only through
// Service.RecordExposure; they are never deleted.
type MasteryRecord struct {
	LearnerID       string
	ConceptID       string
	Exposures       int
	Successes       int
	Failures        int
	Score           int // 0-100
	Status          Status
	LastPracticedAt *time.Time
	NextReviewAt    *time.Time
}

// NewRecord returns the zero-state record synthesized for a concept the
// learner has never been exposed to.
func NewRecord(learnerID, conceptID string) *MasteryRecord {
	return &MasteryRecord{
		LearnerID: learnerID,
		ConceptID: conceptID,
		Status:    StatusNotStarted,
	}
}

// SuccessRate returns successes/exposures, or 0 before any exposure.
func (r *MasteryRecord) SuccessRate() float64 {
	if r.Exposures == 0 {
		return 0
	}
	return float64(r.Successes) / float64(r.Exposures)
}

// IsDue reports whether the record has a review scheduled at or before now.
func (r *MasteryRecord) IsDue(now time.Time) bool {
	return r.NextReviewAt != nil && !r.NextReviewAt.After(now)
}

// OverdueDays returns how many days past its review date the record is.
// Returns 0 if no review is scheduled or it is not yet due.
func (r *MasteryRecord) OverdueDays(now time.Time) float64 {
	if !r.IsDue(now) {
		return 0
	}
	return now.Sub(*r.NextReviewAt).Hours() / 24.0
}

// Weak reports whether the concept needs focused practice.
func (r *MasteryRecord) Weak() bool {
	return r.Score < WeakThreshold
}

// WeakThreshold is the score below which a concept counts as weak.
const WeakThreshold = 50

// Package session assembles bounded, de-duplicated practice sessions
// from a learner's mastery records.
package session

import (
	"time"

	"github.com/google/uuid"
)

// PriorityTag marks why a concept was selected for a session.
type PriorityTag string

const (
	// TagWeak marks a concept selected for low mastery.
	TagWeak PriorityTag = "weak"
	// TagReview marks a concept selected for review (due or sampled).
	TagReview PriorityTag = "review"
)

// Item is one slot in a practice session.
type Item struct {
	ConceptID string
	Tag       PriorityTag
	Score     int
}

// PracticeSession is an ephemeral, ordered practice set. Sessions are
// generated on demand and never persisted as a whole; each answered item
// feeds back into a mastery record via RecordExposure.
type PracticeSession struct {
	ID        string
	LearnerID string
	CreatedAt time.Time
	Items     []Item
}

// Empty reports whether the session has no items. An empty session means
// the learner has nothing to practice yet and should be directed to the
// learning flow instead.
func (s *PracticeSession) Empty() bool {
	return len(s.Items) == 0
}

func newSession(learnerID string, now time.Time) *PracticeSession {
	return &PracticeSession{
		ID:        uuid.NewString(),
		LearnerID: learnerID,
		CreatedAt: now,
	}
}

package session

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/pathprep/pathprep/internal/mastery"
)

// weakShare is the fraction of session slots reserved for weak concepts.
const weakShare = 0.6

// RecordSource supplies the mastery records sessions are built from.
// *mastery.Service satisfies it.
type RecordSource interface {
	ExposedRecords(ctx context.Context, learnerID string) ([]*mastery.MasteryRecord, error)
}

// Generator builds practice sessions. The random source is injected so
// sessions are reproducible under a fixed seed; pass nil to seed from
// the current time.
type Generator struct {
	records RecordSource
	rng     *rand.Rand

	// Now is the clock used for due checks. Overridable in tests.
	Now func() time.Time
}

// NewGenerator creates a session generator.
func NewGenerator(records RecordSource, rng *rand.Rand) *Generator {
	if rng == nil {
		now := time.Now()
		rng = rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix())))
	}
	return &Generator{
		records: records,
		rng:     rng,
		Now:     time.Now,
	}
}

// MixedPractice assembles a session of up to count concepts: roughly 60%
// weak concepts (least mastered first), the rest due-for-review concepts
// topped up with a random sample of the remaining eligible ones. No
// concept appears twice; if the learner has studied fewer concepts than
// requested the session is simply shorter. A learner with no exposures
// gets an empty session.
func (g *Generator) MixedPractice(ctx context.Context, learnerID string, count int) (*PracticeSession, error) {
	now := g.Now()
	s := newSession(learnerID, now)

	if count <= 0 {
		return s, nil
	}

	recs, err := g.records.ExposedRecords(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load records for session: %w", err)
	}
	if len(recs) == 0 {
		return s, nil
	}

	var weak, eligible []*mastery.MasteryRecord
	for _, r := range recs {
		if r.Weak() {
			weak = append(weak, r)
		} else {
			eligible = append(eligible, r)
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Score != weak[j].Score {
			return weak[i].Score < weak[j].Score
		}
		return weak[i].ConceptID < weak[j].ConceptID
	})

	weakSlots := int(math.Ceil(float64(count) * weakShare))
	if weakSlots > len(weak) {
		weakSlots = len(weak)
	}
	if weakSlots > count {
		weakSlots = count
	}
	for _, r := range weak[:weakSlots] {
		s.Items = append(s.Items, Item{ConceptID: r.ConceptID, Tag: TagWeak, Score: r.Score})
	}

	remaining := count - weakSlots
	if remaining > 0 {
		var due, rest []*mastery.MasteryRecord
		for _, r := range eligible {
			if r.IsDue(now) {
				due = append(due, r)
			} else {
				rest = append(rest, r)
			}
		}
		sort.Slice(due, func(i, j int) bool {
			if !due[i].NextReviewAt.Equal(*due[j].NextReviewAt) {
				return due[i].NextReviewAt.Before(*due[j].NextReviewAt)
			}
			return due[i].ConceptID < due[j].ConceptID
		})

		for _, r := range due {
			if remaining == 0 {
				break
			}
			s.Items = append(s.Items, Item{ConceptID: r.ConceptID, Tag: TagReview, Score: r.Score})
			remaining--
		}

		// Top up by sampling without replacement.
		if remaining > 0 {
			sort.Slice(rest, func(i, j int) bool { return rest[i].ConceptID < rest[j].ConceptID })
			g.rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
			for _, r := range rest {
				if remaining == 0 {
					break
				}
				s.Items = append(s.Items, Item{ConceptID: r.ConceptID, Tag: TagReview, Score: r.Score})
				remaining--
			}
		}
	}

	// Interleave weak and review items instead of leaving them grouped.
	g.rng.Shuffle(len(s.Items), func(i, j int) { s.Items[i], s.Items[j] = s.Items[j], s.Items[i] })

	return s, nil
}

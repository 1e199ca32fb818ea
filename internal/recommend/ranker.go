// Package recommend produces an ordered "what next" list from a
// learner's weak, due, and newly unlockable concepts.
package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/pathprep/pathprep/internal/mastery"
	"github.com/pathprep/pathprep/internal/skillgraph"
)

// maxRecommendations bounds the list length.
const maxRecommendations = 5

// mixedPracticeMinConcepts is the exposure breadth at which a mixed
// practice session becomes worth suggesting.
const mixedPracticeMinConcepts = 3

// Type classifies a recommendation.
type Type string

const (
	TypeWeakReview   Type = "review"
	TypeSpacedReview Type = "spaced-review"
	TypeNewConcept   Type = "new"
	TypePractice     Type = "practice"
	TypeAllCaughtUp  Type = "all-caught-up"
)

// Priority orders recommendations for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityNormal Priority = "normal"
)

// Recommendation is one "what next" entry.
type Recommendation struct {
	Type      Type
	ConceptID string // empty for practice and all-caught-up entries
	Title     string
	Reason    string
	Priority  Priority
}

// Source supplies the learner state recommendations are ranked from.
// *mastery.Service satisfies it.
type Source interface {
	ExposedRecords(ctx context.Context, learnerID string) ([]*mastery.MasteryRecord, error)
	DueForReview(ctx context.Context, learnerID string) ([]*mastery.MasteryRecord, error)
	CompletedSet(ctx context.Context, learnerID string) (map[string]bool, error)
}

// Ranker builds recommendation lists.
type Ranker struct {
	source Source
	graph  *skillgraph.Graph
}

// NewRanker creates a Ranker.
func NewRanker(source Source, graph *skillgraph.Graph) *Ranker {
	return &Ranker{source: source, graph: graph}
}

// Recommend returns up to five entries: weak concepts first (least
// mastered leading), then due reviews (most overdue leading), then newly
// unlockable concepts, then a mixed-practice suggestion once the learner
// has breadth. A learner with nothing to do gets an explicit
// all-caught-up entry rather than an empty list.
func (r *Ranker) Recommend(ctx context.Context, learnerID string) ([]Recommendation, error) {
	recs, err := r.source.ExposedRecords(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	var out []Recommendation
	listed := make(map[string]bool)

	// 1. Weak concepts, least mastered first.
	var weak []*mastery.MasteryRecord
	for _, rec := range recs {
		if rec.Weak() {
			weak = append(weak, rec)
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Score != weak[j].Score {
			return weak[i].Score < weak[j].Score
		}
		return weak[i].ConceptID < weak[j].ConceptID
	})
	for _, rec := range weak {
		out = append(out, Recommendation{
			Type:      TypeWeakReview,
			ConceptID: rec.ConceptID,
			Title:     r.titleOf(rec.ConceptID),
			Reason:    fmt.Sprintf("Mastery at %d%% - needs practice", rec.Score),
			Priority:  PriorityHigh,
		})
		listed[rec.ConceptID] = true
	}

	// 2. Due for spaced repetition, most overdue first. Weak concepts
	// already listed above are not repeated.
	due, err := r.source.DueForReview(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load due reviews: %w", err)
	}
	for _, rec := range due {
		if listed[rec.ConceptID] {
			continue
		}
		out = append(out, Recommendation{
			Type:      TypeSpacedReview,
			ConceptID: rec.ConceptID,
			Title:     r.titleOf(rec.ConceptID),
			Reason:    "Due for spaced repetition review",
			Priority:  PriorityMedium,
		})
		listed[rec.ConceptID] = true
	}

	// 3. Newly unlockable concepts.
	completed, err := r.source.CompletedSet(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load completed set: %w", err)
	}
	for _, c := range r.graph.NextAvailable(completed) {
		if listed[c.ID] {
			continue
		}
		out = append(out, Recommendation{
			Type:      TypeNewConcept,
			ConceptID: c.ID,
			Title:     c.Title,
			Reason:    fmt.Sprintf("Next in your learning path (%dh)", c.EstimatedHours),
			Priority:  PriorityNormal,
		})
		listed[c.ID] = true
	}

	// 4. Mixed practice once the learner has touched enough concepts.
	if len(recs) >= mixedPracticeMinConcepts {
		out = append(out, Recommendation{
			Type:     TypePractice,
			Title:    "Mixed Practice Session",
			Reason:   "Reinforce multiple concepts together",
			Priority: PriorityNormal,
		})
	}

	if len(out) == 0 {
		return []Recommendation{{
			Type:     TypeAllCaughtUp,
			Title:    "All caught up",
			Reason:   "Nothing is weak, due, or newly unlockable right now",
			Priority: PriorityNormal,
		}}, nil
	}

	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out, nil
}

func (r *Ranker) titleOf(conceptID string) string {
	if c, ok := r.graph.Get(conceptID); ok {
		return c.Title
	}
	return conceptID
}

package session

import (
	"context"
	"fmt"
	"sort"
)

// reinforcementLimit bounds how many older concepts get injected into a
// lesson on a new concept.
const reinforcementLimit = 3

// ReinforcementReason explains why a concept was picked for reinforcement.
type ReinforcementReason string

const (
	ReasonWeak         ReinforcementReason = "weak"
	ReasonDueForReview ReinforcementReason = "due-for-review"
)

// Reinforcement is one older concept to revisit while studying another.
type Reinforcement struct {
	ConceptID string
	Score     int
	Reason    ReinforcementReason
}

// Reinforcements returns up to three concepts, other than the one
// currently being studied, that are weak or due for review, weakest
// first and then most urgent review. Used to fold refresher questions into
// a lesson on new material.
func (g *Generator) Reinforcements(ctx context.Context, learnerID, currentConceptID string) ([]Reinforcement, error) {
	recs, err := g.records.ExposedRecords(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load records for reinforcement: %w", err)
	}
	now := g.Now()

	var candidates []Reinforcement
	for _, r := range recs {
		if r.ConceptID == currentConceptID {
			continue
		}
		switch {
		case r.Weak():
			candidates = append(candidates, Reinforcement{ConceptID: r.ConceptID, Score: r.Score, Reason: ReasonWeak})
		case r.IsDue(now):
			candidates = append(candidates, Reinforcement{ConceptID: r.ConceptID, Score: r.Score, Reason: ReasonDueForReview})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score < candidates[j].Score
		}
		return candidates[i].ConceptID < candidates[j].ConceptID
	})

	if len(candidates) > reinforcementLimit {
		candidates = candidates[:reinforcementLimit]
	}
	return candidates, nil
}

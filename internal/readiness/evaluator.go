// Package readiness aggregates per-concept mastery into category scores,
// a skill radar, gap analysis, and a single role-readiness number.
package readiness

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/pathprep/pathprep/internal/mastery"
	"github.com/pathprep/pathprep/internal/skillgraph"
)

// Readiness composite weights.
const (
	masteryWeight     = 0.4
	coverageWeight    = 0.3
	consistencyWeight = 0.3
)

// gapThreshold is the category score below which a category counts as a
// gap.
const gapThreshold = 50

// defaultExpectedConcepts is the coverage denominator for unknown roles.
const defaultExpectedConcepts = 20

// roleExpectations maps a target role to the number of concepts a
// learner is expected to have touched.
var roleExpectations = map[string]int{
	"frontend":  20,
	"backend":   25,
	"fullstack": 40,
}

// ExpectedConcepts returns the coverage denominator for a role.
func ExpectedConcepts(role string) int {
	if n, ok := roleExpectations[role]; ok {
		return n
	}
	return defaultExpectedConcepts
}

// Level labels a readiness score.
type Level string

const (
	LevelReady       Level = "Ready"
	LevelAlmostReady Level = "Almost Ready"
	LevelInProgress  Level = "In Progress"
	LevelJustStarted Level = "Just Started"
)

func levelFor(overall int) Level {
	switch {
	case overall >= 80:
		return LevelReady
	case overall >= 60:
		return LevelAlmostReady
	case overall >= 40:
		return LevelInProgress
	default:
		return LevelJustStarted
	}
}

// Breakdown holds the three readiness components, each 0-100.
type Breakdown struct {
	Mastery     int
	Coverage    int
	Consistency int
}

// Result is a readiness evaluation for one learner and role.
type Result struct {
	Overall   int // 0-100
	Level     Level
	Role      string
	Breakdown Breakdown
}

// CategoryScore is one radar axis.
type CategoryScore struct {
	Category string
	Score    int
}

// GapResult lists the categories needing attention, weakest first.
type GapResult struct {
	Gaps []CategoryScore
	// Recommendation is a short focus hint, or the no-gaps sentinel.
	Recommendation string
}

// NoGapsMessage is the sentinel recommendation when no category falls
// below the gap threshold.
const NoGapsMessage = "No major gaps identified!"

// Source supplies the records aggregates are computed from.
// *mastery.Service satisfies it.
type Source interface {
	ExposedRecords(ctx context.Context, learnerID string) ([]*mastery.MasteryRecord, error)
}

// Evaluator computes aggregate readiness metrics.
type Evaluator struct {
	source     Source
	graph      *skillgraph.Graph
	categories skillgraph.CategoryMap
}

// NewEvaluator creates an Evaluator over the given category map.
func NewEvaluator(source Source, graph *skillgraph.Graph, categories skillgraph.CategoryMap) *Evaluator {
	return &Evaluator{source: source, graph: graph, categories: categories}
}

// SkillRadar returns one score per defined category, in the category
// map's declared order. A category score is the rounded average mastery
// over its exposed concepts, or 0 when none were exposed.
func (e *Evaluator) SkillRadar(ctx context.Context, learnerID string) ([]CategoryScore, error) {
	recs, err := e.source.ExposedRecords(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	byConcept := indexByConcept(recs)

	radar := make([]CategoryScore, 0, len(e.categories))
	for _, cat := range e.categories {
		radar = append(radar, CategoryScore{
			Category: cat.Name,
			Score:    categoryScore(cat, byConcept),
		})
	}
	return radar, nil
}

// CategoryScore returns the aggregate score of one named category, or 0
// for an unknown category name.
func (e *Evaluator) CategoryScore(ctx context.Context, learnerID, category string) (int, error) {
	recs, err := e.source.ExposedRecords(ctx, learnerID)
	if err != nil {
		return 0, fmt.Errorf("load records: %w", err)
	}
	byConcept := indexByConcept(recs)
	for _, cat := range e.categories {
		if cat.Name == category {
			return categoryScore(cat, byConcept), nil
		}
	}
	return 0, nil
}

// Readiness computes the composite role-readiness score: 40% average
// mastery over exposed concepts, 30% concept coverage against the
// role's expectation, 30% overall answer consistency.
func (e *Evaluator) Readiness(ctx context.Context, learnerID, role string) (*Result, error) {
	recs, err := e.source.ExposedRecords(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	masteryScore := averageMastery(recs)

	coverage := 100 * float64(len(recs)) / float64(ExpectedConcepts(role))
	if coverage > 100 {
		coverage = 100
	}

	var successes, failures int
	for _, r := range recs {
		successes += r.Successes
		failures += r.Failures
	}
	consistency := 100 * float64(successes) / math.Max(1, float64(successes+failures))

	overall := masteryScore*masteryWeight + coverage*coverageWeight + consistency*consistencyWeight
	if overall < 0 {
		overall = 0
	}
	if overall > 100 {
		overall = 100
	}
	rounded := int(math.Round(overall))

	return &Result{
		Overall: rounded,
		Level:   levelFor(rounded),
		Role:    role,
		Breakdown: Breakdown{
			Mastery:     int(math.Round(masteryScore)),
			Coverage:    int(math.Round(coverage)),
			Consistency: int(math.Round(consistency)),
		},
	}, nil
}

// Gaps returns the categories scoring below the gap threshold, weakest
// first, with a focus recommendation.
func (e *Evaluator) Gaps(ctx context.Context, learnerID string) (*GapResult, error) {
	radar, err := e.SkillRadar(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	var gaps []CategoryScore
	for _, cs := range radar {
		if cs.Score < gapThreshold {
			gaps = append(gaps, cs)
		}
	}
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].Score < gaps[j].Score })

	result := &GapResult{Gaps: gaps, Recommendation: NoGapsMessage}
	if len(gaps) > 0 {
		result.Recommendation = fmt.Sprintf("Focus on %s first - currently at %d%%", gaps[0].Category, gaps[0].Score)
	}
	return result, nil
}

func indexByConcept(recs []*mastery.MasteryRecord) map[string]*mastery.MasteryRecord {
	m := make(map[string]*mastery.MasteryRecord, len(recs))
	for _, r := range recs {
		m[r.ConceptID] = r
	}
	return m
}

func categoryScore(cat skillgraph.Category, byConcept map[string]*mastery.MasteryRecord) int {
	sum, n := 0, 0
	for _, id := range cat.ConceptIDs {
		if r, ok := byConcept[id]; ok {
			sum += r.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

func averageMastery(recs []*mastery.MasteryRecord) float64 {
	if len(recs) == 0 {
		return 0
	}
	sum := 0
	for _, r := range recs {
		sum += r.Score
	}
	return float64(sum) / float64(len(recs))
}

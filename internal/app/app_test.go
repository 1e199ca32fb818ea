package app

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New(Options{
		DBPath: "file::memory:?cache=shared",
		Rand:   rand.New(rand.NewPCG(1, 2)),
	})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestNewWiresDefaults(t *testing.T) {
	a := openTestApp(t)

	assert.Equal(t, DefaultLearnerID, a.LearnerID)
	assert.Equal(t, 19, a.Graph.Len())
}

func TestRecordThroughFacadeFeedsAggregates(t *testing.T) {
	a := openTestApp(t)
	ctx := context.Background()

	// Practice two foundation concepts a few times.
	for range 3 {
		_, err := a.Mastery.RecordExposure(ctx, a.LearnerID, "design-principles", true)
		require.NoError(t, err)
	}
	rec, err := a.Mastery.RecordExposure(ctx, a.LearnerID, "ux-thinking", false)
	require.NoError(t, err)
	assert.Greater(t, rec.Score, 0)

	// Aggregates see the same records.
	stats, err := a.Readiness.Stats(ctx, a.LearnerID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPracticed)
	assert.Equal(t, 4, stats.TotalExposures)
	assert.Equal(t, 3, stats.TotalSuccesses)

	recs, err := a.Ranker.Recommend(ctx, a.LearnerID)
	require.NoError(t, err)
	assert.NotEmpty(t, recs)

	result, err := a.Readiness.Readiness(ctx, a.LearnerID, "frontend")
	require.NoError(t, err)
	assert.Greater(t, result.Overall, 0)
}

func TestProgressPercentage(t *testing.T) {
	a := openTestApp(t)
	ctx := context.Background()

	pct, err := a.ProgressPercentage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pct)
}

func TestNextConceptsStartsAtRoots(t *testing.T) {
	a := openTestApp(t)

	concepts, err := a.NextConcepts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, concepts)

	// With nothing mastered, only prerequisite-free concepts unlock.
	for _, c := range concepts {
		assert.Empty(t, c.Prerequisites, "concept %s should have no prerequisites", c.ID)
	}
}

func TestFileRegistryOverride(t *testing.T) {
	_, err := New(Options{
		DBPath:       "file::memory:?cache=shared",
		RegistryPath: "does-not-exist.json",
	})
	require.Error(t, err)
}

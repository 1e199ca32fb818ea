// Package app wires the store, skill graph, and domain services into a
// single facade the CLI and TUI consume.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pathprep/pathprep/internal/content"
	"github.com/pathprep/pathprep/internal/mastery"
	"github.com/pathprep/pathprep/internal/readiness"
	"github.com/pathprep/pathprep/internal/recommend"
	"github.com/pathprep/pathprep/internal/session"
	"github.com/pathprep/pathprep/internal/skillgraph"
	"github.com/pathprep/pathprep/internal/store"
)

// DefaultLearnerID is used when no learner is named. The tool is
// single-user by default; multiple learners share a database by passing
// --learner.
const DefaultLearnerID = "local"

// Options configures App construction.
type Options struct {
	// DBPath is the SQLite database path. Required.
	DBPath string

	// LearnerID defaults to DefaultLearnerID.
	LearnerID string

	// RegistryPath optionally overrides the embedded concept registry.
	RegistryPath string

	// Rand is the session sampling source. Nil seeds from the clock.
	Rand *rand.Rand
}

// App is the assembled application.
type App struct {
	Store     *store.Store
	Graph     *skillgraph.Graph
	Mastery   *mastery.Service
	Sessions  *session.Generator
	Ranker    *recommend.Ranker
	Readiness *readiness.Evaluator
	LearnerID string
}

// New opens the store and builds the full service graph.
func New(opts Options) (*App, error) {
	graph, err := loadGraph(opts.RegistryPath)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	learnerID := opts.LearnerID
	if learnerID == "" {
		learnerID = DefaultLearnerID
	}

	svc := mastery.NewService(st.MasteryRepo(), st.Events(), graph)

	return &App{
		Store:     st,
		Graph:     graph,
		Mastery:   svc,
		Sessions:  session.NewGenerator(svc, opts.Rand),
		Ranker:    recommend.NewRanker(svc, graph),
		Readiness: readiness.NewEvaluator(svc, graph, skillgraph.DefaultCategories()),
		LearnerID: learnerID,
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

func loadGraph(registryPath string) (*skillgraph.Graph, error) {
	if registryPath != "" {
		g, err := skillgraph.LoadFile(registryPath)
		if err != nil {
			return nil, fmt.Errorf("load concept registry: %w", err)
		}
		return g, nil
	}
	g, err := skillgraph.Default()
	if err != nil {
		return nil, fmt.Errorf("load embedded concept registry: %w", err)
	}
	return g, nil
}

// ProgressPercentage returns the learner's overall curriculum progress.
func (a *App) ProgressPercentage(ctx context.Context) (int, error) {
	completed, err := a.Mastery.CompletedSet(ctx, a.LearnerID)
	if err != nil {
		return 0, err
	}
	return a.Graph.ProgressPercentage(completed), nil
}

// NextConcepts returns the concepts unlocked by current mastery, in
// curriculum order.
func (a *App) NextConcepts(ctx context.Context) ([]skillgraph.Concept, error) {
	completed, err := a.Mastery.CompletedSet(ctx, a.LearnerID)
	if err != nil {
		return nil, err
	}
	return a.Graph.NextAvailable(completed), nil
}

// ContentProvider builds the configured content provider, wired to the
// store's event log. Falls back from explicit PATHPREP_* config to
// discovery of bare API key env vars.
func (a *App) ContentProvider(ctx context.Context) (content.Provider, error) {
	cfg := content.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := content.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return content.NewProvider(ctx, cfg, a.Store.Events())
}

// Now is the shared clock for command-level queries.
func (a *App) Now() time.Time {
	return a.Mastery.Now()
}

package skillgraph

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Graph holds the concept DAG with precomputed indices. Build one with
// New (or Default) and inject it where needed; there is no package-level
// graph state.
type Graph struct {
	concepts   []Concept
	byID       map[string]*Concept
	byPhase    map[Phase][]Concept
	roots      []Concept
	dependents map[string][]string
	topoOrder  []string
}

// New validates the concept set and builds a Graph from it.
// A duplicate ID, dangling prerequisite, or prerequisite cycle is a
// load-time error; queries on a built Graph never fail.
func New(concepts []Concept) (*Graph, error) {
	if err := validateConcepts(concepts); err != nil {
		return nil, err
	}

	g := &Graph{
		concepts:   slices.Clone(concepts),
		byID:       make(map[string]*Concept, len(concepts)),
		byPhase:    make(map[Phase][]Concept),
		dependents: make(map[string][]string),
	}

	for i := range g.concepts {
		g.byID[g.concepts[i].ID] = &g.concepts[i]
	}

	// Reverse edges.
	for i := range g.concepts {
		for _, prereqID := range g.concepts[i].Prerequisites {
			g.dependents[prereqID] = append(g.dependents[prereqID], g.concepts[i].ID)
		}
	}
	for _, deps := range g.dependents {
		sort.Strings(deps)
	}

	order, err := topoSort(g.concepts, g.byID)
	if err != nil {
		return nil, err
	}
	g.topoOrder = order

	topoIndex := make(map[string]int, len(order))
	for i, id := range order {
		topoIndex[id] = i
	}

	for i := range g.concepts {
		if len(g.concepts[i].Prerequisites) == 0 {
			g.roots = append(g.roots, g.concepts[i])
		}
	}
	sort.Slice(g.roots, func(i, j int) bool {
		return topoIndex[g.roots[i].ID] < topoIndex[g.roots[j].ID]
	})

	// Group by phase, ordered by topological position.
	for i := range g.concepts {
		c := g.concepts[i]
		g.byPhase[c.Phase] = append(g.byPhase[c.Phase], c)
	}
	for _, group := range g.byPhase {
		sort.Slice(group, func(i, j int) bool {
			return topoIndex[group[i].ID] < topoIndex[group[j].ID]
		})
	}

	return g, nil
}

// topoSort linearizes the prerequisite DAG using an iterative
// depth-first postorder with three-color marking. Revisiting a concept
// that is still on the traversal stack means the graph has a cycle.
func topoSort(concepts []Concept, byID map[string]*Concept) ([]string, error) {
	const (
		unvisited = iota
		inProgress
		done
	)

	color := make(map[string]int, len(concepts))
	order := make([]string, 0, len(concepts))

	starts := make([]string, len(concepts))
	for i := range concepts {
		starts[i] = concepts[i].ID
	}
	sort.Strings(starts)

	type frame struct {
		id   string
		next int // index into Prerequisites
	}

	for _, start := range starts {
		if color[start] != unvisited {
			continue
		}
		color[start] = inProgress
		stack := []frame{{id: start}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			c := byID[f.id]

			if f.next < len(c.Prerequisites) {
				prereq := c.Prerequisites[f.next]
				f.next++
				switch color[prereq] {
				case unvisited:
					color[prereq] = inProgress
					stack = append(stack, frame{id: prereq})
				case inProgress:
					return nil, fmt.Errorf("prerequisite cycle detected: %q is reachable from itself via %q", prereq, f.id)
				}
				continue
			}

			color[f.id] = done
			order = append(order, f.id)
			stack = stack[:len(stack)-1]
		}
	}

	return order, nil
}

// Get returns a concept by ID. The second return is false for unknown IDs.
func (g *Graph) Get(id string) (Concept, bool) {
	c, ok := g.byID[id]
	if !ok {
		return Concept{}, false
	}
	return *c, true
}

// All returns all concepts in registry order.
func (g *Graph) All() []Concept {
	return slices.Clone(g.concepts)
}

// Len returns the number of concepts in the graph.
func (g *Graph) Len() int {
	return len(g.concepts)
}

// Roots returns all concepts with no prerequisites.
func (g *Graph) Roots() []Concept {
	return slices.Clone(g.roots)
}

// ByPhase returns the concepts in a phase, in topological order.
func (g *Graph) ByPhase(p Phase) []Concept {
	return slices.Clone(g.byPhase[p])
}

// Prerequisites returns the direct prerequisite concepts of id.
// Unknown IDs yield nil.
func (g *Graph) Prerequisites(id string) []Concept {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Concept, 0, len(c.Prerequisites))
	for _, prereqID := range c.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns the concepts that directly require id.
func (g *Graph) Dependents(id string) []Concept {
	depIDs := g.dependents[id]
	result := make([]Concept, 0, len(depIDs))
	for _, depID := range depIDs {
		if c, ok := g.byID[depID]; ok {
			result = append(result, *c)
		}
	}
	return result
}

// CanUnlock reports whether every prerequisite of id is in completed.
// Unknown concept IDs are never unlockable; graph queries are total
// functions over the full ID space and do not error.
func (g *Graph) CanUnlock(id string, completed map[string]bool) bool {
	c, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range c.Prerequisites {
		if !completed[prereqID] {
			return false
		}
	}
	return true
}

// NextAvailable returns every concept not yet completed whose
// prerequisites are all completed, in topological order.
func (g *Graph) NextAvailable(completed map[string]bool) []Concept {
	var result []Concept
	for _, id := range g.topoOrder {
		if completed[id] {
			continue
		}
		if g.CanUnlock(id, completed) {
			result = append(result, *g.byID[id])
		}
	}
	return result
}

// TopologicalOrder returns a linearization of the concept IDs consistent
// with the prerequisite edges.
func (g *Graph) TopologicalOrder() []string {
	return slices.Clone(g.topoOrder)
}

// ReinforcementTargets returns the concepts to revisit while studying id:
// the explicit reinforces list when declared, otherwise the direct
// prerequisites. Unknown IDs yield nil.
func (g *Graph) ReinforcementTargets(id string) []string {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	if c.Reinforces != nil {
		return slices.Clone(c.Reinforces)
	}
	return slices.Clone(c.Prerequisites)
}

// ProgressPercentage returns the share of the curriculum in completed,
// rounded to the nearest integer. IDs not in the graph are ignored.
func (g *Graph) ProgressPercentage(completed map[string]bool) int {
	if len(g.concepts) == 0 {
		return 0
	}
	n := 0
	for id := range completed {
		if _, ok := g.byID[id]; ok && completed[id] {
			n++
		}
	}
	return int(math.Round(100 * float64(n) / float64(len(g.concepts))))
}

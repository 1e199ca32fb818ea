package skillgraph

import (
	"testing"
)

func testGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := Default()
	if err != nil {
		t.Fatalf("build default graph: %v", err)
	}
	return g
}

func TestGet_Exists(t *testing.T) {
	g := testGraph(t)
	c, ok := g.Get("css-box-model")
	if !ok {
		t.Fatal("expected css-box-model to exist")
	}
	if c.Title != "CSS Box Model" {
		t.Errorf("got title %q, want %q", c.Title, "CSS Box Model")
	}
	if c.Phase != PhaseHTMLCSS {
		t.Errorf("got phase %q, want %q", c.Phase, PhaseHTMLCSS)
	}
}

func TestGet_NotFound(t *testing.T) {
	g := testGraph(t)
	if _, ok := g.Get("nonexistent"); ok {
		t.Fatal("expected ok=false for unknown concept")
	}
}

func TestCanUnlock_NoPrerequisites(t *testing.T) {
	g := testGraph(t)
	if !g.CanUnlock("design-principles", map[string]bool{}) {
		t.Error("root concept should unlock with empty completed set")
	}
}

func TestCanUnlock_WithPrerequisites(t *testing.T) {
	g := testGraph(t)

	if g.CanUnlock("layout-reasoning", map[string]bool{}) {
		t.Error("layout-reasoning should be locked with nothing completed")
	}
	if !g.CanUnlock("layout-reasoning", map[string]bool{"design-principles": true}) {
		t.Error("layout-reasoning should unlock once design-principles is completed")
	}

	// css-box-model needs both html-semantic and layout-reasoning.
	partial := map[string]bool{"html-semantic": true}
	if g.CanUnlock("css-box-model", partial) {
		t.Error("css-box-model should stay locked with only one of two prerequisites")
	}
	partial["layout-reasoning"] = true
	if !g.CanUnlock("css-box-model", partial) {
		t.Error("css-box-model should unlock with both prerequisites")
	}
}

func TestCanUnlock_UnknownConcept(t *testing.T) {
	g := testGraph(t)
	if g.CanUnlock("nope", map[string]bool{"design-principles": true}) {
		t.Error("unknown concept must never unlock")
	}
}

func TestNextAvailable(t *testing.T) {
	g := testGraph(t)

	next := g.NextAvailable(map[string]bool{})
	if len(next) != 1 || next[0].ID != "design-principles" {
		t.Fatalf("fresh learner should see only the root, got %v", conceptIDs(next))
	}

	completed := map[string]bool{"design-principles": true}
	next = g.NextAvailable(completed)
	want := map[string]bool{"layout-reasoning": true, "ux-thinking": true}
	if len(next) != len(want) {
		t.Fatalf("got %v, want layout-reasoning and ux-thinking", conceptIDs(next))
	}
	for _, c := range next {
		if !want[c.ID] {
			t.Errorf("unexpected available concept %q", c.ID)
		}
		if completed[c.ID] {
			t.Errorf("completed concept %q must not be returned", c.ID)
		}
	}
}

func TestTopologicalOrder_RespectsPrerequisites(t *testing.T) {
	g := testGraph(t)
	order := g.TopologicalOrder()

	if len(order) != g.Len() {
		t.Fatalf("order has %d entries, want %d", len(order), g.Len())
	}

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, c := range g.All() {
		for _, prereq := range c.Prerequisites {
			if pos[prereq] >= pos[c.ID] {
				t.Errorf("%q appears before its prerequisite %q", c.ID, prereq)
			}
		}
	}
}

func TestGraph_Acyclic(t *testing.T) {
	// No concept may be reachable from itself via prerequisites.
	g := testGraph(t)
	for _, c := range g.All() {
		seen := map[string]bool{}
		stack := append([]string(nil), c.Prerequisites...)
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if id == c.ID {
				t.Fatalf("concept %q is reachable from itself", c.ID)
			}
			if seen[id] {
				continue
			}
			seen[id] = true
			if p, ok := g.Get(id); ok {
				stack = append(stack, p.Prerequisites...)
			}
		}
	}
}

func TestReinforcementTargets(t *testing.T) {
	g := testGraph(t)

	// Explicit list wins.
	got := g.ReinforcementTargets("js-loops")
	want := []string{"js-variables", "js-conditions"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("target[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Declared-empty list stays empty (first JS concept reinforces nothing).
	if got := g.ReinforcementTargets("js-variables"); len(got) != 0 {
		t.Errorf("js-variables declares an empty reinforces list, got %v", got)
	}

	// Absent list falls back to prerequisites.
	got = g.ReinforcementTargets("flexbox")
	if len(got) != 1 || got[0] != "css-box-model" {
		t.Errorf("flexbox should fall back to prerequisites, got %v", got)
	}

	if got := g.ReinforcementTargets("nope"); got != nil {
		t.Errorf("unknown concept should yield nil, got %v", got)
	}
}

func TestProgressPercentage(t *testing.T) {
	g := testGraph(t)

	if got := g.ProgressPercentage(map[string]bool{}); got != 0 {
		t.Errorf("empty set: got %d, want 0", got)
	}

	all := map[string]bool{}
	for _, c := range g.All() {
		all[c.ID] = true
	}
	if got := g.ProgressPercentage(all); got != 100 {
		t.Errorf("full set: got %d, want 100", got)
	}

	// Unknown IDs are ignored.
	if got := g.ProgressPercentage(map[string]bool{"bogus": true}); got != 0 {
		t.Errorf("unknown-only set: got %d, want 0", got)
	}

	// 9 of 19 concepts rounds to 47%.
	part := map[string]bool{}
	for i, c := range g.All() {
		if i < 9 {
			part[c.ID] = true
		}
	}
	if got := g.ProgressPercentage(part); got != 47 {
		t.Errorf("partial set: got %d, want 47", got)
	}
}

func TestByPhase_TopologicalWithinPhase(t *testing.T) {
	g := testGraph(t)
	pos := make(map[string]int)
	for i, id := range g.TopologicalOrder() {
		pos[id] = i
	}
	for _, phase := range AllPhases() {
		group := g.ByPhase(phase)
		if len(group) == 0 {
			t.Errorf("phase %q has no concepts", phase)
		}
		for i := 1; i < len(group); i++ {
			if pos[group[i].ID] < pos[group[i-1].ID] {
				t.Errorf("phase %q: %q appears after %q out of topological order", phase, group[i-1].ID, group[i].ID)
			}
		}
	}
}

func TestDependents(t *testing.T) {
	g := testGraph(t)
	deps := g.Dependents("css-box-model")
	want := map[string]bool{"flexbox": true, "css-grid": true}
	if len(deps) != len(want) {
		t.Fatalf("got %v, want flexbox and css-grid", conceptIDs(deps))
	}
	for _, d := range deps {
		if !want[d.ID] {
			t.Errorf("unexpected dependent %q", d.ID)
		}
	}
}

func conceptIDs(cs []Concept) []string {
	ids := make([]string, len(cs))
	for i, c := range cs {
		ids[i] = c.ID
	}
	return ids
}

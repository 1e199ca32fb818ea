package skillgraph

import (
	"strings"
	"testing"
)

func TestDefault_Builds(t *testing.T) {
	g, err := Default()
	if err != nil {
		t.Fatalf("embedded registry should build: %v", err)
	}
	if g.Len() != 19 {
		t.Errorf("got %d concepts, want 19", g.Len())
	}
}

func TestParseRegistry_RejectsMissingFields(t *testing.T) {
	data := []byte(`[{"id": "a", "title": "A"}]`)
	_, err := ParseRegistry(data)
	if err == nil {
		t.Fatal("expected schema validation error, got nil")
	}
	if !strings.Contains(err.Error(), "schema validation failed") {
		t.Errorf("error should mention schema validation, got: %v", err)
	}
}

func TestParseRegistry_RejectsUnknownFields(t *testing.T) {
	data := []byte(`[{
		"id": "a", "title": "A", "phase": "foundation",
		"prerequisites": [], "skills": [], "estimatedHours": 1,
		"unlocks": ["b"]
	}]`)
	if _, err := ParseRegistry(data); err == nil {
		t.Fatal("expected schema validation error for unknown field, got nil")
	}
}

func TestParseRegistry_RejectsInvalidJSON(t *testing.T) {
	if _, err := ParseRegistry([]byte(`{not json`)); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestParseRegistry_ReinforcesAbsentVsEmpty(t *testing.T) {
	data := []byte(`[
		{"id": "a", "title": "A", "phase": "foundation",
		 "prerequisites": [], "skills": [], "estimatedHours": 1},
		{"id": "b", "title": "B", "phase": "foundation",
		 "prerequisites": ["a"], "reinforces": [], "skills": [], "estimatedHours": 1}
	]`)
	concepts, err := ParseRegistry(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if concepts[0].Reinforces != nil {
		t.Error("absent reinforces key should decode as nil")
	}
	if concepts[1].Reinforces == nil {
		t.Error("empty reinforces array should decode as non-nil empty slice")
	}
}

func TestDefaultCategories_CoverKnownConcepts(t *testing.T) {
	g := testGraph(t)
	for _, cat := range DefaultCategories() {
		if len(cat.ConceptIDs) == 0 {
			t.Errorf("category %q is empty", cat.Name)
		}
		for _, id := range cat.ConceptIDs {
			if _, ok := g.Get(id); !ok {
				t.Errorf("category %q references unknown concept %q", cat.Name, id)
			}
		}
	}
}

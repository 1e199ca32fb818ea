package skillgraph

import (
	"strings"
	"testing"
)

func TestNew_DetectsCycle(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Title: "A", Phase: PhaseFoundation, Prerequisites: []string{"b"}},
		{ID: "b", Title: "B", Phase: PhaseFoundation, Prerequisites: []string{"a"}},
		{ID: "root", Title: "Root", Phase: PhaseFoundation},
	}
	_, err := New(concepts)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestNew_DetectsLongCycle(t *testing.T) {
	concepts := []Concept{
		{ID: "root", Title: "Root", Phase: PhaseFoundation},
		{ID: "a", Title: "A", Phase: PhaseFoundation, Prerequisites: []string{"c"}},
		{ID: "b", Title: "B", Phase: PhaseFoundation, Prerequisites: []string{"a"}},
		{ID: "c", Title: "C", Phase: PhaseFoundation, Prerequisites: []string{"b"}},
	}
	if _, err := New(concepts); err == nil {
		t.Fatal("expected error for three-node cycle, got nil")
	}
}

func TestNew_DetectsDanglingPrerequisite(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Title: "A", Phase: PhaseFoundation},
		{ID: "b", Title: "B", Phase: PhaseFoundation, Prerequisites: []string{"ghost"}},
	}
	_, err := New(concepts)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestNew_DetectsDuplicateID(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Title: "A", Phase: PhaseFoundation},
		{ID: "a", Title: "A again", Phase: PhaseFoundation},
	}
	_, err := New(concepts)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestNew_DetectsDanglingReinforces(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Title: "A", Phase: PhaseFoundation},
		{ID: "b", Title: "B", Phase: PhaseFoundation, Prerequisites: []string{"a"}, Reinforces: []string{"ghost"}},
	}
	if _, err := New(concepts); err == nil {
		t.Fatal("expected error for dangling reinforces target, got nil")
	}
}

func TestNew_RequiresRoot(t *testing.T) {
	concepts := []Concept{
		{ID: "a", Title: "A", Phase: PhaseFoundation, Prerequisites: []string{"b"}},
		{ID: "b", Title: "B", Phase: PhaseFoundation, Prerequisites: []string{"a"}},
	}
	_, err := New(concepts)
	if err == nil {
		t.Fatal("expected error for rootless graph, got nil")
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("error should mention missing roots, got: %v", err)
	}
}

package skillgraph

import (
	"fmt"
	"strings"
)

// validateConcepts performs structural checks on the concept set before
// the graph is built. Returns a combined error describing all problems
// found, or nil if valid. Cycle detection happens separately during the
// topological sort.
func validateConcepts(concepts []Concept) error {
	var errs []string

	idSet := make(map[string]bool, len(concepts))

	for _, c := range concepts {
		if c.ID == "" {
			errs = append(errs, "concept with empty ID")
			continue
		}
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept ID: %q", c.ID))
		}
		idSet[c.ID] = true
	}

	for _, c := range concepts {
		if c.Title == "" {
			errs = append(errs, fmt.Sprintf("concept %q has no title", c.ID))
		}
		if c.EstimatedHours < 0 {
			errs = append(errs, fmt.Sprintf("concept %q: estimated hours must be >= 0, got %d", c.ID, c.EstimatedHours))
		}
		for _, prereqID := range c.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("concept %q references nonexistent prerequisite %q", c.ID, prereqID))
			}
		}
		for _, reinfID := range c.Reinforces {
			if !idSet[reinfID] {
				errs = append(errs, fmt.Sprintf("concept %q reinforces nonexistent concept %q", c.ID, reinfID))
			}
		}
	}

	hasRoot := false
	for _, c := range concepts {
		if len(c.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if len(concepts) > 0 && !hasRoot {
		errs = append(errs, "no root concepts found (at least one concept must have no prerequisites)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("concept registry validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

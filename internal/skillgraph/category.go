package skillgraph

// Category groups concepts for aggregation (radar charts, gap analysis).
// Categories are not part of the prerequisite graph.
type Category struct {
	Name       string
	ConceptIDs []string
}

// CategoryMap is an ordered list of categories. Order is the fixed
// display order for radar output.
type CategoryMap []Category

// Names returns the category names in declared order.
func (m CategoryMap) Names() []string {
	names := make([]string, len(m))
	for i, c := range m {
		names[i] = c.Name
	}
	return names
}

// Concepts returns the concept IDs of the named category, or nil if the
// category is not defined.
func (m CategoryMap) Concepts(name string) []string {
	for _, c := range m {
		if c.Name == name {
			return c.ConceptIDs
		}
	}
	return nil
}

// DefaultCategories groups the default frontend curriculum for
// aggregation.
func DefaultCategories() CategoryMap {
	return CategoryMap{
		{Name: "Foundation", ConceptIDs: []string{"design-principles", "layout-reasoning", "ux-thinking"}},
		{Name: "HTML/CSS", ConceptIDs: []string{"html-semantic", "css-box-model", "flexbox", "css-grid", "responsive-design"}},
		{Name: "JS Basics", ConceptIDs: []string{"js-variables", "js-operators", "js-conditions", "js-loops"}},
		{Name: "JS Advanced", ConceptIDs: []string{"js-functions", "js-closures", "js-arrays", "js-objects"}},
		{Name: "DOM & Async", ConceptIDs: []string{"dom-basics", "events", "async-js"}},
	}
}

package skillgraph

// Phase is a coarse curriculum stage a concept belongs to.
type Phase string

const (
	PhaseFoundation Phase = "foundation"
	PhaseHTMLCSS    Phase = "html-css"
	PhaseJavaScript Phase = "javascript"
)

// AllPhases returns all phases in curriculum order.
func AllPhases() []Phase {
	return []Phase{
		PhaseFoundation,
		PhaseHTMLCSS,
		PhaseJavaScript,
	}
}

// PhaseDisplayName returns a human-readable name for a phase.
func PhaseDisplayName(p Phase) string {
	switch p {
	case PhaseFoundation:
		return "Foundation"
	case PhaseHTMLCSS:
		return "HTML & CSS"
	case PhaseJavaScript:
		return "JavaScript"
	default:
		return string(p)
	}
}

// Concept is a single learnable unit in the curriculum graph.
// Concepts are immutable once the graph is built.
type Concept struct {
	ID             string
	Title          string
	Phase          Phase
	Prerequisites  []string
	Reinforces     []string // Concepts to revisit while studying this one. Nil means "use prerequisites".
	Skills         []string
	EstimatedHours int
}

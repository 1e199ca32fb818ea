package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pathprep/pathprep/internal/skillgraph"
)

// Explanation is a structured concept walkthrough for a learner.
type Explanation struct {
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"keyPoints"`
	Example     string   `json:"example"`
	PracticeTip string   `json:"practiceTip"`
}

const explainSystemPrompt = `You are a web development tutor helping a ` +
	`self-taught learner prepare for junior developer roles. Explain ` +
	`concepts plainly, with small runnable examples. Assume the learner ` +
	`knows everything that comes before this concept in a typical ` +
	`HTML/CSS/JavaScript curriculum and nothing after it.`

// explanationSchema constrains provider output for Explain.
var explanationSchema = &Schema{
	Name:        "concept-explanation",
	Description: "A structured explanation of one web development concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two or three sentences introducing the concept",
			},
			"keyPoints": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "The three to five most important things to remember",
			},
			"example": map[string]any{
				"type":        "string",
				"description": "A short, self-contained code example",
			},
			"practiceTip": map[string]any{
				"type":        "string",
				"description": "One concrete exercise the learner can do right now",
			},
		},
		"required":             []any{"summary", "keyPoints", "example", "practiceTip"},
		"additionalProperties": false,
	},
}

// Explain asks the provider for a structured explanation of a concept.
func Explain(ctx context.Context, p Provider, c skillgraph.Concept) (*Explanation, error) {
	ctx = WithConcept(ctx, c.ID)

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Explain the concept %q (%s phase).\n", c.Title, skillgraph.PhaseDisplayName(c.Phase))
	if len(c.Skills) > 0 {
		fmt.Fprintf(&prompt, "It covers: %s.\n", strings.Join(c.Skills, ", "))
	}

	resp, err := p.Generate(ctx, Request{
		System:    explainSystemPrompt,
		Messages:  []Message{{Role: RoleUser, Content: prompt.String()}},
		Schema:    explanationSchema,
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("generate explanation: %w", err)
	}

	var ex Explanation
	if err := json.Unmarshal(resp.Content, &ex); err != nil {
		return nil, &ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &ex, nil
}

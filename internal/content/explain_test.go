package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/pathprep/pathprep/internal/skillgraph"
)

var flexboxConcept = skillgraph.Concept{
	ID:     "flexbox",
	Title:  "Flexbox Layout",
	Phase:  skillgraph.PhaseHTMLCSS,
	Skills: []string{"flex container", "justify-content", "align-items"},
}

func TestExplainParsesStructuredResponse(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{
			"summary": "Flexbox is a one-dimensional layout model.",
			"keyPoints": ["main axis vs cross axis", "justify-content", "align-items"],
			"example": ".row { display: flex; }",
			"practiceTip": "Rebuild a navbar using only flexbox."
		}`),
	})

	ex, err := Explain(context.Background(), mock, flexboxConcept)
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if ex.Summary == "" || ex.Example == "" || ex.PracticeTip == "" {
		t.Errorf("incomplete explanation: %+v", ex)
	}
	if len(ex.KeyPoints) != 3 {
		t.Errorf("key points = %d, want 3", len(ex.KeyPoints))
	}

	// The prompt should name the concept and its skills.
	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Flexbox Layout") || !strings.Contains(prompt, "justify-content") {
		t.Errorf("prompt missing concept details: %q", prompt)
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "concept-explanation" {
		t.Error("expected the concept-explanation schema on the request")
	}
}

func TestExplainMalformedResponse(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`not even json`),
	})

	_, err := Explain(context.Background(), mock, flexboxConcept)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestExplainProviderErrorPropagates(t *testing.T) {
	mock := NewMockProvider() // empty queue yields ErrProviderUnavailable

	_, err := Explain(context.Background(), mock, flexboxConcept)
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

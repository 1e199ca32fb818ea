package content

import "context"

type contextKey string

const conceptKey contextKey = "content_concept"

// WithConcept attaches the concept being explained to the context so the
// logging decorator can tag the event.
func WithConcept(ctx context.Context, conceptID string) context.Context {
	return context.WithValue(ctx, conceptKey, conceptID)
}

// ConceptFrom extracts the concept ID from the context.
func ConceptFrom(ctx context.Context) string {
	if v, ok := ctx.Value(conceptKey).(string); ok {
		return v
	}
	return "unknown"
}

// Package content generates learner-facing explanations through LLM
// providers behind a single Provider interface, with retry, event
// logging, and schema validation layered as decorators.
package content

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over content-generation backends.
type Provider interface {
	// Generate sends a prompt and returns structured output. When the
	// request carries a Schema, the provider uses its native structured
	// output mechanism and the response Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider targets.
	ModelID() string
}

// Request describes one content-generation call.
type Request struct {
	// System sets the role and constraints for the model.
	System string

	// Messages is the conversation. Explanation requests are
	// single-turn, so this is usually one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must satisfy.
	// When nil the response Content is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected back.
type Schema struct {
	// Name identifies the schema, kebab-case. Used as the tool or
	// schema name where the provider API wants one.
	Name string

	// Description guides the model toward the intended shape.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request had a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

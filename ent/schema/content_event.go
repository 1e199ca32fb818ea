package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentEvent records a request to the explanation-content provider for
// cost and latency accounting.
type ContentEvent struct {
	ent.Schema
}

func (ContentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ContentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").NotEmpty(),
		field.String("model"),
		field.String("concept_id"),
		field.Int("input_tokens").Default(0),
		field.Int("output_tokens").Default(0),
		field.Int64("latency_ms").Default(0),
		field.Bool("success"),
		field.String("error_message").Optional(),
	}
}

func (ContentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept_id"),
	}
}

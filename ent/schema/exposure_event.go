package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExposureEvent records one attempt at a concept, append-only. The
// MasteryRecord row is the source of truth for current state; this log
// exists for audit, accuracy queries, and analytics.
type ExposureEvent struct {
	ent.Schema
}

func (ExposureEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExposureEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.Bool("success"),
		field.Int("score_after").Min(0).Max(100),
		field.String("session_id").Optional(),
	}
}

func (ExposureEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "concept_id"),
	}
}

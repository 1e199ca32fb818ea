package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord holds one learner's progress on one concept. The
// (learner_id, concept_id) pair is unique so exposure updates can be a
// single atomic upsert.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.Int("exposures").NonNegative().Default(0),
		field.Int("successes").NonNegative().Default(0),
		field.Int("failures").NonNegative().Default(0),
		field.Int("mastery").Min(0).Max(100).Default(0),
		field.String("status").Default("not_started"),
		field.Time("last_practiced_at").Optional().Nillable(),
		field.Time("next_review_at").Optional().Nillable(),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "concept_id").Unique(),
		index.Fields("learner_id", "next_review_at"),
	}
}

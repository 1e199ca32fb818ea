// Code generated by ent, DO NOT EDIT.

package exposureevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/pathprep/pathprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldLearnerID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldConceptID, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldSuccess, v))
}

// ScoreAfter applies equality check predicate on the "score_after" field. It's identical to ScoreAfterEQ.
func ScoreAfter(v int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldScoreAfter, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContainsFold(FieldConceptID, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ScoreAfterEQ applies the EQ predicate on the "score_after" field.
func ScoreAfterEQ(v int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldScoreAfter, v))
}

// ScoreAfterNEQ applies the NEQ predicate on the "score_after" field.
func ScoreAfterNEQ(v int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldScoreAfter, v))
}

// ScoreAfterIn applies the In predicate on the "score_after" field.
func ScoreAfterIn(vs ...int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldScoreAfter, vs...))
}

// ScoreAfterNotIn applies the NotIn predicate on the "score_after" field.
func ScoreAfterNotIn(vs ...int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldScoreAfter, vs...))
}

// ScoreAfterGT applies the GT predicate on the "score_after" field.
func ScoreAfterGT(v int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldScoreAfter, v))
}

// ScoreAfterGTE applies the GTE predicate on the "score_after" field.
func ScoreAfterGTE(v int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldScoreAfter, v))
}

// ScoreAfterLT applies the LT predicate on the "score_after" field.
func ScoreAfterLT(v int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldScoreAfter, v))
}

// ScoreAfterLTE applies the LTE predicate on the "score_after" field.
func ScoreAfterLTE(v int) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldScoreAfter, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExposureEvent) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExposureEvent) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExposureEvent) predicate.ExposureEvent {
	return predicate.ExposureEvent(sql.NotPredicates(p))
}

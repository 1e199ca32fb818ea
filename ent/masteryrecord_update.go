// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pathprep/pathprep/ent/masteryrecord"
	"github.com/pathprep/pathprep/ent/predicate"
)

// MasteryRecordUpdate is the builder for updating MasteryRecord entities.
type MasteryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdate) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *MasteryRecordUpdate) SetLearnerID(v string) *MasteryRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLearnerID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryRecordUpdate) SetConceptID(v string) *MasteryRecordUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableConceptID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetExposures sets the "exposures" field.
func (_u *MasteryRecordUpdate) SetExposures(v int) *MasteryRecordUpdate {
	_u.mutation.ResetExposures()
	_u.mutation.SetExposures(v)
	return _u
}

// SetNillableExposures sets the "exposures" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableExposures(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetExposures(*v)
	}
	return _u
}

// AddExposures adds value to the "exposures" field.
func (_u *MasteryRecordUpdate) AddExposures(v int) *MasteryRecordUpdate {
	_u.mutation.AddExposures(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *MasteryRecordUpdate) SetSuccesses(v int) *MasteryRecordUpdate {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableSuccesses(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *MasteryRecordUpdate) AddSuccesses(v int) *MasteryRecordUpdate {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetFailures sets the "failures" field.
func (_u *MasteryRecordUpdate) SetFailures(v int) *MasteryRecordUpdate {
	_u.mutation.ResetFailures()
	_u.mutation.SetFailures(v)
	return _u
}

// SetNillableFailures sets the "failures" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableFailures(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetFailures(*v)
	}
	return _u
}

// AddFailures adds value to the "failures" field.
func (_u *MasteryRecordUpdate) AddFailures(v int) *MasteryRecordUpdate {
	_u.mutation.AddFailures(v)
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *MasteryRecordUpdate) SetMastery(v int) *MasteryRecordUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableMastery(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *MasteryRecordUpdate) AddMastery(v int) *MasteryRecordUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MasteryRecordUpdate) SetStatus(v string) *MasteryRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableStatus(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *MasteryRecordUpdate) SetLastPracticedAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLastPracticedAt(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *MasteryRecordUpdate) ClearLastPracticedAt() *MasteryRecordUpdate {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *MasteryRecordUpdate) SetNextReviewAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableNextReviewAt(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *MasteryRecordUpdate) ClearNextReviewAt() *MasteryRecordUpdate {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdate) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := masteryrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Exposures(); ok {
		if err := masteryrecord.ExposuresValidator(v); err != nil {
			return &ValidationError{Name: "exposures", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.exposures": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Successes(); ok {
		if err := masteryrecord.SuccessesValidator(v); err != nil {
			return &ValidationError{Name: "successes", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.successes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Failures(); ok {
		if err := masteryrecord.FailuresValidator(v); err != nil {
			return &ValidationError{Name: "failures", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.failures": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mastery(); ok {
		if err := masteryrecord.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.mastery": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(masteryrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryrecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exposures(); ok {
		_spec.SetField(masteryrecord.FieldExposures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExposures(); ok {
		_spec.AddField(masteryrecord.FieldExposures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(masteryrecord.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(masteryrecord.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failures(); ok {
		_spec.SetField(masteryrecord.FieldFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailures(); ok {
		_spec.AddField(masteryrecord.FieldFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(masteryrecord.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(masteryrecord.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(masteryrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(masteryrecord.FieldLastPracticedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(masteryrecord.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(masteryrecord.FieldNextReviewAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryRecordUpdateOne is the builder for updating a single MasteryRecord entity.
type MasteryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *MasteryRecordUpdateOne) SetLearnerID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLearnerID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryRecordUpdateOne) SetConceptID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableConceptID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetExposures sets the "exposures" field.
func (_u *MasteryRecordUpdateOne) SetExposures(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetExposures()
	_u.mutation.SetExposures(v)
	return _u
}

// SetNillableExposures sets the "exposures" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableExposures(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetExposures(*v)
	}
	return _u
}

// AddExposures adds value to the "exposures" field.
func (_u *MasteryRecordUpdateOne) AddExposures(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddExposures(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *MasteryRecordUpdateOne) SetSuccesses(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableSuccesses(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *MasteryRecordUpdateOne) AddSuccesses(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetFailures sets the "failures" field.
func (_u *MasteryRecordUpdateOne) SetFailures(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetFailures()
	_u.mutation.SetFailures(v)
	return _u
}

// SetNillableFailures sets the "failures" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableFailures(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetFailures(*v)
	}
	return _u
}

// AddFailures adds value to the "failures" field.
func (_u *MasteryRecordUpdateOne) AddFailures(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddFailures(v)
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *MasteryRecordUpdateOne) SetMastery(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableMastery(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *MasteryRecordUpdateOne) AddMastery(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MasteryRecordUpdateOne) SetStatus(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableStatus(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *MasteryRecordUpdateOne) SetLastPracticedAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLastPracticedAt(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *MasteryRecordUpdateOne) ClearLastPracticedAt() *MasteryRecordUpdateOne {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *MasteryRecordUpdateOne) SetNextReviewAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableNextReviewAt(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *MasteryRecordUpdateOne) ClearNextReviewAt() *MasteryRecordUpdateOne {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdateOne) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdateOne) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryRecordUpdateOne) Select(field string, fields ...string) *MasteryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryRecord entity.
func (_u *MasteryRecordUpdateOne) Save(ctx context.Context) (*MasteryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) SaveX(ctx context.Context) *MasteryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := masteryrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Exposures(); ok {
		if err := masteryrecord.ExposuresValidator(v); err != nil {
			return &ValidationError{Name: "exposures", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.exposures": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Successes(); ok {
		if err := masteryrecord.SuccessesValidator(v); err != nil {
			return &ValidationError{Name: "successes", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.successes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Failures(); ok {
		if err := masteryrecord.FailuresValidator(v); err != nil {
			return &ValidationError{Name: "failures", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.failures": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mastery(); ok {
		if err := masteryrecord.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.mastery": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasteryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryrecord.FieldID)
		for _, f := range fields {
			if !masteryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(masteryrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryrecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exposures(); ok {
		_spec.SetField(masteryrecord.FieldExposures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExposures(); ok {
		_spec.AddField(masteryrecord.FieldExposures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(masteryrecord.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(masteryrecord.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failures(); ok {
		_spec.SetField(masteryrecord.FieldFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailures(); ok {
		_spec.AddField(masteryrecord.FieldFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(masteryrecord.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(masteryrecord.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(masteryrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(masteryrecord.FieldLastPracticedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(masteryrecord.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(masteryrecord.FieldNextReviewAt, field.TypeTime)
	}
	_node = &MasteryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pathprep/pathprep/ent/exposureevent"
	"github.com/pathprep/pathprep/ent/predicate"
)

// ExposureEventUpdate is the builder for updating ExposureEvent entities.
type ExposureEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExposureEventMutation
}

// Where appends a list predicates to the ExposureEventUpdate builder.
func (_u *ExposureEventUpdate) Where(ps ...predicate.ExposureEvent) *ExposureEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ExposureEventUpdate) SetLearnerID(v string) *ExposureEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ExposureEventUpdate) SetNillableLearnerID(v *string) *ExposureEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ExposureEventUpdate) SetConceptID(v string) *ExposureEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ExposureEventUpdate) SetNillableConceptID(v *string) *ExposureEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ExposureEventUpdate) SetSuccess(v bool) *ExposureEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ExposureEventUpdate) SetNillableSuccess(v *bool) *ExposureEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetScoreAfter sets the "score_after" field.
func (_u *ExposureEventUpdate) SetScoreAfter(v int) *ExposureEventUpdate {
	_u.mutation.ResetScoreAfter()
	_u.mutation.SetScoreAfter(v)
	return _u
}

// SetNillableScoreAfter sets the "score_after" field if the given value is not nil.
func (_u *ExposureEventUpdate) SetNillableScoreAfter(v *int) *ExposureEventUpdate {
	if v != nil {
		_u.SetScoreAfter(*v)
	}
	return _u
}

// AddScoreAfter adds value to the "score_after" field.
func (_u *ExposureEventUpdate) AddScoreAfter(v int) *ExposureEventUpdate {
	_u.mutation.AddScoreAfter(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExposureEventUpdate) SetSessionID(v string) *ExposureEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExposureEventUpdate) SetNillableSessionID(v *string) *ExposureEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ExposureEventUpdate) ClearSessionID() *ExposureEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ExposureEventMutation object of the builder.
func (_u *ExposureEventUpdate) Mutation() *ExposureEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExposureEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExposureEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExposureEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExposureEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExposureEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := exposureevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ExposureEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := exposureevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ExposureEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScoreAfter(); ok {
		if err := exposureevent.ScoreAfterValidator(v); err != nil {
			return &ValidationError{Name: "score_after", err: fmt.Errorf(`ent: validator failed for field "ExposureEvent.score_after": %w`, err)}
		}
	}
	return nil
}

func (_u *ExposureEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exposureevent.Table, exposureevent.Columns, sqlgraph.NewFieldSpec(exposureevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(exposureevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(exposureevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(exposureevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ScoreAfter(); ok {
		_spec.SetField(exposureevent.FieldScoreAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreAfter(); ok {
		_spec.AddField(exposureevent.FieldScoreAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(exposureevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(exposureevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exposureevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExposureEventUpdateOne is the builder for updating a single ExposureEvent entity.
type ExposureEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExposureEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ExposureEventUpdateOne) SetLearnerID(v string) *ExposureEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ExposureEventUpdateOne) SetNillableLearnerID(v *string) *ExposureEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ExposureEventUpdateOne) SetConceptID(v string) *ExposureEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ExposureEventUpdateOne) SetNillableConceptID(v *string) *ExposureEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ExposureEventUpdateOne) SetSuccess(v bool) *ExposureEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ExposureEventUpdateOne) SetNillableSuccess(v *bool) *ExposureEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetScoreAfter sets the "score_after" field.
func (_u *ExposureEventUpdateOne) SetScoreAfter(v int) *ExposureEventUpdateOne {
	_u.mutation.ResetScoreAfter()
	_u.mutation.SetScoreAfter(v)
	return _u
}

// SetNillableScoreAfter sets the "score_after" field if the given value is not nil.
func (_u *ExposureEventUpdateOne) SetNillableScoreAfter(v *int) *ExposureEventUpdateOne {
	if v != nil {
		_u.SetScoreAfter(*v)
	}
	return _u
}

// AddScoreAfter adds value to the "score_after" field.
func (_u *ExposureEventUpdateOne) AddScoreAfter(v int) *ExposureEventUpdateOne {
	_u.mutation.AddScoreAfter(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExposureEventUpdateOne) SetSessionID(v string) *ExposureEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExposureEventUpdateOne) SetNillableSessionID(v *string) *ExposureEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ExposureEventUpdateOne) ClearSessionID() *ExposureEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ExposureEventMutation object of the builder.
func (_u *ExposureEventUpdateOne) Mutation() *ExposureEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExposureEventUpdate builder.
func (_u *ExposureEventUpdateOne) Where(ps ...predicate.ExposureEvent) *ExposureEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExposureEventUpdateOne) Select(field string, fields ...string) *ExposureEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExposureEvent entity.
func (_u *ExposureEventUpdateOne) Save(ctx context.Context) (*ExposureEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExposureEventUpdateOne) SaveX(ctx context.Context) *ExposureEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExposureEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExposureEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExposureEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := exposureevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ExposureEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := exposureevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ExposureEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScoreAfter(); ok {
		if err := exposureevent.ScoreAfterValidator(v); err != nil {
			return &ValidationError{Name: "score_after", err: fmt.Errorf(`ent: validator failed for field "ExposureEvent.score_after": %w`, err)}
		}
	}
	return nil
}

func (_u *ExposureEventUpdateOne) sqlSave(ctx context.Context) (_node *ExposureEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exposureevent.Table, exposureevent.Columns, sqlgraph.NewFieldSpec(exposureevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExposureEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exposureevent.FieldID)
		for _, f := range fields {
			if !exposureevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exposureevent.FieldID {
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
		_spec.SetField(exposureevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(exposureevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(exposureevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ScoreAfter(); ok {
		_spec.SetField(exposureevent.FieldScoreAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreAfter(); ok {
		_spec.AddField(exposureevent.FieldScoreAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(exposureevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(exposureevent.FieldSessionID, field.TypeString)
	}
	_node = &ExposureEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exposureevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

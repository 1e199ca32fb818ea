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
	"github.com/pathprep/pathprep/ent/exposureevent"
)

// ExposureEventCreate is the builder for creating a ExposureEvent entity.
type ExposureEventCreate struct {
	config
	mutation *ExposureEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *ExposureEventCreate) SetSequence(v int64) *ExposureEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExposureEventCreate) SetTimestamp(v time.Time) *ExposureEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExposureEventCreate) SetNillableTimestamp(v *time.Time) *ExposureEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *ExposureEventCreate) SetLearnerID(v string) *ExposureEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *ExposureEventCreate) SetConceptID(v string) *ExposureEventCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ExposureEventCreate) SetSuccess(v bool) *ExposureEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetScoreAfter sets the "score_after" field.
func (_c *ExposureEventCreate) SetScoreAfter(v int) *ExposureEventCreate {
	_c.mutation.SetScoreAfter(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExposureEventCreate) SetSessionID(v string) *ExposureEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ExposureEventCreate) SetNillableSessionID(v *string) *ExposureEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the ExposureEventMutation object of the builder.
func (_c *ExposureEventCreate) Mutation() *ExposureEventMutation {
	return _c.mutation
}

// Save creates the ExposureEvent in the database.
func (_c *ExposureEventCreate) Save(ctx context.Context) (*ExposureEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExposureEventCreate) SaveX(ctx context.Context) *ExposureEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExposureEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExposureEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExposureEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := exposureevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExposureEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExposureEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExposureEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ExposureEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := exposureevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ExposureEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "ExposureEvent.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := exposureevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ExposureEvent.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ExposureEvent.success"`)}
	}
	if _, ok := _c.mutation.ScoreAfter(); !ok {
		return &ValidationError{Name: "score_after", err: errors.New(`ent: missing required field "ExposureEvent.score_after"`)}
	}
	if v, ok := _c.mutation.ScoreAfter(); ok {
		if err := exposureevent.ScoreAfterValidator(v); err != nil {
			return &ValidationError{Name: "score_after", err: fmt.Errorf(`ent: validator failed for field "ExposureEvent.score_after": %w`, err)}
		}
	}
	return nil
}

func (_c *ExposureEventCreate) sqlSave(ctx context.Context) (*ExposureEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExposureEventCreate) createSpec() (*ExposureEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExposureEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exposureevent.Table, sqlgraph.NewFieldSpec(exposureevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(exposureevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(exposureevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(exposureevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(exposureevent.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(exposureevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ScoreAfter(); ok {
		_spec.SetField(exposureevent.FieldScoreAfter, field.TypeInt, value)
		_node.ScoreAfter = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(exposureevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExposureEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExposureEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ExposureEventCreate) OnConflict(opts ...sql.ConflictOption) *ExposureEventUpsertOne {
	_c.conflict = opts
	return &ExposureEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExposureEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExposureEventCreate) OnConflictColumns(columns ...string) *ExposureEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExposureEventUpsertOne{
		create: _c,
	}
}

type (
	// ExposureEventUpsertOne is the builder for "upsert"-ing
	//  one ExposureEvent node.
	ExposureEventUpsertOne struct {
		create *ExposureEventCreate
	}

	// ExposureEventUpsert is the "OnConflict" setter.
	ExposureEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearnerID sets the "learner_id" field.
func (u *ExposureEventUpsert) SetLearnerID(v string) *ExposureEventUpsert {
	u.Set(exposureevent.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *ExposureEventUpsert) UpdateLearnerID() *ExposureEventUpsert {
	u.SetExcluded(exposureevent.FieldLearnerID)
	return u
}

// SetConceptID sets the "concept_id" field.
func (u *ExposureEventUpsert) SetConceptID(v string) *ExposureEventUpsert {
	u.Set(exposureevent.FieldConceptID, v)
	return u
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *ExposureEventUpsert) UpdateConceptID() *ExposureEventUpsert {
	u.SetExcluded(exposureevent.FieldConceptID)
	return u
}

// SetSuccess sets the "success" field.
func (u *ExposureEventUpsert) SetSuccess(v bool) *ExposureEventUpsert {
	u.Set(exposureevent.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ExposureEventUpsert) UpdateSuccess() *ExposureEventUpsert {
	u.SetExcluded(exposureevent.FieldSuccess)
	return u
}

// SetScoreAfter sets the "score_after" field.
func (u *ExposureEventUpsert) SetScoreAfter(v int) *ExposureEventUpsert {
	u.Set(exposureevent.FieldScoreAfter, v)
	return u
}

// UpdateScoreAfter sets the "score_after" field to the value that was provided on create.
func (u *ExposureEventUpsert) UpdateScoreAfter() *ExposureEventUpsert {
	u.SetExcluded(exposureevent.FieldScoreAfter)
	return u
}

// AddScoreAfter adds v to the "score_after" field.
func (u *ExposureEventUpsert) AddScoreAfter(v int) *ExposureEventUpsert {
	u.Add(exposureevent.FieldScoreAfter, v)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *ExposureEventUpsert) SetSessionID(v string) *ExposureEventUpsert {
	u.Set(exposureevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ExposureEventUpsert) UpdateSessionID() *ExposureEventUpsert {
	u.SetExcluded(exposureevent.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *ExposureEventUpsert) ClearSessionID() *ExposureEventUpsert {
	u.SetNull(exposureevent.FieldSessionID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExposureEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExposureEventUpsertOne) UpdateNewValues() *ExposureEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(exposureevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(exposureevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExposureEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExposureEventUpsertOne) Ignore() *ExposureEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExposureEventUpsertOne) DoNothing() *ExposureEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExposureEventCreate.OnConflict
// documentation for more info.
func (u *ExposureEventUpsertOne) Update(set func(*ExposureEventUpsert)) *ExposureEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExposureEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *ExposureEventUpsertOne) SetLearnerID(v string) *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *ExposureEventUpsertOne) UpdateLearnerID() *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateLearnerID()
	})
}

// SetConceptID sets the "concept_id" field.
func (u *ExposureEventUpsertOne) SetConceptID(v string) *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetConceptID(v)
	})
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *ExposureEventUpsertOne) UpdateConceptID() *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateConceptID()
	})
}

// SetSuccess sets the "success" field.
func (u *ExposureEventUpsertOne) SetSuccess(v bool) *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ExposureEventUpsertOne) UpdateSuccess() *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateSuccess()
	})
}

// SetScoreAfter sets the "score_after" field.
func (u *ExposureEventUpsertOne) SetScoreAfter(v int) *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetScoreAfter(v)
	})
}

// AddScoreAfter adds v to the "score_after" field.
func (u *ExposureEventUpsertOne) AddScoreAfter(v int) *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.AddScoreAfter(v)
	})
}

// UpdateScoreAfter sets the "score_after" field to the value that was provided on create.
func (u *ExposureEventUpsertOne) UpdateScoreAfter() *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateScoreAfter()
	})
}

// SetSessionID sets the "session_id" field.
func (u *ExposureEventUpsertOne) SetSessionID(v string) *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ExposureEventUpsertOne) UpdateSessionID() *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *ExposureEventUpsertOne) ClearSessionID() *ExposureEventUpsertOne {
	return u.Update(func(s *ExposureEventUpsert) {
		s.ClearSessionID()
	})
}

// Exec executes the query.
func (u *ExposureEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExposureEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExposureEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExposureEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExposureEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExposureEventCreateBulk is the builder for creating many ExposureEvent entities in bulk.
type ExposureEventCreateBulk struct {
	config
	err      error
	builders []*ExposureEventCreate
	conflict []sql.ConflictOption
}

// Save creates the ExposureEvent entities in the database.
func (_c *ExposureEventCreateBulk) Save(ctx context.Context) ([]*ExposureEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExposureEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExposureEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExposureEventCreateBulk) SaveX(ctx context.Context) []*ExposureEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExposureEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExposureEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExposureEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExposureEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ExposureEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExposureEventUpsertBulk {
	_c.conflict = opts
	return &ExposureEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExposureEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExposureEventCreateBulk) OnConflictColumns(columns ...string) *ExposureEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExposureEventUpsertBulk{
		create: _c,
	}
}

// ExposureEventUpsertBulk is the builder for "upsert"-ing
// a bulk of ExposureEvent nodes.
type ExposureEventUpsertBulk struct {
	create *ExposureEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExposureEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExposureEventUpsertBulk) UpdateNewValues() *ExposureEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(exposureevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(exposureevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExposureEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExposureEventUpsertBulk) Ignore() *ExposureEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExposureEventUpsertBulk) DoNothing() *ExposureEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExposureEventCreateBulk.OnConflict
// documentation for more info.
func (u *ExposureEventUpsertBulk) Update(set func(*ExposureEventUpsert)) *ExposureEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExposureEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *ExposureEventUpsertBulk) SetLearnerID(v string) *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *ExposureEventUpsertBulk) UpdateLearnerID() *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateLearnerID()
	})
}

// SetConceptID sets the "concept_id" field.
func (u *ExposureEventUpsertBulk) SetConceptID(v string) *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetConceptID(v)
	})
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *ExposureEventUpsertBulk) UpdateConceptID() *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateConceptID()
	})
}

// SetSuccess sets the "success" field.
func (u *ExposureEventUpsertBulk) SetSuccess(v bool) *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ExposureEventUpsertBulk) UpdateSuccess() *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateSuccess()
	})
}

// SetScoreAfter sets the "score_after" field.
func (u *ExposureEventUpsertBulk) SetScoreAfter(v int) *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetScoreAfter(v)
	})
}

// AddScoreAfter adds v to the "score_after" field.
func (u *ExposureEventUpsertBulk) AddScoreAfter(v int) *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.AddScoreAfter(v)
	})
}

// UpdateScoreAfter sets the "score_after" field to the value that was provided on create.
func (u *ExposureEventUpsertBulk) UpdateScoreAfter() *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateScoreAfter()
	})
}

// SetSessionID sets the "session_id" field.
func (u *ExposureEventUpsertBulk) SetSessionID(v string) *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ExposureEventUpsertBulk) UpdateSessionID() *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *ExposureEventUpsertBulk) ClearSessionID() *ExposureEventUpsertBulk {
	return u.Update(func(s *ExposureEventUpsert) {
		s.ClearSessionID()
	})
}

// Exec executes the query.
func (u *ExposureEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExposureEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExposureEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExposureEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/pathprep/pathprep/ent/contentevent"
)

// ContentEventCreate is the builder for creating a ContentEvent entity.
type ContentEventCreate struct {
	config
	mutation *ContentEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *ContentEventCreate) SetSequence(v int64) *ContentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ContentEventCreate) SetTimestamp(v time.Time) *ContentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ContentEventCreate) SetNillableTimestamp(v *time.Time) *ContentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ContentEventCreate) SetProvider(v string) *ContentEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *ContentEventCreate) SetModel(v string) *ContentEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *ContentEventCreate) SetConceptID(v string) *ContentEventCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *ContentEventCreate) SetInputTokens(v int) *ContentEventCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *ContentEventCreate) SetNillableInputTokens(v *int) *ContentEventCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *ContentEventCreate) SetOutputTokens(v int) *ContentEventCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *ContentEventCreate) SetNillableOutputTokens(v *int) *ContentEventCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ContentEventCreate) SetLatencyMs(v int64) *ContentEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ContentEventCreate) SetNillableLatencyMs(v *int64) *ContentEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ContentEventCreate) SetSuccess(v bool) *ContentEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ContentEventCreate) SetErrorMessage(v string) *ContentEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ContentEventCreate) SetNillableErrorMessage(v *string) *ContentEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the ContentEventMutation object of the builder.
func (_c *ContentEventCreate) Mutation() *ContentEventMutation {
	return _c.mutation
}

// Save creates the ContentEvent in the database.
func (_c *ContentEventCreate) Save(ctx context.Context) (*ContentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentEventCreate) SaveX(ctx context.Context) *ContentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := contentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := contentevent.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := contentevent.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := contentevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ContentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ContentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ContentEvent.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := contentevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ContentEvent.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ContentEvent.model"`)}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "ContentEvent.concept_id"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "ContentEvent.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "ContentEvent.output_tokens"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "ContentEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ContentEvent.success"`)}
	}
	return nil
}

func (_c *ContentEventCreate) sqlSave(ctx context.Context) (*ContentEvent, error) {
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

func (_c *ContentEventCreate) createSpec() (*ContentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentevent.Table, sqlgraph.NewFieldSpec(contentevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(contentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(contentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(contentevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(contentevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(contentevent.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(contentevent.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(contentevent.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(contentevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(contentevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(contentevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContentEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContentEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ContentEventCreate) OnConflict(opts ...sql.ConflictOption) *ContentEventUpsertOne {
	_c.conflict = opts
	return &ContentEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContentEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContentEventCreate) OnConflictColumns(columns ...string) *ContentEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContentEventUpsertOne{
		create: _c,
	}
}

type (
	// ContentEventUpsertOne is the builder for "upsert"-ing
	//  one ContentEvent node.
	ContentEventUpsertOne struct {
		create *ContentEventCreate
	}

	// ContentEventUpsert is the "OnConflict" setter.
	ContentEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *ContentEventUpsert) SetProvider(v string) *ContentEventUpsert {
	u.Set(contentevent.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ContentEventUpsert) UpdateProvider() *ContentEventUpsert {
	u.SetExcluded(contentevent.FieldProvider)
	return u
}

// SetModel sets the "model" field.
func (u *ContentEventUpsert) SetModel(v string) *ContentEventUpsert {
	u.Set(contentevent.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ContentEventUpsert) UpdateModel() *ContentEventUpsert {
	u.SetExcluded(contentevent.FieldModel)
	return u
}

// SetConceptID sets the "concept_id" field.
func (u *ContentEventUpsert) SetConceptID(v string) *ContentEventUpsert {
	u.Set(contentevent.FieldConceptID, v)
	return u
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *ContentEventUpsert) UpdateConceptID() *ContentEventUpsert {
	u.SetExcluded(contentevent.FieldConceptID)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *ContentEventUpsert) SetInputTokens(v int) *ContentEventUpsert {
	u.Set(contentevent.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *ContentEventUpsert) UpdateInputTokens() *ContentEventUpsert {
	u.SetExcluded(contentevent.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *ContentEventUpsert) AddInputTokens(v int) *ContentEventUpsert {
	u.Add(contentevent.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *ContentEventUpsert) SetOutputTokens(v int) *ContentEventUpsert {
	u.Set(contentevent.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *ContentEventUpsert) UpdateOutputTokens() *ContentEventUpsert {
	u.SetExcluded(contentevent.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *ContentEventUpsert) AddOutputTokens(v int) *ContentEventUpsert {
	u.Add(contentevent.FieldOutputTokens, v)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *ContentEventUpsert) SetLatencyMs(v int64) *ContentEventUpsert {
	u.Set(contentevent.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *ContentEventUpsert) UpdateLatencyMs() *ContentEventUpsert {
	u.SetExcluded(contentevent.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *ContentEventUpsert) AddLatencyMs(v int64) *ContentEventUpsert {
	u.Add(contentevent.FieldLatencyMs, v)
	return u
}

// SetSuccess sets the "success" field.
func (u *ContentEventUpsert) SetSuccess(v bool) *ContentEventUpsert {
	u.Set(contentevent.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ContentEventUpsert) UpdateSuccess() *ContentEventUpsert {
	u.SetExcluded(contentevent.FieldSuccess)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ContentEventUpsert) SetErrorMessage(v string) *ContentEventUpsert {
	u.Set(contentevent.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ContentEventUpsert) UpdateErrorMessage() *ContentEventUpsert {
	u.SetExcluded(contentevent.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ContentEventUpsert) ClearErrorMessage() *ContentEventUpsert {
	u.SetNull(contentevent.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ContentEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ContentEventUpsertOne) UpdateNewValues() *ContentEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(contentevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(contentevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContentEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContentEventUpsertOne) Ignore() *ContentEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContentEventUpsertOne) DoNothing() *ContentEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContentEventCreate.OnConflict
// documentation for more info.
func (u *ContentEventUpsertOne) Update(set func(*ContentEventUpsert)) *ContentEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContentEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *ContentEventUpsertOne) SetProvider(v string) *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ContentEventUpsertOne) UpdateProvider() *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *ContentEventUpsertOne) SetModel(v string) *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ContentEventUpsertOne) UpdateModel() *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateModel()
	})
}

// SetConceptID sets the "concept_id" field.
func (u *ContentEventUpsertOne) SetConceptID(v string) *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetConceptID(v)
	})
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *ContentEventUpsertOne) UpdateConceptID() *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateConceptID()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *ContentEventUpsertOne) SetInputTokens(v int) *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *ContentEventUpsertOne) AddInputTokens(v int) *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *ContentEventUpsertOne) UpdateInputTokens() *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *ContentEventUpsertOne) SetOutputTokens(v int) *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *ContentEventUpsertOne) AddOutputTokens(v int) *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *ContentEventUpsertOne) UpdateOutputTokens() *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *ContentEventUpsertOne) SetLatencyMs(v int64) *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *ContentEventUpsertOne) AddLatencyMs(v int64) *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *ContentEventUpsertOne) UpdateLatencyMs() *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *ContentEventUpsertOne) SetSuccess(v bool) *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ContentEventUpsertOne) UpdateSuccess() *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ContentEventUpsertOne) SetErrorMessage(v string) *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ContentEventUpsertOne) UpdateErrorMessage() *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ContentEventUpsertOne) ClearErrorMessage() *ContentEventUpsertOne {
	return u.Update(func(s *ContentEventUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *ContentEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContentEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContentEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContentEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContentEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContentEventCreateBulk is the builder for creating many ContentEvent entities in bulk.
type ContentEventCreateBulk struct {
	config
	err      error
	builders []*ContentEventCreate
	conflict []sql.ConflictOption
}

// Save creates the ContentEvent entities in the database.
func (_c *ContentEventCreateBulk) Save(ctx context.Context) ([]*ContentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentEventMutation)
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
func (_c *ContentEventCreateBulk) SaveX(ctx context.Context) []*ContentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContentEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContentEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ContentEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContentEventUpsertBulk {
	_c.conflict = opts
	return &ContentEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContentEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContentEventCreateBulk) OnConflictColumns(columns ...string) *ContentEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContentEventUpsertBulk{
		create: _c,
	}
}

// ContentEventUpsertBulk is the builder for "upsert"-ing
// a bulk of ContentEvent nodes.
type ContentEventUpsertBulk struct {
	create *ContentEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ContentEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ContentEventUpsertBulk) UpdateNewValues() *ContentEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(contentevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(contentevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContentEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContentEventUpsertBulk) Ignore() *ContentEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContentEventUpsertBulk) DoNothing() *ContentEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContentEventCreateBulk.OnConflict
// documentation for more info.
func (u *ContentEventUpsertBulk) Update(set func(*ContentEventUpsert)) *ContentEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContentEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *ContentEventUpsertBulk) SetProvider(v string) *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ContentEventUpsertBulk) UpdateProvider() *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *ContentEventUpsertBulk) SetModel(v string) *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ContentEventUpsertBulk) UpdateModel() *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateModel()
	})
}

// SetConceptID sets the "concept_id" field.
func (u *ContentEventUpsertBulk) SetConceptID(v string) *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetConceptID(v)
	})
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *ContentEventUpsertBulk) UpdateConceptID() *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateConceptID()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *ContentEventUpsertBulk) SetInputTokens(v int) *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *ContentEventUpsertBulk) AddInputTokens(v int) *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *ContentEventUpsertBulk) UpdateInputTokens() *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *ContentEventUpsertBulk) SetOutputTokens(v int) *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *ContentEventUpsertBulk) AddOutputTokens(v int) *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *ContentEventUpsertBulk) UpdateOutputTokens() *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *ContentEventUpsertBulk) SetLatencyMs(v int64) *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *ContentEventUpsertBulk) AddLatencyMs(v int64) *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *ContentEventUpsertBulk) UpdateLatencyMs() *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *ContentEventUpsertBulk) SetSuccess(v bool) *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ContentEventUpsertBulk) UpdateSuccess() *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ContentEventUpsertBulk) SetErrorMessage(v string) *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ContentEventUpsertBulk) UpdateErrorMessage() *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ContentEventUpsertBulk) ClearErrorMessage() *ContentEventUpsertBulk {
	return u.Update(func(s *ContentEventUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *ContentEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ContentEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContentEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContentEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

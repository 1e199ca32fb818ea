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
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearnerID sets the "learner_id" field.
func (_c *MasteryRecordCreate) SetLearnerID(v string) *MasteryRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *MasteryRecordCreate) SetConceptID(v string) *MasteryRecordCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetExposures sets the "exposures" field.
func (_c *MasteryRecordCreate) SetExposures(v int) *MasteryRecordCreate {
	_c.mutation.SetExposures(v)
	return _c
}

// SetNillableExposures sets the "exposures" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableExposures(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetExposures(*v)
	}
	return _c
}

// SetSuccesses sets the "successes" field.
func (_c *MasteryRecordCreate) SetSuccesses(v int) *MasteryRecordCreate {
	_c.mutation.SetSuccesses(v)
	return _c
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableSuccesses(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetSuccesses(*v)
	}
	return _c
}

// SetFailures sets the "failures" field.
func (_c *MasteryRecordCreate) SetFailures(v int) *MasteryRecordCreate {
	_c.mutation.SetFailures(v)
	return _c
}

// SetNillableFailures sets the "failures" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableFailures(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetFailures(*v)
	}
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *MasteryRecordCreate) SetMastery(v int) *MasteryRecordCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableMastery(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetMastery(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MasteryRecordCreate) SetStatus(v string) *MasteryRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableStatus(v *string) *MasteryRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *MasteryRecordCreate) SetLastPracticedAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableLastPracticedAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetLastPracticedAt(*v)
	}
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *MasteryRecordCreate) SetNextReviewAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableNextReviewAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetNextReviewAt(*v)
	}
	return _c
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_c *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return _c.mutation
}

// Save creates the MasteryRecord in the database.
func (_c *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryRecordCreate) defaults() {
	if _, ok := _c.mutation.Exposures(); !ok {
		v := masteryrecord.DefaultExposures
		_c.mutation.SetExposures(v)
	}
	if _, ok := _c.mutation.Successes(); !ok {
		v := masteryrecord.DefaultSuccesses
		_c.mutation.SetSuccesses(v)
	}
	if _, ok := _c.mutation.Failures(); !ok {
		v := masteryrecord.DefaultFailures
		_c.mutation.SetFailures(v)
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		v := masteryrecord.DefaultMastery
		_c.mutation.SetMastery(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := masteryrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryRecordCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "MasteryRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := masteryrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "MasteryRecord.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := masteryrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Exposures(); !ok {
		return &ValidationError{Name: "exposures", err: errors.New(`ent: missing required field "MasteryRecord.exposures"`)}
	}
	if v, ok := _c.mutation.Exposures(); ok {
		if err := masteryrecord.ExposuresValidator(v); err != nil {
			return &ValidationError{Name: "exposures", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.exposures": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Successes(); !ok {
		return &ValidationError{Name: "successes", err: errors.New(`ent: missing required field "MasteryRecord.successes"`)}
	}
	if v, ok := _c.mutation.Successes(); ok {
		if err := masteryrecord.SuccessesValidator(v); err != nil {
			return &ValidationError{Name: "successes", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.successes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Failures(); !ok {
		return &ValidationError{Name: "failures", err: errors.New(`ent: missing required field "MasteryRecord.failures"`)}
	}
	if v, ok := _c.mutation.Failures(); ok {
		if err := masteryrecord.FailuresValidator(v); err != nil {
			return &ValidationError{Name: "failures", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.failures": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "MasteryRecord.mastery"`)}
	}
	if v, ok := _c.mutation.Mastery(); ok {
		if err := masteryrecord.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.mastery": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MasteryRecord.status"`)}
	}
	return nil
}

func (_c *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
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

func (_c *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(masteryrecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(masteryrecord.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Exposures(); ok {
		_spec.SetField(masteryrecord.FieldExposures, field.TypeInt, value)
		_node.Exposures = value
	}
	if value, ok := _c.mutation.Successes(); ok {
		_spec.SetField(masteryrecord.FieldSuccesses, field.TypeInt, value)
		_node.Successes = value
	}
	if value, ok := _c.mutation.Failures(); ok {
		_spec.SetField(masteryrecord.FieldFailures, field.TypeInt, value)
		_node.Failures = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(masteryrecord.FieldMastery, field.TypeInt, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(masteryrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(masteryrecord.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = &value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(masteryrecord.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MasteryRecord.Create().
//		SetLearnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MasteryRecordUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *MasteryRecordCreate) OnConflict(opts ...sql.ConflictOption) *MasteryRecordUpsertOne {
	_c.conflict = opts
	return &MasteryRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MasteryRecordCreate) OnConflictColumns(columns ...string) *MasteryRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MasteryRecordUpsertOne{
		create: _c,
	}
}

type (
	// MasteryRecordUpsertOne is the builder for "upsert"-ing
	//  one MasteryRecord node.
	MasteryRecordUpsertOne struct {
		create *MasteryRecordCreate
	}

	// MasteryRecordUpsert is the "OnConflict" setter.
	MasteryRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearnerID sets the "learner_id" field.
func (u *MasteryRecordUpsert) SetLearnerID(v string) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldLearnerID, v)
	return u
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateLearnerID() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldLearnerID)
	return u
}

// SetConceptID sets the "concept_id" field.
func (u *MasteryRecordUpsert) SetConceptID(v string) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldConceptID, v)
	return u
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateConceptID() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldConceptID)
	return u
}

// SetExposures sets the "exposures" field.
func (u *MasteryRecordUpsert) SetExposures(v int) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldExposures, v)
	return u
}

// UpdateExposures sets the "exposures" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateExposures() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldExposures)
	return u
}

// AddExposures adds v to the "exposures" field.
func (u *MasteryRecordUpsert) AddExposures(v int) *MasteryRecordUpsert {
	u.Add(masteryrecord.FieldExposures, v)
	return u
}

// SetSuccesses sets the "successes" field.
func (u *MasteryRecordUpsert) SetSuccesses(v int) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldSuccesses, v)
	return u
}

// UpdateSuccesses sets the "successes" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateSuccesses() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldSuccesses)
	return u
}

// AddSuccesses adds v to the "successes" field.
func (u *MasteryRecordUpsert) AddSuccesses(v int) *MasteryRecordUpsert {
	u.Add(masteryrecord.FieldSuccesses, v)
	return u
}

// SetFailures sets the "failures" field.
func (u *MasteryRecordUpsert) SetFailures(v int) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldFailures, v)
	return u
}

// UpdateFailures sets the "failures" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateFailures() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldFailures)
	return u
}

// AddFailures adds v to the "failures" field.
func (u *MasteryRecordUpsert) AddFailures(v int) *MasteryRecordUpsert {
	u.Add(masteryrecord.FieldFailures, v)
	return u
}

// SetMastery sets the "mastery" field.
func (u *MasteryRecordUpsert) SetMastery(v int) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldMastery, v)
	return u
}

// UpdateMastery sets the "mastery" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateMastery() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldMastery)
	return u
}

// AddMastery adds v to the "mastery" field.
func (u *MasteryRecordUpsert) AddMastery(v int) *MasteryRecordUpsert {
	u.Add(masteryrecord.FieldMastery, v)
	return u
}

// SetStatus sets the "status" field.
func (u *MasteryRecordUpsert) SetStatus(v string) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateStatus() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldStatus)
	return u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (u *MasteryRecordUpsert) SetLastPracticedAt(v time.Time) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldLastPracticedAt, v)
	return u
}

// UpdateLastPracticedAt sets the "last_practiced_at" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateLastPracticedAt() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldLastPracticedAt)
	return u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (u *MasteryRecordUpsert) ClearLastPracticedAt() *MasteryRecordUpsert {
	u.SetNull(masteryrecord.FieldLastPracticedAt)
	return u
}

// SetNextReviewAt sets the "next_review_at" field.
func (u *MasteryRecordUpsert) SetNextReviewAt(v time.Time) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldNextReviewAt, v)
	return u
}

// UpdateNextReviewAt sets the "next_review_at" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateNextReviewAt() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldNextReviewAt)
	return u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (u *MasteryRecordUpsert) ClearNextReviewAt() *MasteryRecordUpsert {
	u.SetNull(masteryrecord.FieldNextReviewAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MasteryRecordUpsertOne) UpdateNewValues() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MasteryRecordUpsertOne) Ignore() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MasteryRecordUpsertOne) DoNothing() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MasteryRecordCreate.OnConflict
// documentation for more info.
func (u *MasteryRecordUpsertOne) Update(set func(*MasteryRecordUpsert)) *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MasteryRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *MasteryRecordUpsertOne) SetLearnerID(v string) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateLearnerID() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateLearnerID()
	})
}

// SetConceptID sets the "concept_id" field.
func (u *MasteryRecordUpsertOne) SetConceptID(v string) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetConceptID(v)
	})
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateConceptID() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateConceptID()
	})
}

// SetExposures sets the "exposures" field.
func (u *MasteryRecordUpsertOne) SetExposures(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetExposures(v)
	})
}

// AddExposures adds v to the "exposures" field.
func (u *MasteryRecordUpsertOne) AddExposures(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddExposures(v)
	})
}

// UpdateExposures sets the "exposures" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateExposures() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateExposures()
	})
}

// SetSuccesses sets the "successes" field.
func (u *MasteryRecordUpsertOne) SetSuccesses(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetSuccesses(v)
	})
}

// AddSuccesses adds v to the "successes" field.
func (u *MasteryRecordUpsertOne) AddSuccesses(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddSuccesses(v)
	})
}

// UpdateSuccesses sets the "successes" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateSuccesses() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateSuccesses()
	})
}

// SetFailures sets the "failures" field.
func (u *MasteryRecordUpsertOne) SetFailures(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetFailures(v)
	})
}

// AddFailures adds v to the "failures" field.
func (u *MasteryRecordUpsertOne) AddFailures(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddFailures(v)
	})
}

// UpdateFailures sets the "failures" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateFailures() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateFailures()
	})
}

// SetMastery sets the "mastery" field.
func (u *MasteryRecordUpsertOne) SetMastery(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetMastery(v)
	})
}

// AddMastery adds v to the "mastery" field.
func (u *MasteryRecordUpsertOne) AddMastery(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddMastery(v)
	})
}

// UpdateMastery sets the "mastery" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateMastery() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateMastery()
	})
}

// SetStatus sets the "status" field.
func (u *MasteryRecordUpsertOne) SetStatus(v string) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateStatus() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (u *MasteryRecordUpsertOne) SetLastPracticedAt(v time.Time) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetLastPracticedAt(v)
	})
}

// UpdateLastPracticedAt sets the "last_practiced_at" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateLastPracticedAt() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateLastPracticedAt()
	})
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (u *MasteryRecordUpsertOne) ClearLastPracticedAt() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.ClearLastPracticedAt()
	})
}

// SetNextReviewAt sets the "next_review_at" field.
func (u *MasteryRecordUpsertOne) SetNextReviewAt(v time.Time) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetNextReviewAt(v)
	})
}

// UpdateNextReviewAt sets the "next_review_at" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateNextReviewAt() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateNextReviewAt()
	})
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (u *MasteryRecordUpsertOne) ClearNextReviewAt() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.ClearNextReviewAt()
	})
}

// Exec executes the query.
func (u *MasteryRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MasteryRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MasteryRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MasteryRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MasteryRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the MasteryRecord entities in the database.
func (_c *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
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
func (_c *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MasteryRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MasteryRecordUpsert) {
//			SetLearnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *MasteryRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *MasteryRecordUpsertBulk {
	_c.conflict = opts
	return &MasteryRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MasteryRecordCreateBulk) OnConflictColumns(columns ...string) *MasteryRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MasteryRecordUpsertBulk{
		create: _c,
	}
}

// MasteryRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of MasteryRecord nodes.
type MasteryRecordUpsertBulk struct {
	create *MasteryRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MasteryRecordUpsertBulk) UpdateNewValues() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MasteryRecordUpsertBulk) Ignore() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MasteryRecordUpsertBulk) DoNothing() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MasteryRecordCreateBulk.OnConflict
// documentation for more info.
func (u *MasteryRecordUpsertBulk) Update(set func(*MasteryRecordUpsert)) *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MasteryRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearnerID sets the "learner_id" field.
func (u *MasteryRecordUpsertBulk) SetLearnerID(v string) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetLearnerID(v)
	})
}

// UpdateLearnerID sets the "learner_id" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateLearnerID() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateLearnerID()
	})
}

// SetConceptID sets the "concept_id" field.
func (u *MasteryRecordUpsertBulk) SetConceptID(v string) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetConceptID(v)
	})
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateConceptID() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateConceptID()
	})
}

// SetExposures sets the "exposures" field.
func (u *MasteryRecordUpsertBulk) SetExposures(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetExposures(v)
	})
}

// AddExposures adds v to the "exposures" field.
func (u *MasteryRecordUpsertBulk) AddExposures(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddExposures(v)
	})
}

// UpdateExposures sets the "exposures" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateExposures() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateExposures()
	})
}

// SetSuccesses sets the "successes" field.
func (u *MasteryRecordUpsertBulk) SetSuccesses(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetSuccesses(v)
	})
}

// AddSuccesses adds v to the "successes" field.
func (u *MasteryRecordUpsertBulk) AddSuccesses(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddSuccesses(v)
	})
}

// UpdateSuccesses sets the "successes" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateSuccesses() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateSuccesses()
	})
}

// SetFailures sets the "failures" field.
func (u *MasteryRecordUpsertBulk) SetFailures(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetFailures(v)
	})
}

// AddFailures adds v to the "failures" field.
func (u *MasteryRecordUpsertBulk) AddFailures(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddFailures(v)
	})
}

// UpdateFailures sets the "failures" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateFailures() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateFailures()
	})
}

// SetMastery sets the "mastery" field.
func (u *MasteryRecordUpsertBulk) SetMastery(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetMastery(v)
	})
}

// AddMastery adds v to the "mastery" field.
func (u *MasteryRecordUpsertBulk) AddMastery(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddMastery(v)
	})
}

// UpdateMastery sets the "mastery" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateMastery() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateMastery()
	})
}

// SetStatus sets the "status" field.
func (u *MasteryRecordUpsertBulk) SetStatus(v string) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateStatus() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (u *MasteryRecordUpsertBulk) SetLastPracticedAt(v time.Time) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetLastPracticedAt(v)
	})
}

// UpdateLastPracticedAt sets the "last_practiced_at" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateLastPracticedAt() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateLastPracticedAt()
	})
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (u *MasteryRecordUpsertBulk) ClearLastPracticedAt() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.ClearLastPracticedAt()
	})
}

// SetNextReviewAt sets the "next_review_at" field.
func (u *MasteryRecordUpsertBulk) SetNextReviewAt(v time.Time) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetNextReviewAt(v)
	})
}

// UpdateNextReviewAt sets the "next_review_at" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateNextReviewAt() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateNextReviewAt()
	})
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (u *MasteryRecordUpsertBulk) ClearNextReviewAt() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.ClearNextReviewAt()
	})
}

// Exec executes the query.
func (u *MasteryRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MasteryRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MasteryRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MasteryRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

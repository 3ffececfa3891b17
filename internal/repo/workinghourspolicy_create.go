// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnicahealth/arnica_backend/internal/repo/workinghourspolicy"
	"github.com/arnicahealth/arnica_backend/internal/schema"
	"github.com/google/uuid"
)

// WorkingHoursPolicyCreate is the builder for creating a WorkingHoursPolicy entity.
type WorkingHoursPolicyCreate struct {
	config
	mutation *WorkingHoursPolicyMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkingHoursPolicyCreate) SetCreatedAt(v time.Time) *WorkingHoursPolicyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkingHoursPolicyCreate) SetNillableCreatedAt(v *time.Time) *WorkingHoursPolicyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkingHoursPolicyCreate) SetUpdatedAt(v time.Time) *WorkingHoursPolicyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkingHoursPolicyCreate) SetNillableUpdatedAt(v *time.Time) *WorkingHoursPolicyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *WorkingHoursPolicyCreate) SetClinicID(v uuid.UUID) *WorkingHoursPolicyCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetTherapistID sets the "therapist_id" field.
func (_c *WorkingHoursPolicyCreate) SetTherapistID(v uuid.UUID) *WorkingHoursPolicyCreate {
	_c.mutation.SetTherapistID(v)
	return _c
}

// SetWeekly sets the "weekly" field.
func (_c *WorkingHoursPolicyCreate) SetWeekly(v map[string]schema.DaySpan) *WorkingHoursPolicyCreate {
	_c.mutation.SetWeekly(v)
	return _c
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (_c *WorkingHoursPolicyCreate) SetBufferMinutes(v int) *WorkingHoursPolicyCreate {
	_c.mutation.SetBufferMinutes(v)
	return _c
}

// SetNillableBufferMinutes sets the "buffer_minutes" field if the given value is not nil.
func (_c *WorkingHoursPolicyCreate) SetNillableBufferMinutes(v *int) *WorkingHoursPolicyCreate {
	if v != nil {
		_c.SetBufferMinutes(*v)
	}
	return _c
}

// SetAllowBackToBack sets the "allow_back_to_back" field.
func (_c *WorkingHoursPolicyCreate) SetAllowBackToBack(v bool) *WorkingHoursPolicyCreate {
	_c.mutation.SetAllowBackToBack(v)
	return _c
}

// SetNillableAllowBackToBack sets the "allow_back_to_back" field if the given value is not nil.
func (_c *WorkingHoursPolicyCreate) SetNillableAllowBackToBack(v *bool) *WorkingHoursPolicyCreate {
	if v != nil {
		_c.SetAllowBackToBack(*v)
	}
	return _c
}

// SetMaxDailyAppointments sets the "max_daily_appointments" field.
func (_c *WorkingHoursPolicyCreate) SetMaxDailyAppointments(v int) *WorkingHoursPolicyCreate {
	_c.mutation.SetMaxDailyAppointments(v)
	return _c
}

// SetNillableMaxDailyAppointments sets the "max_daily_appointments" field if the given value is not nil.
func (_c *WorkingHoursPolicyCreate) SetNillableMaxDailyAppointments(v *int) *WorkingHoursPolicyCreate {
	if v != nil {
		_c.SetMaxDailyAppointments(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkingHoursPolicyCreate) SetID(v uuid.UUID) *WorkingHoursPolicyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WorkingHoursPolicyCreate) SetNillableID(v *uuid.UUID) *WorkingHoursPolicyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WorkingHoursPolicyMutation object of the builder.
func (_c *WorkingHoursPolicyCreate) Mutation() *WorkingHoursPolicyMutation {
	return _c.mutation
}

// Save creates the WorkingHoursPolicy in the database.
func (_c *WorkingHoursPolicyCreate) Save(ctx context.Context) (*WorkingHoursPolicy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkingHoursPolicyCreate) SaveX(ctx context.Context) *WorkingHoursPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkingHoursPolicyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkingHoursPolicyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkingHoursPolicyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workinghourspolicy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workinghourspolicy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.BufferMinutes(); !ok {
		v := workinghourspolicy.DefaultBufferMinutes
		_c.mutation.SetBufferMinutes(v)
	}
	if _, ok := _c.mutation.AllowBackToBack(); !ok {
		v := workinghourspolicy.DefaultAllowBackToBack
		_c.mutation.SetAllowBackToBack(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := workinghourspolicy.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkingHoursPolicyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "WorkingHoursPolicy.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "WorkingHoursPolicy.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "WorkingHoursPolicy.clinic_id"`)}
	}
	if _, ok := _c.mutation.TherapistID(); !ok {
		return &ValidationError{Name: "therapist_id", err: errors.New(`repo: missing required field "WorkingHoursPolicy.therapist_id"`)}
	}
	if _, ok := _c.mutation.Weekly(); !ok {
		return &ValidationError{Name: "weekly", err: errors.New(`repo: missing required field "WorkingHoursPolicy.weekly"`)}
	}
	if _, ok := _c.mutation.BufferMinutes(); !ok {
		return &ValidationError{Name: "buffer_minutes", err: errors.New(`repo: missing required field "WorkingHoursPolicy.buffer_minutes"`)}
	}
	if _, ok := _c.mutation.AllowBackToBack(); !ok {
		return &ValidationError{Name: "allow_back_to_back", err: errors.New(`repo: missing required field "WorkingHoursPolicy.allow_back_to_back"`)}
	}
	return nil
}

func (_c *WorkingHoursPolicyCreate) sqlSave(ctx context.Context) (*WorkingHoursPolicy, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkingHoursPolicyCreate) createSpec() (*WorkingHoursPolicy, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkingHoursPolicy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workinghourspolicy.Table, sqlgraph.NewFieldSpec(workinghourspolicy.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workinghourspolicy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workinghourspolicy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(workinghourspolicy.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.TherapistID(); ok {
		_spec.SetField(workinghourspolicy.FieldTherapistID, field.TypeUUID, value)
		_node.TherapistID = value
	}
	if value, ok := _c.mutation.Weekly(); ok {
		_spec.SetField(workinghourspolicy.FieldWeekly, field.TypeJSON, value)
		_node.Weekly = value
	}
	if value, ok := _c.mutation.BufferMinutes(); ok {
		_spec.SetField(workinghourspolicy.FieldBufferMinutes, field.TypeInt, value)
		_node.BufferMinutes = value
	}
	if value, ok := _c.mutation.AllowBackToBack(); ok {
		_spec.SetField(workinghourspolicy.FieldAllowBackToBack, field.TypeBool, value)
		_node.AllowBackToBack = value
	}
	if value, ok := _c.mutation.MaxDailyAppointments(); ok {
		_spec.SetField(workinghourspolicy.FieldMaxDailyAppointments, field.TypeInt, value)
		_node.MaxDailyAppointments = &value
	}
	return _node, _spec
}

// WorkingHoursPolicyCreateBulk is the builder for creating many WorkingHoursPolicy entities in bulk.
type WorkingHoursPolicyCreateBulk struct {
	config
	err      error
	builders []*WorkingHoursPolicyCreate
}

// Save creates the WorkingHoursPolicy entities in the database.
func (_c *WorkingHoursPolicyCreateBulk) Save(ctx context.Context) ([]*WorkingHoursPolicy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkingHoursPolicy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkingHoursPolicyMutation)
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
func (_c *WorkingHoursPolicyCreateBulk) SaveX(ctx context.Context) []*WorkingHoursPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkingHoursPolicyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkingHoursPolicyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

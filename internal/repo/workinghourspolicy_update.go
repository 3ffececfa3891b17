// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnicahealth/arnica_backend/internal/repo/predicate"
	"github.com/arnicahealth/arnica_backend/internal/repo/workinghourspolicy"
	"github.com/arnicahealth/arnica_backend/internal/schema"
	"github.com/google/uuid"
)

// WorkingHoursPolicyUpdate is the builder for updating WorkingHoursPolicy entities.
type WorkingHoursPolicyUpdate struct {
	config
	hooks    []Hook
	mutation *WorkingHoursPolicyMutation
}

// Where appends a list predicates to the WorkingHoursPolicyUpdate builder.
func (_u *WorkingHoursPolicyUpdate) Where(ps ...predicate.WorkingHoursPolicy) *WorkingHoursPolicyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkingHoursPolicyUpdate) SetUpdatedAt(v time.Time) *WorkingHoursPolicyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *WorkingHoursPolicyUpdate) SetClinicID(v uuid.UUID) *WorkingHoursPolicyUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *WorkingHoursPolicyUpdate) SetNillableClinicID(v *uuid.UUID) *WorkingHoursPolicyUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *WorkingHoursPolicyUpdate) SetTherapistID(v uuid.UUID) *WorkingHoursPolicyUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *WorkingHoursPolicyUpdate) SetNillableTherapistID(v *uuid.UUID) *WorkingHoursPolicyUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetWeekly sets the "weekly" field.
func (_u *WorkingHoursPolicyUpdate) SetWeekly(v map[string]schema.DaySpan) *WorkingHoursPolicyUpdate {
	_u.mutation.SetWeekly(v)
	return _u
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (_u *WorkingHoursPolicyUpdate) SetBufferMinutes(v int) *WorkingHoursPolicyUpdate {
	_u.mutation.ResetBufferMinutes()
	_u.mutation.SetBufferMinutes(v)
	return _u
}

// SetNillableBufferMinutes sets the "buffer_minutes" field if the given value is not nil.
func (_u *WorkingHoursPolicyUpdate) SetNillableBufferMinutes(v *int) *WorkingHoursPolicyUpdate {
	if v != nil {
		_u.SetBufferMinutes(*v)
	}
	return _u
}

// AddBufferMinutes adds value to the "buffer_minutes" field.
func (_u *WorkingHoursPolicyUpdate) AddBufferMinutes(v int) *WorkingHoursPolicyUpdate {
	_u.mutation.AddBufferMinutes(v)
	return _u
}

// SetAllowBackToBack sets the "allow_back_to_back" field.
func (_u *WorkingHoursPolicyUpdate) SetAllowBackToBack(v bool) *WorkingHoursPolicyUpdate {
	_u.mutation.SetAllowBackToBack(v)
	return _u
}

// SetNillableAllowBackToBack sets the "allow_back_to_back" field if the given value is not nil.
func (_u *WorkingHoursPolicyUpdate) SetNillableAllowBackToBack(v *bool) *WorkingHoursPolicyUpdate {
	if v != nil {
		_u.SetAllowBackToBack(*v)
	}
	return _u
}

// SetMaxDailyAppointments sets the "max_daily_appointments" field.
func (_u *WorkingHoursPolicyUpdate) SetMaxDailyAppointments(v int) *WorkingHoursPolicyUpdate {
	_u.mutation.ResetMaxDailyAppointments()
	_u.mutation.SetMaxDailyAppointments(v)
	return _u
}

// SetNillableMaxDailyAppointments sets the "max_daily_appointments" field if the given value is not nil.
func (_u *WorkingHoursPolicyUpdate) SetNillableMaxDailyAppointments(v *int) *WorkingHoursPolicyUpdate {
	if v != nil {
		_u.SetMaxDailyAppointments(*v)
	}
	return _u
}

// AddMaxDailyAppointments adds value to the "max_daily_appointments" field.
func (_u *WorkingHoursPolicyUpdate) AddMaxDailyAppointments(v int) *WorkingHoursPolicyUpdate {
	_u.mutation.AddMaxDailyAppointments(v)
	return _u
}

// ClearMaxDailyAppointments clears the value of the "max_daily_appointments" field.
func (_u *WorkingHoursPolicyUpdate) ClearMaxDailyAppointments() *WorkingHoursPolicyUpdate {
	_u.mutation.ClearMaxDailyAppointments()
	return _u
}

// Mutation returns the WorkingHoursPolicyMutation object of the builder.
func (_u *WorkingHoursPolicyUpdate) Mutation() *WorkingHoursPolicyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkingHoursPolicyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkingHoursPolicyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkingHoursPolicyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkingHoursPolicyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkingHoursPolicyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workinghourspolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WorkingHoursPolicyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(workinghourspolicy.Table, workinghourspolicy.Columns, sqlgraph.NewFieldSpec(workinghourspolicy.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workinghourspolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(workinghourspolicy.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(workinghourspolicy.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Weekly(); ok {
		_spec.SetField(workinghourspolicy.FieldWeekly, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BufferMinutes(); ok {
		_spec.SetField(workinghourspolicy.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBufferMinutes(); ok {
		_spec.AddField(workinghourspolicy.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AllowBackToBack(); ok {
		_spec.SetField(workinghourspolicy.FieldAllowBackToBack, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxDailyAppointments(); ok {
		_spec.SetField(workinghourspolicy.FieldMaxDailyAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDailyAppointments(); ok {
		_spec.AddField(workinghourspolicy.FieldMaxDailyAppointments, field.TypeInt, value)
	}
	if _u.mutation.MaxDailyAppointmentsCleared() {
		_spec.ClearField(workinghourspolicy.FieldMaxDailyAppointments, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workinghourspolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkingHoursPolicyUpdateOne is the builder for updating a single WorkingHoursPolicy entity.
type WorkingHoursPolicyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkingHoursPolicyMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkingHoursPolicyUpdateOne) SetUpdatedAt(v time.Time) *WorkingHoursPolicyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *WorkingHoursPolicyUpdateOne) SetClinicID(v uuid.UUID) *WorkingHoursPolicyUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *WorkingHoursPolicyUpdateOne) SetNillableClinicID(v *uuid.UUID) *WorkingHoursPolicyUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *WorkingHoursPolicyUpdateOne) SetTherapistID(v uuid.UUID) *WorkingHoursPolicyUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *WorkingHoursPolicyUpdateOne) SetNillableTherapistID(v *uuid.UUID) *WorkingHoursPolicyUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetWeekly sets the "weekly" field.
func (_u *WorkingHoursPolicyUpdateOne) SetWeekly(v map[string]schema.DaySpan) *WorkingHoursPolicyUpdateOne {
	_u.mutation.SetWeekly(v)
	return _u
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (_u *WorkingHoursPolicyUpdateOne) SetBufferMinutes(v int) *WorkingHoursPolicyUpdateOne {
	_u.mutation.ResetBufferMinutes()
	_u.mutation.SetBufferMinutes(v)
	return _u
}

// SetNillableBufferMinutes sets the "buffer_minutes" field if the given value is not nil.
func (_u *WorkingHoursPolicyUpdateOne) SetNillableBufferMinutes(v *int) *WorkingHoursPolicyUpdateOne {
	if v != nil {
		_u.SetBufferMinutes(*v)
	}
	return _u
}

// AddBufferMinutes adds value to the "buffer_minutes" field.
func (_u *WorkingHoursPolicyUpdateOne) AddBufferMinutes(v int) *WorkingHoursPolicyUpdateOne {
	_u.mutation.AddBufferMinutes(v)
	return _u
}

// SetAllowBackToBack sets the "allow_back_to_back" field.
func (_u *WorkingHoursPolicyUpdateOne) SetAllowBackToBack(v bool) *WorkingHoursPolicyUpdateOne {
	_u.mutation.SetAllowBackToBack(v)
	return _u
}

// SetNillableAllowBackToBack sets the "allow_back_to_back" field if the given value is not nil.
func (_u *WorkingHoursPolicyUpdateOne) SetNillableAllowBackToBack(v *bool) *WorkingHoursPolicyUpdateOne {
	if v != nil {
		_u.SetAllowBackToBack(*v)
	}
	return _u
}

// SetMaxDailyAppointments sets the "max_daily_appointments" field.
func (_u *WorkingHoursPolicyUpdateOne) SetMaxDailyAppointments(v int) *WorkingHoursPolicyUpdateOne {
	_u.mutation.ResetMaxDailyAppointments()
	_u.mutation.SetMaxDailyAppointments(v)
	return _u
}

// SetNillableMaxDailyAppointments sets the "max_daily_appointments" field if the given value is not nil.
func (_u *WorkingHoursPolicyUpdateOne) SetNillableMaxDailyAppointments(v *int) *WorkingHoursPolicyUpdateOne {
	if v != nil {
		_u.SetMaxDailyAppointments(*v)
	}
	return _u
}

// AddMaxDailyAppointments adds value to the "max_daily_appointments" field.
func (_u *WorkingHoursPolicyUpdateOne) AddMaxDailyAppointments(v int) *WorkingHoursPolicyUpdateOne {
	_u.mutation.AddMaxDailyAppointments(v)
	return _u
}

// ClearMaxDailyAppointments clears the value of the "max_daily_appointments" field.
func (_u *WorkingHoursPolicyUpdateOne) ClearMaxDailyAppointments() *WorkingHoursPolicyUpdateOne {
	_u.mutation.ClearMaxDailyAppointments()
	return _u
}

// Mutation returns the WorkingHoursPolicyMutation object of the builder.
func (_u *WorkingHoursPolicyUpdateOne) Mutation() *WorkingHoursPolicyMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkingHoursPolicyUpdate builder.
func (_u *WorkingHoursPolicyUpdateOne) Where(ps ...predicate.WorkingHoursPolicy) *WorkingHoursPolicyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkingHoursPolicyUpdateOne) Select(field string, fields ...string) *WorkingHoursPolicyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkingHoursPolicy entity.
func (_u *WorkingHoursPolicyUpdateOne) Save(ctx context.Context) (*WorkingHoursPolicy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkingHoursPolicyUpdateOne) SaveX(ctx context.Context) *WorkingHoursPolicy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkingHoursPolicyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkingHoursPolicyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkingHoursPolicyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workinghourspolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *WorkingHoursPolicyUpdateOne) sqlSave(ctx context.Context) (_node *WorkingHoursPolicy, err error) {
	_spec := sqlgraph.NewUpdateSpec(workinghourspolicy.Table, workinghourspolicy.Columns, sqlgraph.NewFieldSpec(workinghourspolicy.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "WorkingHoursPolicy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workinghourspolicy.FieldID)
		for _, f := range fields {
			if !workinghourspolicy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != workinghourspolicy.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workinghourspolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(workinghourspolicy.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(workinghourspolicy.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Weekly(); ok {
		_spec.SetField(workinghourspolicy.FieldWeekly, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BufferMinutes(); ok {
		_spec.SetField(workinghourspolicy.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBufferMinutes(); ok {
		_spec.AddField(workinghourspolicy.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AllowBackToBack(); ok {
		_spec.SetField(workinghourspolicy.FieldAllowBackToBack, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxDailyAppointments(); ok {
		_spec.SetField(workinghourspolicy.FieldMaxDailyAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDailyAppointments(); ok {
		_spec.AddField(workinghourspolicy.FieldMaxDailyAppointments, field.TypeInt, value)
	}
	if _u.mutation.MaxDailyAppointmentsCleared() {
		_spec.ClearField(workinghourspolicy.FieldMaxDailyAppointments, field.TypeInt)
	}
	_node = &WorkingHoursPolicy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workinghourspolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

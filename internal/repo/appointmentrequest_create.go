// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnicahealth/arnica_backend/internal/repo/appointmentrequest"
	"github.com/google/uuid"
)

// AppointmentRequestCreate is the builder for creating a AppointmentRequest entity.
type AppointmentRequestCreate struct {
	config
	mutation *AppointmentRequestMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentRequestCreate) SetCreatedAt(v time.Time) *AppointmentRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentRequestCreate) SetNillableCreatedAt(v *time.Time) *AppointmentRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppointmentRequestCreate) SetUpdatedAt(v time.Time) *AppointmentRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppointmentRequestCreate) SetNillableUpdatedAt(v *time.Time) *AppointmentRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *AppointmentRequestCreate) SetClinicID(v uuid.UUID) *AppointmentRequestCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetTherapistID sets the "therapist_id" field.
func (_c *AppointmentRequestCreate) SetTherapistID(v uuid.UUID) *AppointmentRequestCreate {
	_c.mutation.SetTherapistID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *AppointmentRequestCreate) SetPatientID(v uuid.UUID) *AppointmentRequestCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetRequestedStart sets the "requested_start" field.
func (_c *AppointmentRequestCreate) SetRequestedStart(v time.Time) *AppointmentRequestCreate {
	_c.mutation.SetRequestedStart(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *AppointmentRequestCreate) SetDurationMinutes(v int) *AppointmentRequestCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AppointmentRequestCreate) SetStatus(v appointmentrequest.Status) *AppointmentRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AppointmentRequestCreate) SetNillableStatus(v *appointmentrequest.Status) *AppointmentRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPatientNote sets the "patient_note" field.
func (_c *AppointmentRequestCreate) SetPatientNote(v string) *AppointmentRequestCreate {
	_c.mutation.SetPatientNote(v)
	return _c
}

// SetNillablePatientNote sets the "patient_note" field if the given value is not nil.
func (_c *AppointmentRequestCreate) SetNillablePatientNote(v *string) *AppointmentRequestCreate {
	if v != nil {
		_c.SetPatientNote(*v)
	}
	return _c
}

// SetTherapistNote sets the "therapist_note" field.
func (_c *AppointmentRequestCreate) SetTherapistNote(v string) *AppointmentRequestCreate {
	_c.mutation.SetTherapistNote(v)
	return _c
}

// SetNillableTherapistNote sets the "therapist_note" field if the given value is not nil.
func (_c *AppointmentRequestCreate) SetNillableTherapistNote(v *string) *AppointmentRequestCreate {
	if v != nil {
		_c.SetTherapistNote(*v)
	}
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *AppointmentRequestCreate) SetAppointmentID(v uuid.UUID) *AppointmentRequestCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_c *AppointmentRequestCreate) SetNillableAppointmentID(v *uuid.UUID) *AppointmentRequestCreate {
	if v != nil {
		_c.SetAppointmentID(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *AppointmentRequestCreate) SetDecidedAt(v time.Time) *AppointmentRequestCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *AppointmentRequestCreate) SetNillableDecidedAt(v *time.Time) *AppointmentRequestCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentRequestCreate) SetID(v uuid.UUID) *AppointmentRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentRequestCreate) SetNillableID(v *uuid.UUID) *AppointmentRequestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AppointmentRequestMutation object of the builder.
func (_c *AppointmentRequestCreate) Mutation() *AppointmentRequestMutation {
	return _c.mutation
}

// Save creates the AppointmentRequest in the database.
func (_c *AppointmentRequestCreate) Save(ctx context.Context) (*AppointmentRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentRequestCreate) SaveX(ctx context.Context) *AppointmentRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointmentrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appointmentrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := appointmentrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointmentrequest.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentRequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AppointmentRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AppointmentRequest.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "AppointmentRequest.clinic_id"`)}
	}
	if _, ok := _c.mutation.TherapistID(); !ok {
		return &ValidationError{Name: "therapist_id", err: errors.New(`repo: missing required field "AppointmentRequest.therapist_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "AppointmentRequest.patient_id"`)}
	}
	if _, ok := _c.mutation.RequestedStart(); !ok {
		return &ValidationError{Name: "requested_start", err: errors.New(`repo: missing required field "AppointmentRequest.requested_start"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "AppointmentRequest.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := appointmentrequest.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "AppointmentRequest.duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "AppointmentRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := appointmentrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "AppointmentRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_c *AppointmentRequestCreate) sqlSave(ctx context.Context) (*AppointmentRequest, error) {
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

func (_c *AppointmentRequestCreate) createSpec() (*AppointmentRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &AppointmentRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointmentrequest.Table, sqlgraph.NewFieldSpec(appointmentrequest.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointmentrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appointmentrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(appointmentrequest.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.TherapistID(); ok {
		_spec.SetField(appointmentrequest.FieldTherapistID, field.TypeUUID, value)
		_node.TherapistID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(appointmentrequest.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.RequestedStart(); ok {
		_spec.SetField(appointmentrequest.FieldRequestedStart, field.TypeTime, value)
		_node.RequestedStart = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(appointmentrequest.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(appointmentrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PatientNote(); ok {
		_spec.SetField(appointmentrequest.FieldPatientNote, field.TypeString, value)
		_node.PatientNote = &value
	}
	if value, ok := _c.mutation.TherapistNote(); ok {
		_spec.SetField(appointmentrequest.FieldTherapistNote, field.TypeString, value)
		_node.TherapistNote = &value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(appointmentrequest.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = &value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(appointmentrequest.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	return _node, _spec
}

// AppointmentRequestCreateBulk is the builder for creating many AppointmentRequest entities in bulk.
type AppointmentRequestCreateBulk struct {
	config
	err      error
	builders []*AppointmentRequestCreate
}

// Save creates the AppointmentRequest entities in the database.
func (_c *AppointmentRequestCreateBulk) Save(ctx context.Context) ([]*AppointmentRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AppointmentRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentRequestMutation)
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
func (_c *AppointmentRequestCreateBulk) SaveX(ctx context.Context) []*AppointmentRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

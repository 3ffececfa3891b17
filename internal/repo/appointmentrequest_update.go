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
	"github.com/arnicahealth/arnica_backend/internal/repo/appointmentrequest"
	"github.com/arnicahealth/arnica_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// AppointmentRequestUpdate is the builder for updating AppointmentRequest entities.
type AppointmentRequestUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentRequestMutation
}

// Where appends a list predicates to the AppointmentRequestUpdate builder.
func (_u *AppointmentRequestUpdate) Where(ps ...predicate.AppointmentRequest) *AppointmentRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentRequestUpdate) SetUpdatedAt(v time.Time) *AppointmentRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AppointmentRequestUpdate) SetClinicID(v uuid.UUID) *AppointmentRequestUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AppointmentRequestUpdate) SetNillableClinicID(v *uuid.UUID) *AppointmentRequestUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *AppointmentRequestUpdate) SetTherapistID(v uuid.UUID) *AppointmentRequestUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *AppointmentRequestUpdate) SetNillableTherapistID(v *uuid.UUID) *AppointmentRequestUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentRequestUpdate) SetPatientID(v uuid.UUID) *AppointmentRequestUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentRequestUpdate) SetNillablePatientID(v *uuid.UUID) *AppointmentRequestUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetRequestedStart sets the "requested_start" field.
func (_u *AppointmentRequestUpdate) SetRequestedStart(v time.Time) *AppointmentRequestUpdate {
	_u.mutation.SetRequestedStart(v)
	return _u
}

// SetNillableRequestedStart sets the "requested_start" field if the given value is not nil.
func (_u *AppointmentRequestUpdate) SetNillableRequestedStart(v *time.Time) *AppointmentRequestUpdate {
	if v != nil {
		_u.SetRequestedStart(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *AppointmentRequestUpdate) SetDurationMinutes(v int) *AppointmentRequestUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *AppointmentRequestUpdate) SetNillableDurationMinutes(v *int) *AppointmentRequestUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *AppointmentRequestUpdate) AddDurationMinutes(v int) *AppointmentRequestUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentRequestUpdate) SetStatus(v appointmentrequest.Status) *AppointmentRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentRequestUpdate) SetNillableStatus(v *appointmentrequest.Status) *AppointmentRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPatientNote sets the "patient_note" field.
func (_u *AppointmentRequestUpdate) SetPatientNote(v string) *AppointmentRequestUpdate {
	_u.mutation.SetPatientNote(v)
	return _u
}

// SetNillablePatientNote sets the "patient_note" field if the given value is not nil.
func (_u *AppointmentRequestUpdate) SetNillablePatientNote(v *string) *AppointmentRequestUpdate {
	if v != nil {
		_u.SetPatientNote(*v)
	}
	return _u
}

// ClearPatientNote clears the value of the "patient_note" field.
func (_u *AppointmentRequestUpdate) ClearPatientNote() *AppointmentRequestUpdate {
	_u.mutation.ClearPatientNote()
	return _u
}

// SetTherapistNote sets the "therapist_note" field.
func (_u *AppointmentRequestUpdate) SetTherapistNote(v string) *AppointmentRequestUpdate {
	_u.mutation.SetTherapistNote(v)
	return _u
}

// SetNillableTherapistNote sets the "therapist_note" field if the given value is not nil.
func (_u *AppointmentRequestUpdate) SetNillableTherapistNote(v *string) *AppointmentRequestUpdate {
	if v != nil {
		_u.SetTherapistNote(*v)
	}
	return _u
}

// ClearTherapistNote clears the value of the "therapist_note" field.
func (_u *AppointmentRequestUpdate) ClearTherapistNote() *AppointmentRequestUpdate {
	_u.mutation.ClearTherapistNote()
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *AppointmentRequestUpdate) SetAppointmentID(v uuid.UUID) *AppointmentRequestUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *AppointmentRequestUpdate) SetNillableAppointmentID(v *uuid.UUID) *AppointmentRequestUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *AppointmentRequestUpdate) ClearAppointmentID() *AppointmentRequestUpdate {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *AppointmentRequestUpdate) SetDecidedAt(v time.Time) *AppointmentRequestUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *AppointmentRequestUpdate) SetNillableDecidedAt(v *time.Time) *AppointmentRequestUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *AppointmentRequestUpdate) ClearDecidedAt() *AppointmentRequestUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// Mutation returns the AppointmentRequestMutation object of the builder.
func (_u *AppointmentRequestUpdate) Mutation() *AppointmentRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointmentrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentRequestUpdate) check() error {
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := appointmentrequest.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "AppointmentRequest.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointmentrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "AppointmentRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmentrequest.Table, appointmentrequest.Columns, sqlgraph.NewFieldSpec(appointmentrequest.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointmentrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(appointmentrequest.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(appointmentrequest.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(appointmentrequest.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RequestedStart(); ok {
		_spec.SetField(appointmentrequest.FieldRequestedStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(appointmentrequest.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(appointmentrequest.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointmentrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PatientNote(); ok {
		_spec.SetField(appointmentrequest.FieldPatientNote, field.TypeString, value)
	}
	if _u.mutation.PatientNoteCleared() {
		_spec.ClearField(appointmentrequest.FieldPatientNote, field.TypeString)
	}
	if value, ok := _u.mutation.TherapistNote(); ok {
		_spec.SetField(appointmentrequest.FieldTherapistNote, field.TypeString, value)
	}
	if _u.mutation.TherapistNoteCleared() {
		_spec.ClearField(appointmentrequest.FieldTherapistNote, field.TypeString)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(appointmentrequest.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(appointmentrequest.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(appointmentrequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(appointmentrequest.FieldDecidedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmentrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentRequestUpdateOne is the builder for updating a single AppointmentRequest entity.
type AppointmentRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentRequestUpdateOne) SetUpdatedAt(v time.Time) *AppointmentRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AppointmentRequestUpdateOne) SetClinicID(v uuid.UUID) *AppointmentRequestUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AppointmentRequestUpdateOne) SetNillableClinicID(v *uuid.UUID) *AppointmentRequestUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *AppointmentRequestUpdateOne) SetTherapistID(v uuid.UUID) *AppointmentRequestUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *AppointmentRequestUpdateOne) SetNillableTherapistID(v *uuid.UUID) *AppointmentRequestUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentRequestUpdateOne) SetPatientID(v uuid.UUID) *AppointmentRequestUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentRequestUpdateOne) SetNillablePatientID(v *uuid.UUID) *AppointmentRequestUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetRequestedStart sets the "requested_start" field.
func (_u *AppointmentRequestUpdateOne) SetRequestedStart(v time.Time) *AppointmentRequestUpdateOne {
	_u.mutation.SetRequestedStart(v)
	return _u
}

// SetNillableRequestedStart sets the "requested_start" field if the given value is not nil.
func (_u *AppointmentRequestUpdateOne) SetNillableRequestedStart(v *time.Time) *AppointmentRequestUpdateOne {
	if v != nil {
		_u.SetRequestedStart(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *AppointmentRequestUpdateOne) SetDurationMinutes(v int) *AppointmentRequestUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *AppointmentRequestUpdateOne) SetNillableDurationMinutes(v *int) *AppointmentRequestUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *AppointmentRequestUpdateOne) AddDurationMinutes(v int) *AppointmentRequestUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentRequestUpdateOne) SetStatus(v appointmentrequest.Status) *AppointmentRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentRequestUpdateOne) SetNillableStatus(v *appointmentrequest.Status) *AppointmentRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPatientNote sets the "patient_note" field.
func (_u *AppointmentRequestUpdateOne) SetPatientNote(v string) *AppointmentRequestUpdateOne {
	_u.mutation.SetPatientNote(v)
	return _u
}

// SetNillablePatientNote sets the "patient_note" field if the given value is not nil.
func (_u *AppointmentRequestUpdateOne) SetNillablePatientNote(v *string) *AppointmentRequestUpdateOne {
	if v != nil {
		_u.SetPatientNote(*v)
	}
	return _u
}

// ClearPatientNote clears the value of the "patient_note" field.
func (_u *AppointmentRequestUpdateOne) ClearPatientNote() *AppointmentRequestUpdateOne {
	_u.mutation.ClearPatientNote()
	return _u
}

// SetTherapistNote sets the "therapist_note" field.
func (_u *AppointmentRequestUpdateOne) SetTherapistNote(v string) *AppointmentRequestUpdateOne {
	_u.mutation.SetTherapistNote(v)
	return _u
}

// SetNillableTherapistNote sets the "therapist_note" field if the given value is not nil.
func (_u *AppointmentRequestUpdateOne) SetNillableTherapistNote(v *string) *AppointmentRequestUpdateOne {
	if v != nil {
		_u.SetTherapistNote(*v)
	}
	return _u
}

// ClearTherapistNote clears the value of the "therapist_note" field.
func (_u *AppointmentRequestUpdateOne) ClearTherapistNote() *AppointmentRequestUpdateOne {
	_u.mutation.ClearTherapistNote()
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *AppointmentRequestUpdateOne) SetAppointmentID(v uuid.UUID) *AppointmentRequestUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *AppointmentRequestUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *AppointmentRequestUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// ClearAppointmentID clears the value of the "appointment_id" field.
func (_u *AppointmentRequestUpdateOne) ClearAppointmentID() *AppointmentRequestUpdateOne {
	_u.mutation.ClearAppointmentID()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *AppointmentRequestUpdateOne) SetDecidedAt(v time.Time) *AppointmentRequestUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *AppointmentRequestUpdateOne) SetNillableDecidedAt(v *time.Time) *AppointmentRequestUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *AppointmentRequestUpdateOne) ClearDecidedAt() *AppointmentRequestUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// Mutation returns the AppointmentRequestMutation object of the builder.
func (_u *AppointmentRequestUpdateOne) Mutation() *AppointmentRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentRequestUpdate builder.
func (_u *AppointmentRequestUpdateOne) Where(ps ...predicate.AppointmentRequest) *AppointmentRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentRequestUpdateOne) Select(field string, fields ...string) *AppointmentRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AppointmentRequest entity.
func (_u *AppointmentRequestUpdateOne) Save(ctx context.Context) (*AppointmentRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentRequestUpdateOne) SaveX(ctx context.Context) *AppointmentRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointmentrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentRequestUpdateOne) check() error {
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := appointmentrequest.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "AppointmentRequest.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointmentrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "AppointmentRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentRequestUpdateOne) sqlSave(ctx context.Context) (_node *AppointmentRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointmentrequest.Table, appointmentrequest.Columns, sqlgraph.NewFieldSpec(appointmentrequest.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AppointmentRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointmentrequest.FieldID)
		for _, f := range fields {
			if !appointmentrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointmentrequest.FieldID {
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
		_spec.SetField(appointmentrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(appointmentrequest.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(appointmentrequest.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(appointmentrequest.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RequestedStart(); ok {
		_spec.SetField(appointmentrequest.FieldRequestedStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(appointmentrequest.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(appointmentrequest.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointmentrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PatientNote(); ok {
		_spec.SetField(appointmentrequest.FieldPatientNote, field.TypeString, value)
	}
	if _u.mutation.PatientNoteCleared() {
		_spec.ClearField(appointmentrequest.FieldPatientNote, field.TypeString)
	}
	if value, ok := _u.mutation.TherapistNote(); ok {
		_spec.SetField(appointmentrequest.FieldTherapistNote, field.TypeString, value)
	}
	if _u.mutation.TherapistNoteCleared() {
		_spec.ClearField(appointmentrequest.FieldTherapistNote, field.TypeString)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(appointmentrequest.FieldAppointmentID, field.TypeUUID, value)
	}
	if _u.mutation.AppointmentIDCleared() {
		_spec.ClearField(appointmentrequest.FieldAppointmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(appointmentrequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(appointmentrequest.FieldDecidedAt, field.TypeTime)
	}
	_node = &AppointmentRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointmentrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arnicahealth/arnica_backend/internal/repo/appointmentrequest"
	"github.com/google/uuid"
)

// AppointmentRequest is the model entity for the AppointmentRequest schema.
type AppointmentRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// FK → clinic_members.id
	TherapistID uuid.UUID `json:"therapist_id,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// RequestedStart holds the value of the "requested_start" field.
	RequestedStart time.Time `json:"requested_start,omitempty"`
	// DurationMinutes holds the value of the "duration_minutes" field.
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// Status holds the value of the "status" field.
	Status appointmentrequest.Status `json:"status,omitempty"`
	// PatientNote holds the value of the "patient_note" field.
	PatientNote *string `json:"patient_note,omitempty"`
	// TherapistNote holds the value of the "therapist_note" field.
	TherapistNote *string `json:"therapist_note,omitempty"`
	// Appointment spawned on approval
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	// DecidedAt holds the value of the "decided_at" field.
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AppointmentRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appointmentrequest.FieldAppointmentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case appointmentrequest.FieldDurationMinutes:
			values[i] = new(sql.NullInt64)
		case appointmentrequest.FieldStatus, appointmentrequest.FieldPatientNote, appointmentrequest.FieldTherapistNote:
			values[i] = new(sql.NullString)
		case appointmentrequest.FieldCreatedAt, appointmentrequest.FieldUpdatedAt, appointmentrequest.FieldRequestedStart, appointmentrequest.FieldDecidedAt:
			values[i] = new(sql.NullTime)
		case appointmentrequest.FieldID, appointmentrequest.FieldClinicID, appointmentrequest.FieldTherapistID, appointmentrequest.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AppointmentRequest fields.
func (_m *AppointmentRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appointmentrequest.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case appointmentrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case appointmentrequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case appointmentrequest.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case appointmentrequest.FieldTherapistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field therapist_id", values[i])
			} else if value != nil {
				_m.TherapistID = *value
			}
		case appointmentrequest.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case appointmentrequest.FieldRequestedStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field requested_start", values[i])
			} else if value.Valid {
				_m.RequestedStart = value.Time
			}
		case appointmentrequest.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case appointmentrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = appointmentrequest.Status(value.String)
			}
		case appointmentrequest.FieldPatientNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_note", values[i])
			} else if value.Valid {
				_m.PatientNote = new(string)
				*_m.PatientNote = value.String
			}
		case appointmentrequest.FieldTherapistNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field therapist_note", values[i])
			} else if value.Valid {
				_m.TherapistNote = new(string)
				*_m.TherapistNote = value.String
			}
		case appointmentrequest.FieldAppointmentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_id", values[i])
			} else if value.Valid {
				_m.AppointmentID = new(uuid.UUID)
				*_m.AppointmentID = *value.S.(*uuid.UUID)
			}
		case appointmentrequest.FieldDecidedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decided_at", values[i])
			} else if value.Valid {
				_m.DecidedAt = new(time.Time)
				*_m.DecidedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AppointmentRequest.
// This includes values selected through modifiers, order, etc.
func (_m *AppointmentRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AppointmentRequest.
// Note that you need to call AppointmentRequest.Unwrap() before calling this method if this AppointmentRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AppointmentRequest) Update() *AppointmentRequestUpdateOne {
	return NewAppointmentRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AppointmentRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AppointmentRequest) Unwrap() *AppointmentRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AppointmentRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AppointmentRequest) String() string {
	var builder strings.Builder
	builder.WriteString("AppointmentRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("clinic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicID))
	builder.WriteString(", ")
	builder.WriteString("therapist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TherapistID))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("requested_start=")
	builder.WriteString(_m.RequestedStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.PatientNote; v != nil {
		builder.WriteString("patient_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TherapistNote; v != nil {
		builder.WriteString("therapist_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AppointmentID; v != nil {
		builder.WriteString("appointment_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DecidedAt; v != nil {
		builder.WriteString("decided_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AppointmentRequests is a parsable slice of AppointmentRequest.
type AppointmentRequests []*AppointmentRequest

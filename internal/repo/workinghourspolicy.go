// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arnicahealth/arnica_backend/internal/repo/workinghourspolicy"
	"github.com/arnicahealth/arnica_backend/internal/schema"
	"github.com/google/uuid"
)

// WorkingHoursPolicy is the model entity for the WorkingHoursPolicy schema.
type WorkingHoursPolicy struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// FK → clinic_members.id (1:1)
	TherapistID uuid.UUID `json:"therapist_id,omitempty"`
	// Keyed by lowercase weekday name; absent key = closed
	Weekly map[string]schema.DaySpan `json:"weekly,omitempty"`
	// Minimum gap before and after every existing appointment
	BufferMinutes int `json:"buffer_minutes,omitempty"`
	// When true, buffer_minutes is ignored entirely
	AllowBackToBack bool `json:"allow_back_to_back,omitempty"`
	// Advisory cap; not enforced by availability computation
	MaxDailyAppointments *int `json:"max_daily_appointments,omitempty"`
	selectValues         sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkingHoursPolicy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workinghourspolicy.FieldWeekly:
			values[i] = new([]byte)
		case workinghourspolicy.FieldAllowBackToBack:
			values[i] = new(sql.NullBool)
		case workinghourspolicy.FieldBufferMinutes, workinghourspolicy.FieldMaxDailyAppointments:
			values[i] = new(sql.NullInt64)
		case workinghourspolicy.FieldCreatedAt, workinghourspolicy.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case workinghourspolicy.FieldID, workinghourspolicy.FieldClinicID, workinghourspolicy.FieldTherapistID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkingHoursPolicy fields.
func (_m *WorkingHoursPolicy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workinghourspolicy.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case workinghourspolicy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workinghourspolicy.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case workinghourspolicy.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case workinghourspolicy.FieldTherapistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field therapist_id", values[i])
			} else if value != nil {
				_m.TherapistID = *value
			}
		case workinghourspolicy.FieldWeekly:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weekly", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Weekly); err != nil {
					return fmt.Errorf("unmarshal field weekly: %w", err)
				}
			}
		case workinghourspolicy.FieldBufferMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field buffer_minutes", values[i])
			} else if value.Valid {
				_m.BufferMinutes = int(value.Int64)
			}
		case workinghourspolicy.FieldAllowBackToBack:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allow_back_to_back", values[i])
			} else if value.Valid {
				_m.AllowBackToBack = value.Bool
			}
		case workinghourspolicy.FieldMaxDailyAppointments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_daily_appointments", values[i])
			} else if value.Valid {
				_m.MaxDailyAppointments = new(int)
				*_m.MaxDailyAppointments = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkingHoursPolicy.
// This includes values selected through modifiers, order, etc.
func (_m *WorkingHoursPolicy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WorkingHoursPolicy.
// Note that you need to call WorkingHoursPolicy.Unwrap() before calling this method if this WorkingHoursPolicy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkingHoursPolicy) Update() *WorkingHoursPolicyUpdateOne {
	return NewWorkingHoursPolicyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkingHoursPolicy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkingHoursPolicy) Unwrap() *WorkingHoursPolicy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: WorkingHoursPolicy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkingHoursPolicy) String() string {
	var builder strings.Builder
	builder.WriteString("WorkingHoursPolicy(")
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
	builder.WriteString("weekly=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weekly))
	builder.WriteString(", ")
	builder.WriteString("buffer_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.BufferMinutes))
	builder.WriteString(", ")
	builder.WriteString("allow_back_to_back=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowBackToBack))
	builder.WriteString(", ")
	if v := _m.MaxDailyAppointments; v != nil {
		builder.WriteString("max_daily_appointments=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// WorkingHoursPolicies is a parsable slice of WorkingHoursPolicy.
type WorkingHoursPolicies []*WorkingHoursPolicy

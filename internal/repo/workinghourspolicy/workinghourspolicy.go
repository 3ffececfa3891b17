// Code generated by ent, DO NOT EDIT.

package workinghourspolicy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the workinghourspolicy type in the database.
	Label = "working_hours_policy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldTherapistID holds the string denoting the therapist_id field in the database.
	FieldTherapistID = "therapist_id"
	// FieldWeekly holds the string denoting the weekly field in the database.
	FieldWeekly = "weekly"
	// FieldBufferMinutes holds the string denoting the buffer_minutes field in the database.
	FieldBufferMinutes = "buffer_minutes"
	// FieldAllowBackToBack holds the string denoting the allow_back_to_back field in the database.
	FieldAllowBackToBack = "allow_back_to_back"
	// FieldMaxDailyAppointments holds the string denoting the max_daily_appointments field in the database.
	FieldMaxDailyAppointments = "max_daily_appointments"
	// Table holds the table name of the workinghourspolicy in the database.
	Table = "working_hours_policies"
)

// Columns holds all SQL columns for workinghourspolicy fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClinicID,
	FieldTherapistID,
	FieldWeekly,
	FieldBufferMinutes,
	FieldAllowBackToBack,
	FieldMaxDailyAppointments,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultBufferMinutes holds the default value on creation for the "buffer_minutes" field.
	DefaultBufferMinutes int
	// DefaultAllowBackToBack holds the default value on creation for the "allow_back_to_back" field.
	DefaultAllowBackToBack bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the WorkingHoursPolicy queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByTherapistID orders the results by the therapist_id field.
func ByTherapistID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTherapistID, opts...).ToFunc()
}

// ByBufferMinutes orders the results by the buffer_minutes field.
func ByBufferMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBufferMinutes, opts...).ToFunc()
}

// ByAllowBackToBack orders the results by the allow_back_to_back field.
func ByAllowBackToBack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowBackToBack, opts...).ToFunc()
}

// ByMaxDailyAppointments orders the results by the max_daily_appointments field.
func ByMaxDailyAppointments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDailyAppointments, opts...).ToFunc()
}

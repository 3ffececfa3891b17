// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// AppointmentRequest is the predicate function for appointmentrequest builders.
type AppointmentRequest func(*sql.Selector)

// Clinic is the predicate function for clinic builders.
type Clinic func(*sql.Selector)

// ClinicMember is the predicate function for clinicmember builders.
type ClinicMember func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// WorkingHoursPolicy is the predicate function for workinghourspolicy builders.
type WorkingHoursPolicy func(*sql.Selector)

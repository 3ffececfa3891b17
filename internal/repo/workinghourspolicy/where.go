// Code generated by ent, DO NOT EDIT.

package workinghourspolicy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arnicahealth/arnica_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldClinicID, v))
}

// TherapistID applies equality check predicate on the "therapist_id" field. It's identical to TherapistIDEQ.
func TherapistID(v uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldTherapistID, v))
}

// BufferMinutes applies equality check predicate on the "buffer_minutes" field. It's identical to BufferMinutesEQ.
func BufferMinutes(v int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldBufferMinutes, v))
}

// AllowBackToBack applies equality check predicate on the "allow_back_to_back" field. It's identical to AllowBackToBackEQ.
func AllowBackToBack(v bool) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldAllowBackToBack, v))
}

// MaxDailyAppointments applies equality check predicate on the "max_daily_appointments" field. It's identical to MaxDailyAppointmentsEQ.
func MaxDailyAppointments(v int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldMaxDailyAppointments, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldLTE(FieldClinicID, v))
}

// TherapistIDEQ applies the EQ predicate on the "therapist_id" field.
func TherapistIDEQ(v uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldTherapistID, v))
}

// TherapistIDNEQ applies the NEQ predicate on the "therapist_id" field.
func TherapistIDNEQ(v uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNEQ(FieldTherapistID, v))
}

// TherapistIDIn applies the In predicate on the "therapist_id" field.
func TherapistIDIn(vs ...uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldIn(FieldTherapistID, vs...))
}

// TherapistIDNotIn applies the NotIn predicate on the "therapist_id" field.
func TherapistIDNotIn(vs ...uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNotIn(FieldTherapistID, vs...))
}

// TherapistIDGT applies the GT predicate on the "therapist_id" field.
func TherapistIDGT(v uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldGT(FieldTherapistID, v))
}

// TherapistIDGTE applies the GTE predicate on the "therapist_id" field.
func TherapistIDGTE(v uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldGTE(FieldTherapistID, v))
}

// TherapistIDLT applies the LT predicate on the "therapist_id" field.
func TherapistIDLT(v uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldLT(FieldTherapistID, v))
}

// TherapistIDLTE applies the LTE predicate on the "therapist_id" field.
func TherapistIDLTE(v uuid.UUID) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldLTE(FieldTherapistID, v))
}

// BufferMinutesEQ applies the EQ predicate on the "buffer_minutes" field.
func BufferMinutesEQ(v int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldBufferMinutes, v))
}

// BufferMinutesNEQ applies the NEQ predicate on the "buffer_minutes" field.
func BufferMinutesNEQ(v int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNEQ(FieldBufferMinutes, v))
}

// BufferMinutesIn applies the In predicate on the "buffer_minutes" field.
func BufferMinutesIn(vs ...int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldIn(FieldBufferMinutes, vs...))
}

// BufferMinutesNotIn applies the NotIn predicate on the "buffer_minutes" field.
func BufferMinutesNotIn(vs ...int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNotIn(FieldBufferMinutes, vs...))
}

// BufferMinutesGT applies the GT predicate on the "buffer_minutes" field.
func BufferMinutesGT(v int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldGT(FieldBufferMinutes, v))
}

// BufferMinutesGTE applies the GTE predicate on the "buffer_minutes" field.
func BufferMinutesGTE(v int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldGTE(FieldBufferMinutes, v))
}

// BufferMinutesLT applies the LT predicate on the "buffer_minutes" field.
func BufferMinutesLT(v int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldLT(FieldBufferMinutes, v))
}

// BufferMinutesLTE applies the LTE predicate on the "buffer_minutes" field.
func BufferMinutesLTE(v int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldLTE(FieldBufferMinutes, v))
}

// AllowBackToBackEQ applies the EQ predicate on the "allow_back_to_back" field.
func AllowBackToBackEQ(v bool) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldAllowBackToBack, v))
}

// AllowBackToBackNEQ applies the NEQ predicate on the "allow_back_to_back" field.
func AllowBackToBackNEQ(v bool) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNEQ(FieldAllowBackToBack, v))
}

// MaxDailyAppointmentsEQ applies the EQ predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsEQ(v int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldEQ(FieldMaxDailyAppointments, v))
}

// MaxDailyAppointmentsNEQ applies the NEQ predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsNEQ(v int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNEQ(FieldMaxDailyAppointments, v))
}

// MaxDailyAppointmentsIn applies the In predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsIn(vs ...int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldIn(FieldMaxDailyAppointments, vs...))
}

// MaxDailyAppointmentsNotIn applies the NotIn predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsNotIn(vs ...int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNotIn(FieldMaxDailyAppointments, vs...))
}

// MaxDailyAppointmentsGT applies the GT predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsGT(v int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldGT(FieldMaxDailyAppointments, v))
}

// MaxDailyAppointmentsGTE applies the GTE predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsGTE(v int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldGTE(FieldMaxDailyAppointments, v))
}

// MaxDailyAppointmentsLT applies the LT predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsLT(v int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldLT(FieldMaxDailyAppointments, v))
}

// MaxDailyAppointmentsLTE applies the LTE predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsLTE(v int) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldLTE(FieldMaxDailyAppointments, v))
}

// MaxDailyAppointmentsIsNil applies the IsNil predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsIsNil() predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldIsNull(FieldMaxDailyAppointments))
}

// MaxDailyAppointmentsNotNil applies the NotNil predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsNotNil() predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.FieldNotNull(FieldMaxDailyAppointments))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkingHoursPolicy) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkingHoursPolicy) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkingHoursPolicy) predicate.WorkingHoursPolicy {
	return predicate.WorkingHoursPolicy(sql.NotPredicates(p))
}

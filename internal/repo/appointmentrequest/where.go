// Code generated by ent, DO NOT EDIT.

package appointmentrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arnicahealth/arnica_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldClinicID, v))
}

// TherapistID applies equality check predicate on the "therapist_id" field. It's identical to TherapistIDEQ.
func TherapistID(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldTherapistID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldPatientID, v))
}

// RequestedStart applies equality check predicate on the "requested_start" field. It's identical to RequestedStartEQ.
func RequestedStart(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldRequestedStart, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldDurationMinutes, v))
}

// PatientNote applies equality check predicate on the "patient_note" field. It's identical to PatientNoteEQ.
func PatientNote(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldPatientNote, v))
}

// TherapistNote applies equality check predicate on the "therapist_note" field. It's identical to TherapistNoteEQ.
func TherapistNote(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldTherapistNote, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldAppointmentID, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldDecidedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLTE(FieldClinicID, v))
}

// TherapistIDEQ applies the EQ predicate on the "therapist_id" field.
func TherapistIDEQ(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldTherapistID, v))
}

// TherapistIDNEQ applies the NEQ predicate on the "therapist_id" field.
func TherapistIDNEQ(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNEQ(FieldTherapistID, v))
}

// TherapistIDIn applies the In predicate on the "therapist_id" field.
func TherapistIDIn(vs ...uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIn(FieldTherapistID, vs...))
}

// TherapistIDNotIn applies the NotIn predicate on the "therapist_id" field.
func TherapistIDNotIn(vs ...uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotIn(FieldTherapistID, vs...))
}

// TherapistIDGT applies the GT predicate on the "therapist_id" field.
func TherapistIDGT(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGT(FieldTherapistID, v))
}

// TherapistIDGTE applies the GTE predicate on the "therapist_id" field.
func TherapistIDGTE(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGTE(FieldTherapistID, v))
}

// TherapistIDLT applies the LT predicate on the "therapist_id" field.
func TherapistIDLT(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLT(FieldTherapistID, v))
}

// TherapistIDLTE applies the LTE predicate on the "therapist_id" field.
func TherapistIDLTE(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLTE(FieldTherapistID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLTE(FieldPatientID, v))
}

// RequestedStartEQ applies the EQ predicate on the "requested_start" field.
func RequestedStartEQ(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldRequestedStart, v))
}

// RequestedStartNEQ applies the NEQ predicate on the "requested_start" field.
func RequestedStartNEQ(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNEQ(FieldRequestedStart, v))
}

// RequestedStartIn applies the In predicate on the "requested_start" field.
func RequestedStartIn(vs ...time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIn(FieldRequestedStart, vs...))
}

// RequestedStartNotIn applies the NotIn predicate on the "requested_start" field.
func RequestedStartNotIn(vs ...time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotIn(FieldRequestedStart, vs...))
}

// RequestedStartGT applies the GT predicate on the "requested_start" field.
func RequestedStartGT(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGT(FieldRequestedStart, v))
}

// RequestedStartGTE applies the GTE predicate on the "requested_start" field.
func RequestedStartGTE(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGTE(FieldRequestedStart, v))
}

// RequestedStartLT applies the LT predicate on the "requested_start" field.
func RequestedStartLT(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLT(FieldRequestedStart, v))
}

// RequestedStartLTE applies the LTE predicate on the "requested_start" field.
func RequestedStartLTE(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLTE(FieldRequestedStart, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLTE(FieldDurationMinutes, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// PatientNoteEQ applies the EQ predicate on the "patient_note" field.
func PatientNoteEQ(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldPatientNote, v))
}

// PatientNoteNEQ applies the NEQ predicate on the "patient_note" field.
func PatientNoteNEQ(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNEQ(FieldPatientNote, v))
}

// PatientNoteIn applies the In predicate on the "patient_note" field.
func PatientNoteIn(vs ...string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIn(FieldPatientNote, vs...))
}

// PatientNoteNotIn applies the NotIn predicate on the "patient_note" field.
func PatientNoteNotIn(vs ...string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotIn(FieldPatientNote, vs...))
}

// PatientNoteGT applies the GT predicate on the "patient_note" field.
func PatientNoteGT(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGT(FieldPatientNote, v))
}

// PatientNoteGTE applies the GTE predicate on the "patient_note" field.
func PatientNoteGTE(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGTE(FieldPatientNote, v))
}

// PatientNoteLT applies the LT predicate on the "patient_note" field.
func PatientNoteLT(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLT(FieldPatientNote, v))
}

// PatientNoteLTE applies the LTE predicate on the "patient_note" field.
func PatientNoteLTE(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLTE(FieldPatientNote, v))
}

// PatientNoteContains applies the Contains predicate on the "patient_note" field.
func PatientNoteContains(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldContains(FieldPatientNote, v))
}

// PatientNoteHasPrefix applies the HasPrefix predicate on the "patient_note" field.
func PatientNoteHasPrefix(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldHasPrefix(FieldPatientNote, v))
}

// PatientNoteHasSuffix applies the HasSuffix predicate on the "patient_note" field.
func PatientNoteHasSuffix(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldHasSuffix(FieldPatientNote, v))
}

// PatientNoteIsNil applies the IsNil predicate on the "patient_note" field.
func PatientNoteIsNil() predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIsNull(FieldPatientNote))
}

// PatientNoteNotNil applies the NotNil predicate on the "patient_note" field.
func PatientNoteNotNil() predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotNull(FieldPatientNote))
}

// PatientNoteEqualFold applies the EqualFold predicate on the "patient_note" field.
func PatientNoteEqualFold(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEqualFold(FieldPatientNote, v))
}

// PatientNoteContainsFold applies the ContainsFold predicate on the "patient_note" field.
func PatientNoteContainsFold(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldContainsFold(FieldPatientNote, v))
}

// TherapistNoteEQ applies the EQ predicate on the "therapist_note" field.
func TherapistNoteEQ(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldTherapistNote, v))
}

// TherapistNoteNEQ applies the NEQ predicate on the "therapist_note" field.
func TherapistNoteNEQ(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNEQ(FieldTherapistNote, v))
}

// TherapistNoteIn applies the In predicate on the "therapist_note" field.
func TherapistNoteIn(vs ...string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIn(FieldTherapistNote, vs...))
}

// TherapistNoteNotIn applies the NotIn predicate on the "therapist_note" field.
func TherapistNoteNotIn(vs ...string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotIn(FieldTherapistNote, vs...))
}

// TherapistNoteGT applies the GT predicate on the "therapist_note" field.
func TherapistNoteGT(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGT(FieldTherapistNote, v))
}

// TherapistNoteGTE applies the GTE predicate on the "therapist_note" field.
func TherapistNoteGTE(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGTE(FieldTherapistNote, v))
}

// TherapistNoteLT applies the LT predicate on the "therapist_note" field.
func TherapistNoteLT(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLT(FieldTherapistNote, v))
}

// TherapistNoteLTE applies the LTE predicate on the "therapist_note" field.
func TherapistNoteLTE(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLTE(FieldTherapistNote, v))
}

// TherapistNoteContains applies the Contains predicate on the "therapist_note" field.
func TherapistNoteContains(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldContains(FieldTherapistNote, v))
}

// TherapistNoteHasPrefix applies the HasPrefix predicate on the "therapist_note" field.
func TherapistNoteHasPrefix(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldHasPrefix(FieldTherapistNote, v))
}

// TherapistNoteHasSuffix applies the HasSuffix predicate on the "therapist_note" field.
func TherapistNoteHasSuffix(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldHasSuffix(FieldTherapistNote, v))
}

// TherapistNoteIsNil applies the IsNil predicate on the "therapist_note" field.
func TherapistNoteIsNil() predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIsNull(FieldTherapistNote))
}

// TherapistNoteNotNil applies the NotNil predicate on the "therapist_note" field.
func TherapistNoteNotNil() predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotNull(FieldTherapistNote))
}

// TherapistNoteEqualFold applies the EqualFold predicate on the "therapist_note" field.
func TherapistNoteEqualFold(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEqualFold(FieldTherapistNote, v))
}

// TherapistNoteContainsFold applies the ContainsFold predicate on the "therapist_note" field.
func TherapistNoteContainsFold(v string) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldContainsFold(FieldTherapistNote, v))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// AppointmentIDGT applies the GT predicate on the "appointment_id" field.
func AppointmentIDGT(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGT(FieldAppointmentID, v))
}

// AppointmentIDGTE applies the GTE predicate on the "appointment_id" field.
func AppointmentIDGTE(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGTE(FieldAppointmentID, v))
}

// AppointmentIDLT applies the LT predicate on the "appointment_id" field.
func AppointmentIDLT(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLT(FieldAppointmentID, v))
}

// AppointmentIDLTE applies the LTE predicate on the "appointment_id" field.
func AppointmentIDLTE(v uuid.UUID) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLTE(FieldAppointmentID, v))
}

// AppointmentIDIsNil applies the IsNil predicate on the "appointment_id" field.
func AppointmentIDIsNil() predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIsNull(FieldAppointmentID))
}

// AppointmentIDNotNil applies the NotNil predicate on the "appointment_id" field.
func AppointmentIDNotNil() predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotNull(FieldAppointmentID))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.FieldNotNull(FieldDecidedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AppointmentRequest) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AppointmentRequest) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AppointmentRequest) predicate.AppointmentRequest {
	return predicate.AppointmentRequest(sql.NotPredicates(p))
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked session between a therapist and a patient.
// Recurring series are stored as a root plus N children, every child carrying
// parent_appointment_id = root.id; a nil parent means standalone or root.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → clinic_members.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Time("start_time"),

		field.Int("duration_minutes").
			Positive(),

		field.Enum("status").
			Values("scheduled", "completed", "cancelled").
			Default("scheduled").
			Comment("Cancelled appointments never block availability"),

		field.UUID("parent_appointment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Root id of the recurring series this occurrence belongs to"),

		field.Time("recurrence_end_date").
			Optional().
			Nillable().
			Comment("Set on the series root; last date a weekly child is generated for"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.Enum("cancel_requested_by").
			Values("patient", "therapist", "clinic").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "therapist_id", "start_time"),
		index.Fields("clinic_id", "patient_id"),
		index.Fields("therapist_id", "status", "start_time"),
		index.Fields("parent_appointment_id"),
	}
}

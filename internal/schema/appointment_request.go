package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AppointmentRequest is a patient's ask for a specific slot. Only pending
// requests are actionable; a request is decided (approved or denied) exactly
// once and is immutable afterward.
type AppointmentRequest struct {
	ent.Schema
}

func (AppointmentRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AppointmentRequest) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → clinic_members.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Time("requested_start"),

		field.Int("duration_minutes").
			Positive(),

		field.Enum("status").
			Values("pending", "approved", "denied").
			Default("pending"),

		field.Text("patient_note").
			Optional().
			Nillable(),

		field.Text("therapist_note").
			Optional().
			Nillable(),

		field.UUID("appointment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Appointment spawned on approval"),

		field.Time("decided_at").
			Optional().
			Nillable(),
	}
}

func (AppointmentRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "therapist_id", "status"),
		index.Fields("patient_id", "status"),
	}
}

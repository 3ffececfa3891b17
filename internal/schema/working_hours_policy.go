package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DaySpan is the stored open/close pair for one weekday, "HH:MM" 24-hour.
// Parsed and validated at the service boundary before any slot math sees it.
type DaySpan struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WorkingHoursPolicy holds a therapist's weekly schedule and buffer rules.
// One row per therapist; the weekly map is replaced wholesale on save, never
// patched per-day.
type WorkingHoursPolicy struct {
	ent.Schema
}

func (WorkingHoursPolicy) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (WorkingHoursPolicy) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("therapist_id", uuid.UUID{}).
			Unique().
			Comment("FK → clinic_members.id (1:1)"),

		field.JSON("weekly", map[string]DaySpan{}).
			Comment("Keyed by lowercase weekday name; absent key = closed"),

		field.Int("buffer_minutes").
			Default(0).
			Comment("Minimum gap before and after every existing appointment"),

		field.Bool("allow_back_to_back").
			Default(true).
			Comment("When true, buffer_minutes is ignored entirely"),

		field.Int("max_daily_appointments").
			Optional().
			Nillable().
			Comment("Advisory cap; not enforced by availability computation"),
	}
}

func (WorkingHoursPolicy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id"),
		index.Fields("therapist_id"),
	}
}

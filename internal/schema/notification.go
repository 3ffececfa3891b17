package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Notification is an in-app message for a user (member or patient).
// Created by workers reacting to scheduling events; delivery over email/SMS
// is best-effort and separate from this record.
type Notification struct {
	ent.Schema
}

func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("recipient_id", uuid.UUID{}),

		field.String("type").
			MaxLen(50).
			Comment("e.g. appointment_created, request_approved, series_rescheduled"),

		field.String("title").
			MaxLen(255).
			NotEmpty(),

		field.Text("body").
			Optional().
			Nillable(),

		field.JSON("data", map[string]any{}).
			Optional(),

		field.Bool("is_read").
			Default(false),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_id", "is_read"),
		index.Fields("recipient_id", "created_at"),
	}
}

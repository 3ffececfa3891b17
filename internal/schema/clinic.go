package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Clinic
// ---------------------------------------------------------------------------

type Clinic struct {
	ent.Schema
}

func (Clinic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Clinic) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("slug").
			MaxLen(100).
			NotEmpty().
			Unique().
			Comment("URL-friendly identifier for the clinic"),

		field.String("timezone").
			Default("UTC").
			MaxLen(64).
			Comment("IANA zone name; schedule dates resolve in this zone"),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("address").
			Optional().
			Nillable(),

		field.Bool("is_active").Default(true),
	}
}

func (Clinic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
	}
}

func (Clinic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("members", ClinicMember.Type),
	}
}

// ---------------------------------------------------------------------------
// ClinicMember: a user's membership in a clinic with a role
// ---------------------------------------------------------------------------

type ClinicMember struct {
	ent.Schema
}

func (ClinicMember) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (ClinicMember) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("Identity subject from the auth token"),

		field.String("full_name").
			MaxLen(255).
			NotEmpty(),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.Enum("role").
			Values("admin", "therapist").
			Comment("Role of this user in the clinic"),

		field.Bool("is_active").Default(true),

		field.Time("joined_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ClinicMember) Indexes() []ent.Index {
	return []ent.Index{
		// A user can only have one membership record per clinic
		index.Fields("clinic_id", "user_id").Unique(),
		index.Fields("clinic_id"),
		index.Fields("user_id"),
	}
}

func (ClinicMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("clinic", Clinic.Type).
			Ref("members").
			Unique().
			Required().
			Field("clinic_id"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// SessionOffering is a doctor's priced instance of a session type, bound to
// exactly one branch at any time. Branch transfers copy the record to the
// target branch under a new id; they never rewrite the original's identity.
type SessionOffering struct {
	ent.Schema
}

func (SessionOffering) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (SessionOffering) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("Ref → doctor-service doctors.id"),

		field.UUID("branch_id", uuid.UUID{}).
			Comment("Ref → address-service branches.id; the field transfers change"),

		field.UUID("session_type_id", uuid.UUID{}).
			Comment("Ref → session_types.id"),

		field.String("session_type_name").
			MaxLen(100).
			Comment("Denormalized display name, snapshotted at create time"),

		field.Int64("price").
			NonNegative().
			Comment("Price in minor currency units (cents)"),

		field.Bool("is_active").
			Default(true),
	}
}

func (SessionOffering) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id"),
		index.Fields("branch_id"),
		index.Fields("session_type_id"),
		// A doctor offers a given type at most once per branch; transferring
		// into a branch that already has the offering fails per item.
		index.Fields("doctor_id", "branch_id", "session_type_id").Unique(),
	}
}

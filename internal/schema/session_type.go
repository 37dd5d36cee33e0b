package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionType is a global catalog entry describing a consultation type,
// e.g. "30-minute telemedicine consult".
type SessionType struct {
	ent.Schema
}

func (SessionType) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (SessionType) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(100).
			Unique(),

		field.Text("description").
			Optional().
			Nillable(),

		field.Int("default_duration_minutes"),

		field.Bool("is_telemedicine_available").
			Default(false),

		field.Enum("status").
			Values("active", "inactive", "deleted").
			Default("active").
			Comment("Soft delete via status=deleted; deleted types stay queryable for audit"),
	}
}

func (SessionType) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}

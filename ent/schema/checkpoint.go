package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Checkpoint stores the single recoverable session snapshot. At most one
// row exists; saving replaces it.
type Checkpoint struct {
	ent.Schema
}

func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.Bytes("data").
			Comment("Session state serialized as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			Comment("Last activity time, drives the recovery window"),
	}
}

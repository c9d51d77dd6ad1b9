package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Completion records a concluded exam attempt or category test so its
// session is never offered for recovery again.
type Completion struct {
	ent.Schema
}

func (Completion) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("exam or test"),
		field.String("ref").
			NotEmpty().
			Comment("Exam attempt id or test category name"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Completion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "ref").Unique(),
	}
}

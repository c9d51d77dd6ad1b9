package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answer submission.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Identifies the study session the answer belongs to"),
		field.String("mode").
			NotEmpty().
			Comment("practice, category-test, or exam"),
		field.String("category").
			Comment("Question category; empty for exam questions"),
		field.String("question_id").
			NotEmpty().
			Comment("Stable id of the question in the bank"),
		field.String("selected").
			NotEmpty().
			Comment("Option text the user chose"),
		field.Bool("correct").
			Comment("Whether the chosen option matched the answer key"),
		field.Int("time_ms").
			Comment("Milliseconds spent on the question before answering"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("category"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}

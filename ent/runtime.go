// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/openmcq/openmcq/ent/answerevent"
	"github.com/openmcq/openmcq/ent/checkpoint"
	"github.com/openmcq/openmcq/ent/completion"
	"github.com/openmcq/openmcq/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescMode is the schema descriptor for mode field.
	answereventDescMode := answereventFields[1].Descriptor()
	// answerevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	answerevent.ModeValidator = answereventDescMode.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[3].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescSelected is the schema descriptor for selected field.
	answereventDescSelected := answereventFields[4].Descriptor()
	// answerevent.SelectedValidator is a validator for the "selected" field. It is called by the builders before save.
	answerevent.SelectedValidator = answereventDescSelected.Validators[0].(func(string) error)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescUpdatedAt is the schema descriptor for updated_at field.
	checkpointDescUpdatedAt := checkpointFields[1].Descriptor()
	// checkpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checkpoint.DefaultUpdatedAt = checkpointDescUpdatedAt.Default.(func() time.Time)
	completionFields := schema.Completion{}.Fields()
	_ = completionFields
	// completionDescKind is the schema descriptor for kind field.
	completionDescKind := completionFields[0].Descriptor()
	// completion.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	completion.KindValidator = completionDescKind.Validators[0].(func(string) error)
	// completionDescRef is the schema descriptor for ref field.
	completionDescRef := completionFields[1].Descriptor()
	// completion.RefValidator is a validator for the "ref" field. It is called by the builders before save.
	completion.RefValidator = completionDescRef.Validators[0].(func(string) error)
	// completionDescCreatedAt is the schema descriptor for created_at field.
	completionDescCreatedAt := completionFields[2].Descriptor()
	// completion.DefaultCreatedAt holds the default value on creation for the created_at field.
	completion.DefaultCreatedAt = completionDescCreatedAt.Default.(func() time.Time)
}

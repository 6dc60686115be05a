// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/quizdeck/ent/answerevent"
	"github.com/abhisek/quizdeck/ent/feedbackevent"
	"github.com/abhisek/quizdeck/ent/schema"
	"github.com/abhisek/quizdeck/ent/sessionevent"
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
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[2].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[3].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescChosen is the schema descriptor for chosen field.
	answereventDescChosen := answereventFields[4].Descriptor()
	// answerevent.ChosenValidator is a validator for the "chosen" field. It is called by the builders before save.
	answerevent.ChosenValidator = answereventDescChosen.Validators[0].(func(string) error)
	feedbackeventMixin := schema.FeedbackEvent{}.Mixin()
	feedbackeventMixinFields0 := feedbackeventMixin[0].Fields()
	_ = feedbackeventMixinFields0
	feedbackeventFields := schema.FeedbackEvent{}.Fields()
	_ = feedbackeventFields
	// feedbackeventDescTimestamp is the schema descriptor for timestamp field.
	feedbackeventDescTimestamp := feedbackeventMixinFields0[1].Descriptor()
	// feedbackevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	feedbackevent.DefaultTimestamp = feedbackeventDescTimestamp.Default.(func() time.Time)
	// feedbackeventDescSessionID is the schema descriptor for session_id field.
	feedbackeventDescSessionID := feedbackeventFields[0].Descriptor()
	// feedbackevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	feedbackevent.SessionIDValidator = feedbackeventDescSessionID.Validators[0].(func(string) error)
	// feedbackeventDescRating is the schema descriptor for rating field.
	feedbackeventDescRating := feedbackeventFields[1].Descriptor()
	// feedbackevent.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	feedbackevent.RatingValidator = feedbackeventDescRating.Validators[0].(func(int) error)
	// feedbackeventDescComment is the schema descriptor for comment field.
	feedbackeventDescComment := feedbackeventFields[2].Descriptor()
	// feedbackevent.CommentValidator is a validator for the "comment" field. It is called by the builders before save.
	feedbackevent.CommentValidator = feedbackeventDescComment.Validators[0].(func(string) error)
	// feedbackeventDescDelivered is the schema descriptor for delivered field.
	feedbackeventDescDelivered := feedbackeventFields[3].Descriptor()
	// feedbackevent.DefaultDelivered holds the default value on creation for the delivered field.
	feedbackevent.DefaultDelivered = feedbackeventDescDelivered.Default.(bool)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionTarget is the schema descriptor for question_target field.
	sessioneventDescQuestionTarget := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultQuestionTarget holds the default value on creation for the question_target field.
	sessionevent.DefaultQuestionTarget = sessioneventDescQuestionTarget.Default.(int)
	// sessioneventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessioneventDescQuestionsAnswered := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	sessionevent.DefaultQuestionsAnswered = sessioneventDescQuestionsAnswered.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescCompleted is the schema descriptor for completed field.
	sessioneventDescCompleted := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultCompleted holds the default value on creation for the completed field.
	sessionevent.DefaultCompleted = sessioneventDescCompleted.Default.(bool)
}

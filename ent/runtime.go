// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/answerevent"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/bookingrequest"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/insightsnapshot"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/lead"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/llmrequestevent"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/schema"
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
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(int) error)
	// answereventDescCategory is the schema descriptor for category field.
	answereventDescCategory := answereventFields[2].Descriptor()
	// answerevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	answerevent.CategoryValidator = answereventDescCategory.Validators[0].(func(string) error)
	// answereventDescAnswerText is the schema descriptor for answer_text field.
	answereventDescAnswerText := answereventFields[3].Descriptor()
	// answerevent.AnswerTextValidator is a validator for the "answer_text" field. It is called by the builders before save.
	answerevent.AnswerTextValidator = answereventDescAnswerText.Validators[0].(func(string) error)
	bookingrequestFields := schema.BookingRequest{}.Fields()
	_ = bookingrequestFields
	// bookingrequestDescSessionID is the schema descriptor for session_id field.
	bookingrequestDescSessionID := bookingrequestFields[0].Descriptor()
	// bookingrequest.DefaultSessionID holds the default value on creation for the session_id field.
	bookingrequest.DefaultSessionID = bookingrequestDescSessionID.Default.(string)
	// bookingrequestDescName is the schema descriptor for name field.
	bookingrequestDescName := bookingrequestFields[1].Descriptor()
	// bookingrequest.NameValidator is a validator for the "name" field. It is called by the builders before save.
	bookingrequest.NameValidator = bookingrequestDescName.Validators[0].(func(string) error)
	// bookingrequestDescEmail is the schema descriptor for email field.
	bookingrequestDescEmail := bookingrequestFields[2].Descriptor()
	// bookingrequest.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	bookingrequest.EmailValidator = bookingrequestDescEmail.Validators[0].(func(string) error)
	// bookingrequestDescCompany is the schema descriptor for company field.
	bookingrequestDescCompany := bookingrequestFields[3].Descriptor()
	// bookingrequest.DefaultCompany holds the default value on creation for the company field.
	bookingrequest.DefaultCompany = bookingrequestDescCompany.Default.(string)
	// bookingrequestDescPreferredSlot is the schema descriptor for preferred_slot field.
	bookingrequestDescPreferredSlot := bookingrequestFields[4].Descriptor()
	// bookingrequest.DefaultPreferredSlot holds the default value on creation for the preferred_slot field.
	bookingrequest.DefaultPreferredSlot = bookingrequestDescPreferredSlot.Default.(string)
	// bookingrequestDescNotes is the schema descriptor for notes field.
	bookingrequestDescNotes := bookingrequestFields[5].Descriptor()
	// bookingrequest.DefaultNotes holds the default value on creation for the notes field.
	bookingrequest.DefaultNotes = bookingrequestDescNotes.Default.(string)
	// bookingrequestDescCreatedAt is the schema descriptor for created_at field.
	bookingrequestDescCreatedAt := bookingrequestFields[6].Descriptor()
	// bookingrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	bookingrequest.DefaultCreatedAt = bookingrequestDescCreatedAt.Default.(func() time.Time)
	insightsnapshotFields := schema.InsightSnapshot{}.Fields()
	_ = insightsnapshotFields
	// insightsnapshotDescSessionID is the schema descriptor for session_id field.
	insightsnapshotDescSessionID := insightsnapshotFields[0].Descriptor()
	// insightsnapshot.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	insightsnapshot.SessionIDValidator = insightsnapshotDescSessionID.Validators[0].(func(string) error)
	// insightsnapshotDescInsightType is the schema descriptor for insight_type field.
	insightsnapshotDescInsightType := insightsnapshotFields[1].Descriptor()
	// insightsnapshot.InsightTypeValidator is a validator for the "insight_type" field. It is called by the builders before save.
	insightsnapshot.InsightTypeValidator = insightsnapshotDescInsightType.Validators[0].(func(string) error)
	// insightsnapshotDescCreatedAt is the schema descriptor for created_at field.
	insightsnapshotDescCreatedAt := insightsnapshotFields[3].Descriptor()
	// insightsnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	insightsnapshot.DefaultCreatedAt = insightsnapshotDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescSessionID is the schema descriptor for session_id field.
	leadDescSessionID := leadFields[0].Descriptor()
	// lead.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lead.SessionIDValidator = leadDescSessionID.Validators[0].(func(string) error)
	// leadDescName is the schema descriptor for name field.
	leadDescName := leadFields[1].Descriptor()
	// lead.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lead.NameValidator = leadDescName.Validators[0].(func(string) error)
	// leadDescEmail is the schema descriptor for email field.
	leadDescEmail := leadFields[2].Descriptor()
	// lead.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	lead.EmailValidator = leadDescEmail.Validators[0].(func(string) error)
	// leadDescCompany is the schema descriptor for company field.
	leadDescCompany := leadFields[3].Descriptor()
	// lead.DefaultCompany holds the default value on creation for the company field.
	lead.DefaultCompany = leadDescCompany.Default.(string)
	// leadDescRole is the schema descriptor for role field.
	leadDescRole := leadFields[4].Descriptor()
	// lead.DefaultRole holds the default value on creation for the role field.
	lead.DefaultRole = leadDescRole.Default.(string)
	// leadDescMarketingConsent is the schema descriptor for marketing_consent field.
	leadDescMarketingConsent := leadFields[5].Descriptor()
	// lead.DefaultMarketingConsent holds the default value on creation for the marketing_consent field.
	lead.DefaultMarketingConsent = leadDescMarketingConsent.Default.(bool)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[6].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
}

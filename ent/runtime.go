// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lifebuddy/lifebuddy/ent/llmrequestevent"
	"github.com/lifebuddy/lifebuddy/ent/notification"
	"github.com/lifebuddy/lifebuddy/ent/schema"
	"github.com/lifebuddy/lifebuddy/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
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
	// llmrequesteventDescErrorKind is the schema descriptor for error_kind field.
	llmrequesteventDescErrorKind := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorKind holds the default value on creation for the error_kind field.
	llmrequestevent.DefaultErrorKind = llmrequesteventDescErrorKind.Default.(string)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescTimestamp is the schema descriptor for timestamp field.
	notificationDescTimestamp := notificationMixinFields0[1].Descriptor()
	// notification.DefaultTimestamp holds the default value on creation for the timestamp field.
	notification.DefaultTimestamp = notificationDescTimestamp.Default.(func() time.Time)
	// notificationDescSubtask is the schema descriptor for subtask field.
	notificationDescSubtask := notificationFields[3].Descriptor()
	// notification.DefaultSubtask holds the default value on creation for the subtask field.
	notification.DefaultSubtask = notificationDescSubtask.Default.(string)
	// notificationDescChannel is the schema descriptor for channel field.
	notificationDescChannel := notificationFields[4].Descriptor()
	// notification.DefaultChannel holds the default value on creation for the channel field.
	notification.DefaultChannel = notificationDescChannel.Default.(string)
	// notificationDescReason is the schema descriptor for reason field.
	notificationDescReason := notificationFields[5].Descriptor()
	// notification.DefaultReason holds the default value on creation for the reason field.
	notification.DefaultReason = notificationDescReason.Default.(string)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescDescription is the schema descriptor for description field.
	taskDescDescription := taskFields[3].Descriptor()
	// task.DefaultDescription holds the default value on creation for the description field.
	task.DefaultDescription = taskDescDescription.Default.(string)
	// taskDescRequirements is the schema descriptor for requirements field.
	taskDescRequirements := taskFields[4].Descriptor()
	// task.DefaultRequirements holds the default value on creation for the requirements field.
	task.DefaultRequirements = taskDescRequirements.Default.(string)
	// taskDescCurrentDay is the schema descriptor for current_day field.
	taskDescCurrentDay := taskFields[8].Descriptor()
	// task.DefaultCurrentDay holds the default value on creation for the current_day field.
	task.DefaultCurrentDay = taskDescCurrentDay.Default.(int)
	// taskDescScheduleSource is the schema descriptor for schedule_source field.
	taskDescScheduleSource := taskFields[9].Descriptor()
	// task.DefaultScheduleSource holds the default value on creation for the schedule_source field.
	task.DefaultScheduleSource = taskDescScheduleSource.Default.(string)
	// taskDescDone is the schema descriptor for done field.
	taskDescDone := taskFields[12].Descriptor()
	// task.DefaultDone holds the default value on creation for the done field.
	task.DefaultDone = taskDescDone.Default.(bool)
	// taskDescVersion is the schema descriptor for version field.
	taskDescVersion := taskFields[13].Descriptor()
	// task.DefaultVersion holds the default value on creation for the version field.
	task.DefaultVersion = taskDescVersion.Default.(int64)
}

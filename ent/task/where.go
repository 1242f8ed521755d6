// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lifebuddy/lifebuddy/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUserID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// Requirements applies equality check predicate on the "requirements" field. It's identical to RequirementsEQ.
func Requirements(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRequirements, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEndDate, v))
}

// CurrentDay applies equality check predicate on the "current_day" field. It's identical to CurrentDayEQ.
func CurrentDay(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCurrentDay, v))
}

// ScheduleSource applies equality check predicate on the "schedule_source" field. It's identical to ScheduleSourceEQ.
func ScheduleSource(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldScheduleSource, v))
}

// Done applies equality check predicate on the "done" field. It's identical to DoneEQ.
func Done(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDone, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldUserID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDescription, v))
}

// RequirementsEQ applies the EQ predicate on the "requirements" field.
func RequirementsEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRequirements, v))
}

// RequirementsNEQ applies the NEQ predicate on the "requirements" field.
func RequirementsNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRequirements, v))
}

// RequirementsIn applies the In predicate on the "requirements" field.
func RequirementsIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRequirements, vs...))
}

// RequirementsNotIn applies the NotIn predicate on the "requirements" field.
func RequirementsNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRequirements, vs...))
}

// RequirementsGT applies the GT predicate on the "requirements" field.
func RequirementsGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRequirements, v))
}

// RequirementsGTE applies the GTE predicate on the "requirements" field.
func RequirementsGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRequirements, v))
}

// RequirementsLT applies the LT predicate on the "requirements" field.
func RequirementsLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRequirements, v))
}

// RequirementsLTE applies the LTE predicate on the "requirements" field.
func RequirementsLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRequirements, v))
}

// RequirementsContains applies the Contains predicate on the "requirements" field.
func RequirementsContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldRequirements, v))
}

// RequirementsHasPrefix applies the HasPrefix predicate on the "requirements" field.
func RequirementsHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldRequirements, v))
}

// RequirementsHasSuffix applies the HasSuffix predicate on the "requirements" field.
func RequirementsHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldRequirements, v))
}

// RequirementsEqualFold applies the EqualFold predicate on the "requirements" field.
func RequirementsEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldRequirements, v))
}

// RequirementsContainsFold applies the ContainsFold predicate on the "requirements" field.
func RequirementsContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldRequirements, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStartDate, v))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldEndDate, v))
}

// CurrentDayEQ applies the EQ predicate on the "current_day" field.
func CurrentDayEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCurrentDay, v))
}

// CurrentDayNEQ applies the NEQ predicate on the "current_day" field.
func CurrentDayNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCurrentDay, v))
}

// CurrentDayIn applies the In predicate on the "current_day" field.
func CurrentDayIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCurrentDay, vs...))
}

// CurrentDayNotIn applies the NotIn predicate on the "current_day" field.
func CurrentDayNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCurrentDay, vs...))
}

// CurrentDayGT applies the GT predicate on the "current_day" field.
func CurrentDayGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCurrentDay, v))
}

// CurrentDayGTE applies the GTE predicate on the "current_day" field.
func CurrentDayGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCurrentDay, v))
}

// CurrentDayLT applies the LT predicate on the "current_day" field.
func CurrentDayLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCurrentDay, v))
}

// CurrentDayLTE applies the LTE predicate on the "current_day" field.
func CurrentDayLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCurrentDay, v))
}

// ScheduleSourceEQ applies the EQ predicate on the "schedule_source" field.
func ScheduleSourceEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldScheduleSource, v))
}

// ScheduleSourceNEQ applies the NEQ predicate on the "schedule_source" field.
func ScheduleSourceNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldScheduleSource, v))
}

// ScheduleSourceIn applies the In predicate on the "schedule_source" field.
func ScheduleSourceIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldScheduleSource, vs...))
}

// ScheduleSourceNotIn applies the NotIn predicate on the "schedule_source" field.
func ScheduleSourceNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldScheduleSource, vs...))
}

// ScheduleSourceGT applies the GT predicate on the "schedule_source" field.
func ScheduleSourceGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldScheduleSource, v))
}

// ScheduleSourceGTE applies the GTE predicate on the "schedule_source" field.
func ScheduleSourceGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldScheduleSource, v))
}

// ScheduleSourceLT applies the LT predicate on the "schedule_source" field.
func ScheduleSourceLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldScheduleSource, v))
}

// ScheduleSourceLTE applies the LTE predicate on the "schedule_source" field.
func ScheduleSourceLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldScheduleSource, v))
}

// ScheduleSourceContains applies the Contains predicate on the "schedule_source" field.
func ScheduleSourceContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldScheduleSource, v))
}

// ScheduleSourceHasPrefix applies the HasPrefix predicate on the "schedule_source" field.
func ScheduleSourceHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldScheduleSource, v))
}

// ScheduleSourceHasSuffix applies the HasSuffix predicate on the "schedule_source" field.
func ScheduleSourceHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldScheduleSource, v))
}

// ScheduleSourceEqualFold applies the EqualFold predicate on the "schedule_source" field.
func ScheduleSourceEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldScheduleSource, v))
}

// ScheduleSourceContainsFold applies the ContainsFold predicate on the "schedule_source" field.
func ScheduleSourceContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldScheduleSource, v))
}

// DoneEQ applies the EQ predicate on the "done" field.
func DoneEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDone, v))
}

// DoneNEQ applies the NEQ predicate on the "done" field.
func DoneNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDone, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}

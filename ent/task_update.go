// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/lifebuddy/lifebuddy/ent/predicate"
	"github.com/lifebuddy/lifebuddy/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetRequirements sets the "requirements" field.
func (_u *TaskUpdate) SetRequirements(v string) *TaskUpdate {
	_u.mutation.SetRequirements(v)
	return _u
}

// SetNillableRequirements sets the "requirements" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRequirements(v *string) *TaskUpdate {
	if v != nil {
		_u.SetRequirements(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *TaskUpdate) SetStartDate(v time.Time) *TaskUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartDate(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *TaskUpdate) SetEndDate(v time.Time) *TaskUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableEndDate(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *TaskUpdate) SetSchedule(v json.RawMessage) *TaskUpdate {
	_u.mutation.SetSchedule(v)
	return _u
}

// AppendSchedule appends value to the "schedule" field.
func (_u *TaskUpdate) AppendSchedule(v json.RawMessage) *TaskUpdate {
	_u.mutation.AppendSchedule(v)
	return _u
}

// SetCurrentDay sets the "current_day" field.
func (_u *TaskUpdate) SetCurrentDay(v int) *TaskUpdate {
	_u.mutation.ResetCurrentDay()
	_u.mutation.SetCurrentDay(v)
	return _u
}

// SetNillableCurrentDay sets the "current_day" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCurrentDay(v *int) *TaskUpdate {
	if v != nil {
		_u.SetCurrentDay(*v)
	}
	return _u
}

// AddCurrentDay adds value to the "current_day" field.
func (_u *TaskUpdate) AddCurrentDay(v int) *TaskUpdate {
	_u.mutation.AddCurrentDay(v)
	return _u
}

// SetScheduleSource sets the "schedule_source" field.
func (_u *TaskUpdate) SetScheduleSource(v string) *TaskUpdate {
	_u.mutation.SetScheduleSource(v)
	return _u
}

// SetNillableScheduleSource sets the "schedule_source" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableScheduleSource(v *string) *TaskUpdate {
	if v != nil {
		_u.SetScheduleSource(*v)
	}
	return _u
}

// SetStats sets the "stats" field.
func (_u *TaskUpdate) SetStats(v json.RawMessage) *TaskUpdate {
	_u.mutation.SetStats(v)
	return _u
}

// AppendStats appends value to the "stats" field.
func (_u *TaskUpdate) AppendStats(v json.RawMessage) *TaskUpdate {
	_u.mutation.AppendStats(v)
	return _u
}

// SetUserContext sets the "user_context" field.
func (_u *TaskUpdate) SetUserContext(v json.RawMessage) *TaskUpdate {
	_u.mutation.SetUserContext(v)
	return _u
}

// AppendUserContext appends value to the "user_context" field.
func (_u *TaskUpdate) AppendUserContext(v json.RawMessage) *TaskUpdate {
	_u.mutation.AppendUserContext(v)
	return _u
}

// SetDone sets the "done" field.
func (_u *TaskUpdate) SetDone(v bool) *TaskUpdate {
	_u.mutation.SetDone(v)
	return _u
}

// SetNillableDone sets the "done" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDone(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetDone(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *TaskUpdate) SetVersion(v int64) *TaskUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableVersion(v *int64) *TaskUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TaskUpdate) AddVersion(v int64) *TaskUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableUpdatedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Requirements(); ok {
		_spec.SetField(task.FieldRequirements, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(task.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(task.FieldEndDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(task.FieldSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchedule(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldSchedule, value)
		})
	}
	if value, ok := _u.mutation.CurrentDay(); ok {
		_spec.SetField(task.FieldCurrentDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentDay(); ok {
		_spec.AddField(task.FieldCurrentDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScheduleSource(); ok {
		_spec.SetField(task.FieldScheduleSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stats(); ok {
		_spec.SetField(task.FieldStats, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStats(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldStats, value)
		})
	}
	if value, ok := _u.mutation.UserContext(); ok {
		_spec.SetField(task.FieldUserContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUserContext(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldUserContext, value)
		})
	}
	if value, ok := _u.mutation.Done(); ok {
		_spec.SetField(task.FieldDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(task.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(task.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetRequirements sets the "requirements" field.
func (_u *TaskUpdateOne) SetRequirements(v string) *TaskUpdateOne {
	_u.mutation.SetRequirements(v)
	return _u
}

// SetNillableRequirements sets the "requirements" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRequirements(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetRequirements(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *TaskUpdateOne) SetStartDate(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartDate(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *TaskUpdateOne) SetEndDate(v time.Time) *TaskUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEndDate(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *TaskUpdateOne) SetSchedule(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.SetSchedule(v)
	return _u
}

// AppendSchedule appends value to the "schedule" field.
func (_u *TaskUpdateOne) AppendSchedule(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.AppendSchedule(v)
	return _u
}

// SetCurrentDay sets the "current_day" field.
func (_u *TaskUpdateOne) SetCurrentDay(v int) *TaskUpdateOne {
	_u.mutation.ResetCurrentDay()
	_u.mutation.SetCurrentDay(v)
	return _u
}

// SetNillableCurrentDay sets the "current_day" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCurrentDay(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetCurrentDay(*v)
	}
	return _u
}

// AddCurrentDay adds value to the "current_day" field.
func (_u *TaskUpdateOne) AddCurrentDay(v int) *TaskUpdateOne {
	_u.mutation.AddCurrentDay(v)
	return _u
}

// SetScheduleSource sets the "schedule_source" field.
func (_u *TaskUpdateOne) SetScheduleSource(v string) *TaskUpdateOne {
	_u.mutation.SetScheduleSource(v)
	return _u
}

// SetNillableScheduleSource sets the "schedule_source" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableScheduleSource(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetScheduleSource(*v)
	}
	return _u
}

// SetStats sets the "stats" field.
func (_u *TaskUpdateOne) SetStats(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.SetStats(v)
	return _u
}

// AppendStats appends value to the "stats" field.
func (_u *TaskUpdateOne) AppendStats(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.AppendStats(v)
	return _u
}

// SetUserContext sets the "user_context" field.
func (_u *TaskUpdateOne) SetUserContext(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.SetUserContext(v)
	return _u
}

// AppendUserContext appends value to the "user_context" field.
func (_u *TaskUpdateOne) AppendUserContext(v json.RawMessage) *TaskUpdateOne {
	_u.mutation.AppendUserContext(v)
	return _u
}

// SetDone sets the "done" field.
func (_u *TaskUpdateOne) SetDone(v bool) *TaskUpdateOne {
	_u.mutation.SetDone(v)
	return _u
}

// SetNillableDone sets the "done" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDone(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetDone(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *TaskUpdateOne) SetVersion(v int64) *TaskUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableVersion(v *int64) *TaskUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TaskUpdateOne) AddVersion(v int64) *TaskUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableUpdatedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Requirements(); ok {
		_spec.SetField(task.FieldRequirements, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(task.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(task.FieldEndDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(task.FieldSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchedule(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldSchedule, value)
		})
	}
	if value, ok := _u.mutation.CurrentDay(); ok {
		_spec.SetField(task.FieldCurrentDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentDay(); ok {
		_spec.AddField(task.FieldCurrentDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScheduleSource(); ok {
		_spec.SetField(task.FieldScheduleSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stats(); ok {
		_spec.SetField(task.FieldStats, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStats(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldStats, value)
		})
	}
	if value, ok := _u.mutation.UserContext(); ok {
		_spec.SetField(task.FieldUserContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUserContext(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldUserContext, value)
		})
	}
	if value, ok := _u.mutation.Done(); ok {
		_spec.SetField(task.FieldDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(task.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(task.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lifebuddy/lifebuddy/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *TaskCreate) SetUserID(v string) *TaskCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDescription(v *string) *TaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRequirements sets the "requirements" field.
func (_c *TaskCreate) SetRequirements(v string) *TaskCreate {
	_c.mutation.SetRequirements(v)
	return _c
}

// SetNillableRequirements sets the "requirements" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRequirements(v *string) *TaskCreate {
	if v != nil {
		_c.SetRequirements(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *TaskCreate) SetStartDate(v time.Time) *TaskCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *TaskCreate) SetEndDate(v time.Time) *TaskCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetSchedule sets the "schedule" field.
func (_c *TaskCreate) SetSchedule(v json.RawMessage) *TaskCreate {
	_c.mutation.SetSchedule(v)
	return _c
}

// SetCurrentDay sets the "current_day" field.
func (_c *TaskCreate) SetCurrentDay(v int) *TaskCreate {
	_c.mutation.SetCurrentDay(v)
	return _c
}

// SetNillableCurrentDay sets the "current_day" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCurrentDay(v *int) *TaskCreate {
	if v != nil {
		_c.SetCurrentDay(*v)
	}
	return _c
}

// SetScheduleSource sets the "schedule_source" field.
func (_c *TaskCreate) SetScheduleSource(v string) *TaskCreate {
	_c.mutation.SetScheduleSource(v)
	return _c
}

// SetNillableScheduleSource sets the "schedule_source" field if the given value is not nil.
func (_c *TaskCreate) SetNillableScheduleSource(v *string) *TaskCreate {
	if v != nil {
		_c.SetScheduleSource(*v)
	}
	return _c
}

// SetStats sets the "stats" field.
func (_c *TaskCreate) SetStats(v json.RawMessage) *TaskCreate {
	_c.mutation.SetStats(v)
	return _c
}

// SetUserContext sets the "user_context" field.
func (_c *TaskCreate) SetUserContext(v json.RawMessage) *TaskCreate {
	_c.mutation.SetUserContext(v)
	return _c
}

// SetDone sets the "done" field.
func (_c *TaskCreate) SetDone(v bool) *TaskCreate {
	_c.mutation.SetDone(v)
	return _c
}

// SetNillableDone sets the "done" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDone(v *bool) *TaskCreate {
	if v != nil {
		_c.SetDone(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *TaskCreate) SetVersion(v int64) *TaskCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *TaskCreate) SetNillableVersion(v *int64) *TaskCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := task.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Requirements(); !ok {
		v := task.DefaultRequirements
		_c.mutation.SetRequirements(v)
	}
	if _, ok := _c.mutation.CurrentDay(); !ok {
		v := task.DefaultCurrentDay
		_c.mutation.SetCurrentDay(v)
	}
	if _, ok := _c.mutation.ScheduleSource(); !ok {
		v := task.DefaultScheduleSource
		_c.mutation.SetScheduleSource(v)
	}
	if _, ok := _c.mutation.Done(); !ok {
		v := task.DefaultDone
		_c.mutation.SetDone(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := task.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Task.user_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Task.description"`)}
	}
	if _, ok := _c.mutation.Requirements(); !ok {
		return &ValidationError{Name: "requirements", err: errors.New(`ent: missing required field "Task.requirements"`)}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "Task.start_date"`)}
	}
	if _, ok := _c.mutation.EndDate(); !ok {
		return &ValidationError{Name: "end_date", err: errors.New(`ent: missing required field "Task.end_date"`)}
	}
	if _, ok := _c.mutation.Schedule(); !ok {
		return &ValidationError{Name: "schedule", err: errors.New(`ent: missing required field "Task.schedule"`)}
	}
	if _, ok := _c.mutation.CurrentDay(); !ok {
		return &ValidationError{Name: "current_day", err: errors.New(`ent: missing required field "Task.current_day"`)}
	}
	if _, ok := _c.mutation.ScheduleSource(); !ok {
		return &ValidationError{Name: "schedule_source", err: errors.New(`ent: missing required field "Task.schedule_source"`)}
	}
	if _, ok := _c.mutation.Stats(); !ok {
		return &ValidationError{Name: "stats", err: errors.New(`ent: missing required field "Task.stats"`)}
	}
	if _, ok := _c.mutation.UserContext(); !ok {
		return &ValidationError{Name: "user_context", err: errors.New(`ent: missing required field "Task.user_context"`)}
	}
	if _, ok := _c.mutation.Done(); !ok {
		return &ValidationError{Name: "done", err: errors.New(`ent: missing required field "Task.done"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Task.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(task.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Requirements(); ok {
		_spec.SetField(task.FieldRequirements, field.TypeString, value)
		_node.Requirements = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(task.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(task.FieldEndDate, field.TypeTime, value)
		_node.EndDate = value
	}
	if value, ok := _c.mutation.Schedule(); ok {
		_spec.SetField(task.FieldSchedule, field.TypeJSON, value)
		_node.Schedule = value
	}
	if value, ok := _c.mutation.CurrentDay(); ok {
		_spec.SetField(task.FieldCurrentDay, field.TypeInt, value)
		_node.CurrentDay = value
	}
	if value, ok := _c.mutation.ScheduleSource(); ok {
		_spec.SetField(task.FieldScheduleSource, field.TypeString, value)
		_node.ScheduleSource = value
	}
	if value, ok := _c.mutation.Stats(); ok {
		_spec.SetField(task.FieldStats, field.TypeJSON, value)
		_node.Stats = value
	}
	if value, ok := _c.mutation.UserContext(); ok {
		_spec.SetField(task.FieldUserContext, field.TypeJSON, value)
		_node.UserContext = value
	}
	if value, ok := _c.mutation.Done(); ok {
		_spec.SetField(task.FieldDone, field.TypeBool, value)
		_node.Done = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(task.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

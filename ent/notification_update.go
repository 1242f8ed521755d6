// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lifebuddy/lifebuddy/ent/notification"
	"github.com/lifebuddy/lifebuddy/ent/predicate"
)

// NotificationUpdate is the builder for updating Notification entities.
type NotificationUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationMutation
}

// Where appends a list predicates to the NotificationUpdate builder.
func (_u *NotificationUpdate) Where(ps ...predicate.Notification) *NotificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *NotificationUpdate) SetUserID(v string) *NotificationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableUserID(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *NotificationUpdate) SetTaskID(v string) *NotificationUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableTaskID(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *NotificationUpdate) SetDay(v int) *NotificationUpdate {
	_u.mutation.ResetDay()
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableDay(v *int) *NotificationUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// AddDay adds value to the "day" field.
func (_u *NotificationUpdate) AddDay(v int) *NotificationUpdate {
	_u.mutation.AddDay(v)
	return _u
}

// SetSubtask sets the "subtask" field.
func (_u *NotificationUpdate) SetSubtask(v string) *NotificationUpdate {
	_u.mutation.SetSubtask(v)
	return _u
}

// SetNillableSubtask sets the "subtask" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableSubtask(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetSubtask(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *NotificationUpdate) SetChannel(v string) *NotificationUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableChannel(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *NotificationUpdate) SetReason(v string) *NotificationUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableReason(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the NotificationMutation object of the builder.
func (_u *NotificationUpdate) Mutation() *NotificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NotificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(notification.Table, notification.Columns, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(notification.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(notification.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(notification.FieldDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDay(); ok {
		_spec.AddField(notification.FieldDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subtask(); ok {
		_spec.SetField(notification.FieldSubtask, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(notification.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(notification.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationUpdateOne is the builder for updating a single Notification entity.
type NotificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationMutation
}

// SetUserID sets the "user_id" field.
func (_u *NotificationUpdateOne) SetUserID(v string) *NotificationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableUserID(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *NotificationUpdateOne) SetTaskID(v string) *NotificationUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableTaskID(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *NotificationUpdateOne) SetDay(v int) *NotificationUpdateOne {
	_u.mutation.ResetDay()
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableDay(v *int) *NotificationUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// AddDay adds value to the "day" field.
func (_u *NotificationUpdateOne) AddDay(v int) *NotificationUpdateOne {
	_u.mutation.AddDay(v)
	return _u
}

// SetSubtask sets the "subtask" field.
func (_u *NotificationUpdateOne) SetSubtask(v string) *NotificationUpdateOne {
	_u.mutation.SetSubtask(v)
	return _u
}

// SetNillableSubtask sets the "subtask" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableSubtask(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetSubtask(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *NotificationUpdateOne) SetChannel(v string) *NotificationUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableChannel(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *NotificationUpdateOne) SetReason(v string) *NotificationUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableReason(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the NotificationMutation object of the builder.
func (_u *NotificationUpdateOne) Mutation() *NotificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationUpdate builder.
func (_u *NotificationUpdateOne) Where(ps ...predicate.Notification) *NotificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationUpdateOne) Select(field string, fields ...string) *NotificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Notification entity.
func (_u *NotificationUpdateOne) Save(ctx context.Context) (*Notification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationUpdateOne) SaveX(ctx context.Context) *Notification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NotificationUpdateOne) sqlSave(ctx context.Context) (_node *Notification, err error) {
	_spec := sqlgraph.NewUpdateSpec(notification.Table, notification.Columns, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Notification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notification.FieldID)
		for _, f := range fields {
			if !notification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notification.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(notification.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(notification.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(notification.FieldDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDay(); ok {
		_spec.AddField(notification.FieldDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subtask(); ok {
		_spec.SetField(notification.FieldSubtask, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(notification.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(notification.FieldReason, field.TypeString, value)
	}
	_node = &Notification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

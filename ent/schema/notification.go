package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification is a "day ready" notice queued for delivery.
type Notification struct {
	ent.Schema
}

func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.String("task_id"),
		field.Int("day"),
		field.Text("subtask").
			Default(""),
		field.String("channel").
			Default("").
			Comment("in_app, email or push"),
		field.String("reason").
			Default("").
			Comment("created, advanced, regenerated or reminder"),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}

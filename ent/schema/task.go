package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task is a user's multi-day plan with its progression state. The plan,
// counters and profile are stored as JSON documents.
type Task struct {
	ent.Schema
}

func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("title"),
		field.Text("description").
			Default(""),
		field.Text("requirements").
			Default(""),
		field.Time("start_date"),
		field.Time("end_date"),
		field.JSON("schedule", json.RawMessage{}).
			Comment("Ordered day plans"),
		field.Int("current_day").
			Default(1),
		field.String("schedule_source").
			Default("").
			Comment("purpose:source of the generation that produced the schedule"),
		field.JSON("stats", json.RawMessage{}),
		field.JSON("user_context", json.RawMessage{}),
		field.Bool("done").
			Default(false),
		field.Int64("version").
			Default(1).
			Comment("Bumped on every write; updates compare and swap on it"),
		field.Time("created_at").
			Immutable(),
		field.Time("updated_at"),
	}
}

func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("done"),
	}
}

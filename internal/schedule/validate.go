package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Validator checks a parsed plan before it leaves the generator.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages and logging.
	Name() string

	// Validate returns nil if the plan passes.
	Validate(days []DayPlan, start time.Time) error
}

// planSchema is the JSON Schema every persisted plan document satisfies.
var planSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"maxItems": MaxDays,
	"items": map[string]any{
		"type":     "object",
		"required": []any{"day", "date", "subtask", "status", "keyPoints", "resources"},
		"properties": map[string]any{
			"day":     map[string]any{"type": "integer", "minimum": 1, "maximum": MaxDays},
			"date":    map[string]any{"type": "string", "minLength": 1},
			"subtask": map[string]any{"type": "string", "minLength": 1, "maxLength": MaxSubtaskRunes},
			"status":  map[string]any{"enum": []any{"pending", "completed", "skipped"}},
			"keyPoints": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"resources": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"prerequisiteMet": map[string]any{"type": "boolean"},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func planSchemaCompiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, so round-trip the map.
		defBytes, err := json.Marshal(planSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://plan.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// SchemaValidator validates the plan's JSON form against planSchema.
type SchemaValidator struct{}

func (SchemaValidator) Name() string { return "schema" }

func (SchemaValidator) Validate(days []DayPlan, _ time.Time) error {
	schema, err := planSchemaCompiled()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode plan: %w", err)
	}
	return schema.Validate(doc)
}

// SequenceValidator checks days run 1..N with dates derived from start.
type SequenceValidator struct{}

func (SequenceValidator) Name() string { return "sequence" }

func (SequenceValidator) Validate(days []DayPlan, start time.Time) error {
	for i, d := range days {
		if d.Day != i+1 {
			return fmt.Errorf("position %d holds day %d", i+1, d.Day)
		}
		if want := DateForDay(start, d.Day); !d.Date.Equal(want) {
			return fmt.Errorf("day %d dated %s, want %s", d.Day, d.Date.Format(time.DateOnly), want.Format(time.DateOnly))
		}
	}
	return nil
}

// ValidatePlan runs the validators in order and stops at the first failure.
func ValidatePlan(days []DayPlan, start time.Time, validators []Validator) *ParseError {
	for _, v := range validators {
		if err := v.Validate(days, start); err != nil {
			return &ParseError{Kind: InvalidDocument, Found: len(days), Validator: v.Name(), Err: err}
		}
	}
	return nil
}

package schedule

import (
	"testing"
)

func TestSchemaValidator_AcceptsParsedPlan(t *testing.T) {
	days, perr := Parse(plan(3), 3, testStart)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if err := (SchemaValidator{}).Validate(days, testStart); err != nil {
		t.Fatalf("schema rejected a valid plan: %v", err)
	}
}

func TestSchemaValidator_RejectsBadStatus(t *testing.T) {
	days, _ := Parse(plan(2), 2, testStart)
	days[1].Status = "maybe"
	if err := (SchemaValidator{}).Validate(days, testStart); err == nil {
		t.Fatal("expected schema violation for unknown status")
	}
}

func TestSchemaValidator_RejectsEmptySubtask(t *testing.T) {
	days, _ := Parse(plan(1), 1, testStart)
	days[0].Subtask = ""
	if err := (SchemaValidator{}).Validate(days, testStart); err == nil {
		t.Fatal("expected schema violation for empty subtask")
	}
}

func TestSequenceValidator(t *testing.T) {
	days, _ := Parse(plan(3), 3, testStart)
	if err := (SequenceValidator{}).Validate(days, testStart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	days[2].Day = 7
	if err := (SequenceValidator{}).Validate(days, testStart); err == nil {
		t.Fatal("expected out-of-sequence day to fail")
	}
}

func TestValidatePlan_NamesFailingValidator(t *testing.T) {
	days, _ := Parse(plan(2), 2, testStart)
	days[0].Date = days[0].Date.AddDate(0, 0, 3)

	perr := ValidatePlan(days, testStart, DefaultConfig().Validators)
	if perr == nil {
		t.Fatal("expected validation failure")
	}
	if perr.Kind != InvalidDocument || perr.Validator != "sequence" {
		t.Fatalf("unexpected error %+v", perr)
	}
}

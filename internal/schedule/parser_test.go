package schedule

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

var testStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

const fullDay = `Here is your plan!

**Day 1: Getting started**
Title: Install the toolchain
Key Points:
- Download the installer
- Verify the version
Example: Like unpacking a new kitchen before cooking.
Resources:
1. Official docs
2. Video walkthrough
Tips: Keep notes of every command.
Duration: 45 minutes
Motivation: The hardest part is starting.

### Day 2 - Hello world
Key Points:
* Write main.go
* Run it
`

func TestParse_ExtractsFields(t *testing.T) {
	days, perr := Parse(fullDay, 2, testStart)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}

	d := days[0]
	if d.Subtask != "Install the toolchain" || d.DayTitle != "Install the toolchain" {
		t.Errorf("unexpected title/subtask %q / %q", d.DayTitle, d.Subtask)
	}
	if len(d.KeyPoints) != 2 || d.KeyPoints[1] != "Verify the version" {
		t.Errorf("unexpected key points %q", d.KeyPoints)
	}
	if d.Example != "Like unpacking a new kitchen before cooking." {
		t.Errorf("unexpected example %q", d.Example)
	}
	if len(d.Resources) != 2 || d.Resources[0] != "Official docs" {
		t.Errorf("unexpected resources %q", d.Resources)
	}
	if d.Tips != "Keep notes of every command." {
		t.Errorf("unexpected tips %q", d.Tips)
	}
	if d.Duration != "45 minutes" {
		t.Errorf("unexpected duration %q", d.Duration)
	}
	if d.Motivation != "The hardest part is starting." {
		t.Errorf("unexpected motivation %q", d.Motivation)
	}
	if d.Status != StatusPending {
		t.Errorf("expected pending, got %q", d.Status)
	}
}

func TestParse_SubtaskFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"title", "Day 1:\nTitle: Read chapter one\nKey Points:\n- skim", "Read chapter one"},
		{"day title label", "Day 1:\nDay Title: Warm up", "Warm up"},
		{"first key point", "Day 1:\nKey Points:\n- Stretch for ten minutes\n- Jog", "Stretch for ten minutes"},
		{"header text", "Day 1: Sketch the outline\nDuration: 20 min", "Sketch the outline"},
		{"first line", "Day 1:\n\n  **Plan the week**  \nTips: go slow", "Plan the week"},
		{"labeled value", "Day 1:\nDuration: 20 minutes of stretching", "20 minutes of stretching"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, perr := Parse(tt.raw, 1, testStart)
			if perr != nil {
				t.Fatalf("unexpected parse error: %v", perr)
			}
			if days[0].Subtask != tt.want {
				t.Fatalf("subtask = %q, want %q", days[0].Subtask, tt.want)
			}
		})
	}
}

func TestParse_MarkerDecorations(t *testing.T) {
	raw := strings.Join([]string{
		"**Day 1:** Alpha",
		"### Day 2 - Beta",
		"- Day 3 (Wednesday): Gamma",
		"DAY 4: Delta",
		"__Day 5__: Epsilon",
	}, "\n")

	days, perr := Parse(raw, 5, testStart)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	want := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"}
	for i, w := range want {
		if days[i].Subtask != w {
			t.Errorf("day %d subtask = %q, want %q", i+1, days[i].Subtask, w)
		}
	}
}

func TestParse_MarkersOnOneLine(t *testing.T) {
	raw := "Day 1: Title: Basics Day 2: Title: Variables **Day 3:** Title: Loops"
	days, perr := Parse(raw, 3, testStart)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	want := []string{"Basics", "Variables", "Loops"}
	for i, w := range want {
		if days[i].Subtask != w {
			t.Errorf("day %d subtask = %q, want %q", i+1, days[i].Subtask, w)
		}
	}
}

func TestParse_LowercaseProseIsNotAMarker(t *testing.T) {
	raw := "Day 1: Title: Warm up\nTips: by day 2: you should feel it\nDay 2: Title: Run"
	days, perr := Parse(raw, 2, testStart)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if days[1].Subtask != "Run" {
		t.Errorf("day 2 subtask = %q, want %q", days[1].Subtask, "Run")
	}
}

func TestParse_DatesAndNumbering(t *testing.T) {
	// Model numbering starts at 3; days are renumbered by position.
	raw := "Day 3: A\nDay 4: B\nDay 5: C"
	days, perr := Parse(raw, 3, testStart)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	for i, d := range days {
		if d.Day != i+1 {
			t.Errorf("position %d has day %d", i, d.Day)
		}
		want := testStart.AddDate(0, 0, i)
		if !d.Date.Equal(want) {
			t.Errorf("day %d date = %s, want %s", d.Day, d.Date, want)
		}
	}
}

func TestParse_DuplicateDayKeepsFirst(t *testing.T) {
	raw := "Day 1: First\nDay 1: Again\nDay 2: Second"
	days, perr := Parse(raw, 2, testStart)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if days[0].Subtask != "First" || days[1].Subtask != "Second" {
		t.Fatalf("unexpected subtasks %q, %q", days[0].Subtask, days[1].Subtask)
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		dayCount int
		kind     ParseErrorKind
	}{
		{"no markers", "Just do your best every day.", 3, NoDaysFound},
		{"empty", "", 1, NoDaysFound},
		{"empty subtask", "Day 1:\n\nDay 2: Fine", 2, EmptySubtask},
		{"too few days", "Day 1: A\nDay 2: B", 3, DayCountMismatch},
		{"too many days", "Day 1: A\nDay 2: B\nDay 3: C", 2, DayCountMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, perr := Parse(tt.raw, tt.dayCount, testStart)
			if perr == nil {
				t.Fatalf("expected parse error, got %d days", len(days))
			}
			if days != nil {
				t.Fatalf("expected no partial plan, got %d days", len(days))
			}
			if perr.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", perr.Kind, tt.kind)
			}
		})
	}
}

func TestParse_EmptySubtaskReportsDay(t *testing.T) {
	_, perr := Parse("Day 1: A\nDay 2:\n   \nDay 3: C", 3, testStart)
	if perr == nil || perr.Kind != EmptySubtask || perr.Day != 2 {
		t.Fatalf("expected empty subtask on day 2, got %v", perr)
	}
}

func TestParse_ZeroDayCountSkipsLengthCheck(t *testing.T) {
	days, perr := Parse("Day 1: A\nDay 2: B", 0, testStart)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
}

func TestParse_SubtaskCapped(t *testing.T) {
	long := strings.Repeat("é", MaxSubtaskRunes+50)
	days, perr := Parse("Day 1:\nTitle: "+long, 1, testStart)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if n := utf8.RuneCountInString(days[0].Subtask); n != MaxSubtaskRunes {
		t.Fatalf("subtask has %d runes, want %d", n, MaxSubtaskRunes)
	}
	if days[0].DayTitle != long {
		t.Fatal("day title should keep the full text")
	}
}

func TestParse_FirstFieldOccurrenceWins(t *testing.T) {
	raw := "Day 1:\nTitle: One\nTips: first\nTips: second"
	days, perr := Parse(raw, 1, testStart)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if days[0].Tips != "first" {
		t.Fatalf("tips = %q, want first", days[0].Tips)
	}
}

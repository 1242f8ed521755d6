package components

import (
	"strings"
	"testing"
	"time"

	"github.com/lifebuddy/lifebuddy/internal/schedule"
)

func days(n int) []schedule.DayPlan {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]schedule.DayPlan, n)
	for i := range out {
		out[i] = schedule.DayPlan{
			Day:     i + 1,
			Date:    start.AddDate(0, 0, i),
			Subtask: "task",
			Status:  schedule.StatusPending,
		}
	}
	return out
}

func TestGlyph(t *testing.T) {
	d := days(3)
	d[0].Status = schedule.StatusCompleted
	d[1].Status = schedule.StatusSkipped

	cases := []struct {
		day  schedule.DayPlan
		cur  int
		want string
	}{
		{d[0], 3, GlyphCompleted},
		{d[1], 3, GlyphSkipped},
		{d[2], 3, GlyphCurrent},
		{d[2], 1, GlyphPending},
	}
	for _, c := range cases {
		if got := Glyph(c.day, c.cur); got != c.want {
			t.Errorf("day %d (current %d): got %q, want %q", c.day.Day, c.cur, got, c.want)
		}
	}
}

func TestDayListWindowKeepsCurrentVisible(t *testing.T) {
	l := NewDayList(days(30), 20, 5)
	from, to := l.window()
	if to-from != 5 {
		t.Fatalf("window size = %d, want 5", to-from)
	}
	if from > 19 || to <= 19 {
		t.Errorf("current day index 19 not in [%d, %d)", from, to)
	}

	l = NewDayList(days(30), 30, 5)
	if from, to := l.window(); from != 25 || to != 30 {
		t.Errorf("end window = [%d, %d), want [25, 30)", from, to)
	}
}

func TestDayListShortPlanShowsAll(t *testing.T) {
	view := NewDayList(days(3), 1, 10).View()
	if n := strings.Count(view, "\n") + 1; n != 3 {
		t.Errorf("expected 3 lines, got %d", n)
	}
}

func TestProgressBarRatio(t *testing.T) {
	if r := NewProgressBar("", 3, 6, 40).Ratio(); r != 0.5 {
		t.Errorf("ratio = %v, want 0.5", r)
	}
	if r := NewProgressBar("", 9, 6, 40).Ratio(); r != 1 {
		t.Errorf("ratio = %v, want clamp to 1", r)
	}
	if r := NewProgressBar("", 1, 0, 40).Ratio(); r != 0 {
		t.Errorf("ratio = %v, want 0 for empty plan", r)
	}
}

package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestDayCount(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"same day", base, 1},
		{"next day", base.AddDate(0, 0, 1), 2},
		{"three days inclusive", base.AddDate(0, 0, 2), 3},
		{"partial day rounds up", base.Add(36 * time.Hour), 3},
		{"exactly 31", base.AddDate(0, 0, 30), 31},
		{"capped", base.AddDate(0, 0, 90), MaxDays},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayCount(base, tt.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("DayCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDayCount_InvalidRange(t *testing.T) {
	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	_, err := DayCount(base, base.AddDate(0, 0, -1))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	if !SameDay(a, a.Add(23*time.Hour)) {
		t.Fatal("expected same day")
	}
	if SameDay(a, a.Add(24*time.Hour)) {
		t.Fatal("expected different day")
	}
}

package components

import (
	"fmt"
	"strings"

	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/ui/theme"
)

// Status glyphs shown in front of each day.
const (
	GlyphPending   = "○"
	GlyphCurrent   = "▸"
	GlyphCompleted = "✓"
	GlyphSkipped   = "✗"
)

// DayList renders a plan as one line per day, scrolled so the current day
// stays visible.
type DayList struct {
	Days    []schedule.DayPlan
	Current int
	Height  int
}

// NewDayList creates a day list.
func NewDayList(days []schedule.DayPlan, current, height int) DayList {
	return DayList{Days: days, Current: current, Height: height}
}

// Glyph returns the marker for a day.
func Glyph(d schedule.DayPlan, current int) string {
	switch d.Status {
	case schedule.StatusCompleted:
		return GlyphCompleted
	case schedule.StatusSkipped:
		return GlyphSkipped
	}
	if d.Day == current {
		return GlyphCurrent
	}
	return GlyphPending
}

// window returns the [from, to) slice of days to draw.
func (l DayList) window() (int, int) {
	n := len(l.Days)
	if l.Height <= 0 || n <= l.Height {
		return 0, n
	}
	from := l.Current - 1 - l.Height/2
	if from < 0 {
		from = 0
	}
	if from > n-l.Height {
		from = n - l.Height
	}
	return from, from + l.Height
}

// View renders the visible days.
func (l DayList) View() string {
	from, to := l.window()
	lines := make([]string, 0, to-from)
	for _, d := range l.Days[from:to] {
		text := fmt.Sprintf(" %s  Day %-3d %s  %s",
			Glyph(d, l.Current), d.Day, d.Date.Format("Jan 02"), d.Subtask)

		style := theme.DayPending
		switch {
		case d.Status == schedule.StatusCompleted:
			style = theme.DayCompleted
		case d.Status == schedule.StatusSkipped:
			style = theme.DaySkipped
		case d.Day == l.Current:
			style = theme.DayCurrent
		}
		lines = append(lines, style.Render(text))
	}
	return strings.Join(lines, "\n")
}

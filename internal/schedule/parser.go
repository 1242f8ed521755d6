package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxSubtaskRunes caps the length of a day's subtask.
const MaxSubtaskRunes = 200

// dayMarkerRe finds "Day N:" boundaries, tolerating markdown headings, bold,
// bullets and an optional parenthetical such as "Day 3 (Wednesday):".
// Mid-line markers must be capitalized and follow whitespace so that prose
// like "by day 3: done" inside a field stays put.
var dayMarkerRe = regexp.MustCompile(`(?m)(?:^[ \t>#*_\-•+]*(?:\*\*|__)?[ \t]*(?i:day)|[ \t](?:\*\*|__)?Day)[ \t]+(\d+)[ \t]*(?:\([^)\n]*\))?[ \t]*(?:\*\*|__)?[ \t]*[:\-–—][ \t]*(?:\*\*|__)?`)

type segment struct {
	label int
	lines []string
}

// Parse converts raw model text into an ordered plan of dayCount days
// starting at start. A dayCount of zero or less disables the length check.
//
// Parse never returns a partial plan: on failure the days are nil and the
// *ParseError says why.
func Parse(raw string, dayCount int, start time.Time) ([]DayPlan, *ParseError) {
	segments := splitDays(raw)
	if len(segments) == 0 {
		return nil, &ParseError{Kind: NoDaysFound, Want: dayCount}
	}

	days := make([]DayPlan, 0, len(segments))
	for i, seg := range segments {
		day := i + 1
		d := DayPlan{
			Day:       day,
			Date:      DateForDay(start, day),
			Status:    StatusPending,
			KeyPoints: []string{},
			Resources: []string{},
		}
		extractFields(&d, seg.lines)
		d.Subtask = truncateRunes(subtaskFor(&d, seg.lines), MaxSubtaskRunes)
		if d.Subtask == "" {
			return nil, &ParseError{Kind: EmptySubtask, Day: day, Found: len(segments), Want: dayCount}
		}
		days = append(days, d)
	}

	if dayCount > 0 && len(days) != dayCount {
		return nil, &ParseError{Kind: DayCountMismatch, Found: len(days), Want: dayCount}
	}
	return days, nil
}

// splitDays cuts raw text at day markers. Text before the first marker is
// dropped; a repeated day number keeps its first segment.
func splitDays(raw string) []segment {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	locs := dayMarkerRe.FindAllStringSubmatchIndex(raw, -1)

	var out []segment
	seen := make(map[int]bool)
	for i, loc := range locs {
		n, err := strconv.Atoi(raw[loc[2]:loc[3]])
		if err != nil || n <= 0 || seen[n] {
			continue
		}
		seen[n] = true

		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		out = append(out, segment{
			label: n,
			lines: strings.Split(raw[loc[1]:end], "\n"),
		})
	}
	return out
}

// subtaskFor applies the fallback chain: title, first key point, then the
// first meaningful line of the segment.
func subtaskFor(d *DayPlan, lines []string) string {
	if d.DayTitle != "" {
		return d.DayTitle
	}
	if len(d.KeyPoints) > 0 {
		return d.KeyPoints[0]
	}
	for _, line := range lines {
		if _, value, ok := matchLabel(line); ok {
			if value != "" {
				return value
			}
			continue
		}
		if t := cleanText(decorationRe.ReplaceAllString(line, "")); t != "" {
			return t
		}
	}
	return ""
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n]))
}

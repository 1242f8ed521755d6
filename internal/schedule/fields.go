package schedule

import (
	"regexp"
	"sort"
	"strings"
)

// fieldExtractor pulls one optional field out of a day segment. Each
// extractor owns its labels; a missing label leaves the field empty.
type fieldExtractor struct {
	name   string
	labels []string
	list   bool
	apply  func(d *DayPlan, value string, items []string)
}

var fieldExtractors = []fieldExtractor{
	{
		name:   "title",
		labels: []string{"day title", "title", "topic", "subtask", "focus"},
		apply:  func(d *DayPlan, v string, _ []string) { d.DayTitle = v },
	},
	{
		name:   "keyPoints",
		labels: []string{"key points", "keypoints", "key concepts", "main points"},
		list:   true,
		apply:  func(d *DayPlan, _ string, items []string) { d.KeyPoints = items },
	},
	{
		name:   "example",
		labels: []string{"real-world example", "example", "analogy"},
		apply:  func(d *DayPlan, v string, _ []string) { d.Example = v },
	},
	{
		name:   "resources",
		labels: []string{"resources", "resource", "further reading"},
		list:   true,
		apply:  func(d *DayPlan, _ string, items []string) { d.Resources = items },
	},
	{
		name:   "tips",
		labels: []string{"practice tips", "tips", "tip"},
		apply:  func(d *DayPlan, v string, _ []string) { d.Tips = v },
	},
	{
		name:   "duration",
		labels: []string{"estimated time", "time required", "duration", "time"},
		apply:  func(d *DayPlan, v string, _ []string) { d.Duration = v },
	},
	{
		name:   "motivation",
		labels: []string{"motivational quote", "motivation"},
		apply:  func(d *DayPlan, v string, _ []string) { d.Motivation = v },
	},
}

var (
	// labelRe matches "Label: value" with optional markdown around the label.
	labelRe *regexp.Regexp
	// labelOwner maps a lowercased label to its extractor index.
	labelOwner = map[string]int{}

	bulletRe     = regexp.MustCompile(`^\s*(?:[-*•+]|\d+[.)])\s+`)
	decorationRe = regexp.MustCompile(`^[\s#>*_\-•+]+|[\s*_]+$`)
)

func init() {
	var labels []string
	for i, fe := range fieldExtractors {
		for _, l := range fe.labels {
			labelOwner[l] = i
			labels = append(labels, regexp.QuoteMeta(l))
		}
	}
	// Longest first so "day title" wins over "title".
	sort.Slice(labels, func(i, j int) bool { return len(labels[i]) > len(labels[j]) })
	labelRe = regexp.MustCompile(`(?i)^[\s#>*_\-•+]*(?:\*\*|__)?\s*(` +
		strings.Join(labels, "|") + `)\s*(?:\*\*|__)?\s*:\s*(?:\*\*|__)?\s*(.*)$`)
}

// matchLabel reports the extractor index and inline value of a label line.
func matchLabel(line string) (int, string, bool) {
	m := labelRe.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	idx, ok := labelOwner[strings.ToLower(m[1])]
	if !ok {
		return 0, "", false
	}
	return idx, cleanText(m[2]), true
}

// extractFields runs every extractor over the segment's lines. The first
// occurrence of a field wins; continuation lines belong to the most recent
// label until the next one.
func extractFields(d *DayPlan, lines []string) {
	type collected struct {
		inline string
		rest   []string
	}
	found := make(map[int]*collected)
	current := -1

	for _, line := range lines {
		if idx, value, ok := matchLabel(line); ok {
			if _, seen := found[idx]; seen {
				current = -1
				continue
			}
			found[idx] = &collected{inline: value}
			current = idx
			continue
		}
		if current < 0 || strings.TrimSpace(line) == "" {
			continue
		}
		found[current].rest = append(found[current].rest, line)
	}

	for idx, c := range found {
		fe := fieldExtractors[idx]
		if fe.list {
			fe.apply(d, "", listItems(c.inline, c.rest))
			continue
		}
		parts := []string{}
		if c.inline != "" {
			parts = append(parts, c.inline)
		}
		for _, l := range c.rest {
			if t := cleanText(bulletRe.ReplaceAllString(l, "")); t != "" {
				parts = append(parts, t)
			}
		}
		fe.apply(d, strings.Join(parts, " "), nil)
	}
}

func listItems(inline string, rest []string) []string {
	items := []string{}
	if inline != "" {
		for _, part := range strings.Split(inline, ";") {
			if t := cleanText(part); t != "" {
				items = append(items, t)
			}
		}
	}
	for _, l := range rest {
		if t := cleanText(bulletRe.ReplaceAllString(l, "")); t != "" {
			items = append(items, t)
		}
	}
	return items
}

// cleanText trims whitespace and surrounding markdown emphasis.
func cleanText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*_`")
	return strings.TrimSpace(s)
}

package schedule

import (
	"fmt"
	"strings"
	"time"
)

const systemPrompt = `You are a personal coach who turns a goal into a day-by-day plan.

Rules:
- Write plain text. Start every day with its own line "Day N:" where N counts up from 1.
- Never skip or repeat a day number and never add days beyond the requested count.
- Use the field labels exactly as given, each at the start of its own line.
- Every day must have a Title that names one concrete, actionable task.`

// promptVariant selects between the first-pass and retry prompts.
type promptVariant int

const (
	promptDetailed promptVariant = iota
	promptStrict
)

// exampleDay anchors the expected format in the detailed prompt.
const exampleDay = `Day 1:
Title: Set up your practice space
Key Points:
- Pick a fixed time slot and protect it
- Gather the materials you will need all week
- Write down why this goal matters to you
Example: Like a runner laying out shoes the night before, removing friction makes starting automatic.
Resources:
- A notebook or notes app
- A 25 minute timer
Tips: Keep the first session short so you finish it feeling good.
Duration: 30 minutes
Motivation: Every expert once set up their very first practice session.`

// promptInput carries what the prompt builders interpolate.
type promptInput struct {
	Title        string
	Description  string
	Requirements string
	StartDate    time.Time
	DayCount     int
	UserContext  UserContext
	MinWords     int
}

func buildPrompt(v promptVariant, in promptInput) string {
	if v == promptStrict {
		return buildStrictPrompt(in)
	}
	return buildDetailedPrompt(in)
}

func buildDetailedPrompt(in promptInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a %d-day plan for the goal below, one entry per day, starting %s.\n\n",
		in.DayCount, in.StartDate.Format("Monday, 2 January 2006"))
	writeGoal(&b, in)

	fmt.Fprintf(&b, "\nFor each day write at least %d words using these labels, in this order:\n", in.MinWords)
	b.WriteString("Title, Key Points (3 to 5 bullet lines), Example, Resources (bullet lines), Tips, Duration, Motivation.\n")
	b.WriteString("Build difficulty gradually so each day relies on the previous one.\n")

	b.WriteString("\nFormat one day exactly like this example:\n\n")
	b.WriteString(exampleDay)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Now write Day 1 through Day %d.", in.DayCount)

	return b.String()
}

func buildStrictPrompt(in promptInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a %d-day plan. Output exactly %d days, labeled \"Day 1:\" to \"Day %d:\".\n\n",
		in.DayCount, in.DayCount, in.DayCount)
	writeGoal(&b, in)

	fmt.Fprintf(&b, "\nUnder each day use these labels, about %d words per day:\n", in.MinWords)
	b.WriteString("Title, Key Points, Example, Resources, Tips, Duration, Motivation.\n")
	b.WriteString("The Title line is required for every day. No introduction, no summary.")

	return b.String()
}

func writeGoal(b *strings.Builder, in promptInput) {
	fmt.Fprintf(b, "Goal: %s\n", in.Title)
	if in.Description != "" {
		fmt.Fprintf(b, "Description: %s\n", in.Description)
	}
	if in.Requirements != "" {
		fmt.Fprintf(b, "Requirements: %s\n", in.Requirements)
	}

	uc := in.UserContext
	if uc.Timezone != "" || uc.SubscriptionTier != "" || uc.NotificationPreference != "" {
		b.WriteString("\nAbout the user:\n")
		if uc.Timezone != "" {
			fmt.Fprintf(b, "- Timezone: %s\n", uc.Timezone)
		}
		if uc.SubscriptionTier != "" {
			fmt.Fprintf(b, "- Plan tier: %s\n", uc.SubscriptionTier)
		}
		if uc.NotificationPreference != "" {
			fmt.Fprintf(b, "- Prefers reminders via: %s\n", uc.NotificationPreference)
		}
	}
}

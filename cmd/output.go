package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/spf13/cobra"
)

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}

func withTimeout(cmd *cobra.Command, rt *runtime) (context.Context, context.CancelFunc) {
	if rt.cfg.RequestTimeout > 0 {
		return context.WithTimeout(cmd.Context(), rt.cfg.RequestTimeout)
	}
	return context.WithCancel(cmd.Context())
}

func asJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(v any) error {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(os.Stdout, string(out))
	return err
}

// friendly swaps engine errors for their user-facing text.
func friendly(err error) error {
	var pe *progress.ProgressionError
	if errors.As(err, &pe) {
		return errors.New(pe.UserMessage())
	}
	var ge *schedule.GenerationError
	if errors.As(err, &ge) {
		return errors.New(ge.UserMessage())
	}
	if errors.Is(err, progress.ErrTaskNotFound) {
		return errors.New("plan not found")
	}
	return err
}

func printTask(cmd *cobra.Command, t *progress.Task) error {
	if asJSON(cmd) {
		return writeJSON(t)
	}

	fmt.Printf("%s  (%s)\n", t.Title, t.ID)
	fmt.Printf("%s to %s  ·  source %s\n",
		t.StartDate.Format(time.DateOnly), t.EndDate.Format(time.DateOnly), t.ScheduleSource)
	fmt.Printf("Completed %d  ·  Skipped %d  ·  Streak %d (best %d)\n",
		t.Stats.Completed, t.Stats.Skipped, t.Stats.CurrentStreak, t.Stats.BestStreak)
	fmt.Println(strings.Repeat("─", 72))

	for _, d := range t.Schedule {
		marker := " "
		if d.Day == t.CurrentDay && !t.Done() {
			marker = "▸"
		}
		fmt.Printf("%s %3d  %s  %-9s  %s\n",
			marker, d.Day, d.Date.Format(time.DateOnly), d.Status, truncate(d.Subtask, 44))
	}

	if cur := t.Current(); cur != nil && !t.Done() {
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("Today (day %d): %s\n", cur.Day, cur.Subtask)
		for _, kp := range cur.KeyPoints {
			fmt.Printf("  • %s\n", kp)
		}
		if cur.Tips != "" {
			fmt.Printf("Tip: %s\n", cur.Tips)
		}
	}
	if t.Done() {
		fmt.Println("Plan complete.")
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

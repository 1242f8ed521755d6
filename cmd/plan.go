package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lifebuddy/lifebuddy/internal/llm"
	"github.com/lifebuddy/lifebuddy/internal/progress"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/store"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Create and step through plans from the command line",
}

var planCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a new plan for a goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		requirements, _ := cmd.Flags().GetString("requirements")
		startStr, _ := cmd.Flags().GetString("start")
		endStr, _ := cmd.Flags().GetString("end")
		days, _ := cmd.Flags().GetInt("days")
		tz, _ := cmd.Flags().GetString("tz")
		pref, _ := cmd.Flags().GetString("notify")
		modelList, _ := cmd.Flags().GetString("models")

		start := today()
		if startStr != "" {
			d, err := parseDate(startStr)
			if err != nil {
				return err
			}
			start = d
		}
		end := start.AddDate(0, 0, days-1)
		if endStr != "" {
			d, err := parseDate(endStr)
			if err != nil {
				return err
			}
			end = d
		}

		var models []llm.ModelRef
		if modelList != "" {
			refs, err := llm.ParseModelRefs(modelList)
			if err != nil {
				return err
			}
			models = refs
		}

		rt, err := openRuntime(cmd, runtimeOptions{requireLLM: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx, cancel := withTimeout(cmd, rt)
		defer cancel()

		task, err := rt.engine.CreateTask(ctx, progress.CreateInput{
			UserID:       userFlag(cmd),
			Title:        title,
			Description:  description,
			Requirements: requirements,
			StartDate:    start,
			EndDate:      end,
			UserContext: schedule.UserContext{
				Timezone:               tz,
				NotificationPreference: pref,
			},
			Consent: true,
			Models:  models,
		})
		if err != nil {
			return friendly(err)
		}
		return printTask(cmd, task)
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your plans, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd, runtimeOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		tasks, err := rt.engine.ListByUser(cmd.Context(), userFlag(cmd))
		if err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}
		if asJSON(cmd) {
			return writeJSON(tasks)
		}
		if len(tasks) == 0 {
			fmt.Println("No plans yet. Create one with: lifebuddy plan create --title \"...\"")
			return nil
		}

		fmt.Printf("%-36s  %-28s  %-9s  %-6s  %s\n", "ID", "Title", "Day", "Streak", "Source")
		fmt.Println(strings.Repeat("─", 100))
		for _, t := range tasks {
			day := fmt.Sprintf("%d/%d", t.CurrentDay, len(t.Schedule))
			if t.Done() {
				day = "done"
			}
			fmt.Printf("%-36s  %-28s  %-9s  %-6d  %s\n",
				t.ID, truncate(t.Title, 28), day, t.Stats.CurrentStreak, t.ScheduleSource)
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show a plan and its progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd, runtimeOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		task, err := rt.engine.Get(cmd.Context(), args[0])
		if err != nil {
			return friendly(err)
		}
		return printTask(cmd, task)
	},
}

var planMarkCmd = &cobra.Command{
	Use:   "mark <task-id> <completed|skipped>",
	Short: "Mark the current day completed or skipped",
	Long: "Mark the current day of a plan. Skipping resets the streak and " +
		"regenerates the plan from today.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := schedule.Status(strings.ToLower(args[1]))
		dateStr, _ := cmd.Flags().GetString("date")

		rt, err := openRuntime(cmd, runtimeOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx, cancel := withTimeout(cmd, rt)
		defer cancel()

		var date time.Time
		if dateStr != "" {
			if date, err = parseDate(dateStr); err != nil {
				return err
			}
		} else {
			task, err := rt.engine.Get(ctx, args[0])
			if err != nil {
				return friendly(err)
			}
			cur := task.Current()
			if cur == nil {
				return fmt.Errorf("plan %s has no days", task.ID)
			}
			date = cur.Date
		}

		task, err := rt.engine.MarkDay(ctx, args[0], date, status)
		var pe *progress.ProgressionError
		if errors.As(err, &pe) && pe.SkipRecorded {
			fmt.Fprintln(os.Stderr, pe.UserMessage())
			return printTask(cmd, task)
		}
		if err != nil {
			return friendly(err)
		}
		return printTask(cmd, task)
	},
}

var planRegenerateCmd = &cobra.Command{
	Use:   "regenerate <task-id>",
	Short: "Replace a plan with a freshly generated one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd, runtimeOptions{requireLLM: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx, cancel := withTimeout(cmd, rt)
		defer cancel()

		task, err := rt.engine.Regenerate(ctx, args[0])
		if err != nil {
			return friendly(err)
		}
		return printTask(cmd, task)
	},
}

var planNotificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List day-ready notifications recorded for you",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		rt, err := openRuntime(cmd, runtimeOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		recs, err := rt.store.NotificationRepo().ListNotifications(cmd.Context(), userFlag(cmd), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list notifications: %w", err)
		}
		if asJSON(cmd) {
			return writeJSON(recs)
		}
		if len(recs) == 0 {
			fmt.Println("No notifications recorded.")
			return nil
		}

		fmt.Printf("%-19s  %-36s  %-4s  %-8s  %-11s  %s\n", "Time", "Task", "Day", "Channel", "Reason", "Subtask")
		fmt.Println(strings.Repeat("─", 110))
		for _, n := range recs {
			fmt.Printf("%-19s  %-36s  %-4d  %-8s  %-11s  %s\n",
				n.Timestamp.Local().Format("2006-01-02 15:04:05"),
				n.TaskID, n.Day, n.Channel, n.Reason, truncate(n.Subtask, 40))
		}
		return nil
	},
}

func init() {
	planCreateCmd.Flags().StringP("title", "t", "", "Goal title (required)")
	planCreateCmd.Flags().StringP("description", "d", "", "What the goal is about")
	planCreateCmd.Flags().StringP("requirements", "r", "", "Constraints the plan must respect")
	planCreateCmd.Flags().String("start", "", "First day, YYYY-MM-DD (default today)")
	planCreateCmd.Flags().String("end", "", "Last day, YYYY-MM-DD (default start + days - 1)")
	planCreateCmd.Flags().Int("days", 7, "Plan length when --end is not given")
	planCreateCmd.Flags().String("tz", "", "Timezone passed to the plan prompt")
	planCreateCmd.Flags().String("notify", "", "Notification preference: in_app, email, push or none")
	planCreateCmd.Flags().String("models", "", "Comma-separated model preference list (backend:model)")
	_ = planCreateCmd.MarkFlagRequired("title")

	planMarkCmd.Flags().String("date", "", "Date of the day to mark, YYYY-MM-DD (default the current day)")
	planNotificationsCmd.Flags().IntP("limit", "n", 20, "Number of notifications to show")

	planCmd.PersistentFlags().Bool("json", false, "Print JSON instead of text")

	planCmd.AddCommand(planCreateCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planMarkCmd)
	planCmd.AddCommand(planRegenerateCmd)
	planCmd.AddCommand(planNotificationsCmd)
}

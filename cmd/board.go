package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lifebuddy/lifebuddy/internal/app"
	"github.com/lifebuddy/lifebuddy/internal/schedule"
	"github.com/lifebuddy/lifebuddy/internal/screens/goal"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board [task-id]",
	Short: "Open the interactive plan board",
	Long: "Open the plan board for a task. Without a task ID, prompts for a goal " +
		"and creates a new plan for it.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var taskID string
		if len(args) == 1 {
			taskID = args[0]
		}
		return runBoard(cmd, taskID)
	},
}

func init() {
	boardCmd.Flags().Int("days", goal.DefaultDays, "Length of plans created from the board")
	boardCmd.Flags().String("tz", "", "Timezone passed to the plan prompt")
}

// runBoard wires the engine and launches the TUI. Logs go to a file next to
// the database so they don't draw over the board.
func runBoard(cmd *cobra.Command, taskID string) error {
	logPath, err := boardLogPath(cmd)
	if err != nil {
		return err
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	rt, err := openRuntime(cmd, runtimeOptions{logTo: logFile})
	if err != nil {
		return err
	}
	defer rt.Close()

	days := goal.DefaultDays
	if cmd.Flags().Lookup("days") != nil {
		days, _ = cmd.Flags().GetInt("days")
	}
	var tz string
	if cmd.Flags().Lookup("tz") != nil {
		tz, _ = cmd.Flags().GetString("tz")
	}

	return app.Run(app.Options{
		Service:     rt.engine,
		UserID:      userFlag(cmd),
		TaskID:      taskID,
		Days:        days,
		UserContext: schedule.UserContext{Timezone: tz},
		Timeout:     rt.cfg.RequestTimeout,
	})
}

func boardLogPath(cmd *cobra.Command) (string, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return "", err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return "", fmt.Errorf("resolve database path: %w", err)
	}
	return filepath.Join(filepath.Dir(dbPath), "board.log"), nil
}

package cmd

import (
	"os"

	"github.com/lifebuddy/lifebuddy/internal/config"
	"github.com/lifebuddy/lifebuddy/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lifebuddy",
	Short: "AI-generated day-by-day plans for personal goals",
	Long: "Lifebuddy turns a goal into a day-by-day plan with an LLM and tracks " +
		"progress through it, regenerating the plan when a day is skipped.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoard(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LIFEBUDDY_DB env var)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional .env file to load before reading the environment")
	rootCmd.PersistentFlags().StringP("user", "u", defaultUser(), "User ID that owns created plans")

	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration using the --env-file flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	return config.Load(envFile)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured LIFEBUDDY_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func userFlag(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	return u
}

func defaultUser() string {
	if u := os.Getenv("LIFEBUDDY_USER"); u != "" {
		return u
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

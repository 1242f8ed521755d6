package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lifebuddy/lifebuddy/internal/api"
	"github.com/lifebuddy/lifebuddy/internal/reminder"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the daily reminder sweep",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd, runtimeOptions{requireLLM: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := rt.cfg.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if rt.cfg.ReminderAt != "" {
			loc, err := time.LoadLocation(rt.cfg.ReminderLocation)
			if err != nil {
				return fmt.Errorf("reminder timezone: %w", err)
			}
			sweeper := reminder.New(rt.engine, rt.notifier, loc, rt.logger)
			if _, err := sweeper.ScheduleDaily(rt.cfg.ReminderAt); err != nil {
				return err
			}
			sweeper.Start()
			defer sweeper.Stop()
			rt.logger.Info("reminders scheduled", "at", rt.cfg.ReminderAt, "tz", loc.String())
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = rt.cfg.HTTPAddr
		}

		srv := api.New(api.Options{
			Tasks:          rt.engine,
			Logger:         rt.logger,
			RequestTimeout: rt.cfg.RequestTimeout,
		})
		rt.logger.Info("serving", "db", rt.dbPath)
		return srv.Run(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides LIFEBUDDY_HTTP_ADDR)")
}

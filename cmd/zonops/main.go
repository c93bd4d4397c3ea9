package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zonops/zonops/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "zonops",
		Short:   "Azure DNS zone management CLI",
		Long:    "zonops manages Azure DNS zones and record sets, including zone file import and export.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultConfig := os.Getenv("ZONOPS_CONFIG")
	if defaultConfig == "" {
		defaultConfig = "zonops.yml"
	}
	cmd.PersistentFlags().String("config", defaultConfig, "Config file path (env ZONOPS_CONFIG)")
	cmd.PersistentFlags().String("log-format", "text", "Log format (text|json) (env ZONOPS_LOG_FORMAT)")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		if env := os.Getenv("ZONOPS_LOG_FORMAT"); env != "" { // env overrides flag
			format = env
		}
		level := slog.LevelInfo
		if debug, _ := c.Flags().GetBool("debug"); debug {
			level = slog.LevelDebug
		}
		l, err := logging.New(format, level)
		if err != nil {
			return err
		}
		// One operation ID per invocation ties the log lines of a run together.
		l = l.With("runId", uuid.NewString())
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdZone())
	cmd.AddCommand(newCmdRecordSet())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}

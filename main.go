package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harrisonrobin/taskbar/pkg/config"
	"github.com/harrisonrobin/taskbar/pkg/errors"
	"github.com/harrisonrobin/taskbar/pkg/exitcode"
	"github.com/harrisonrobin/taskbar/pkg/hook"
	"github.com/harrisonrobin/taskbar/pkg/logging"
	"github.com/harrisonrobin/taskbar/pkg/signals"
	"github.com/harrisonrobin/taskbar/pkg/taskwarrior"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(exitcode.For(err))
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taskbar",
		Short: "Export pending Taskwarrior tasks to Waybar",
		Long: `taskbar exports pending Taskwarrior tasks, orders them by urgency and writes
a {"text","tooltip"} summary for a Waybar custom module to the user cache
directory. It then sends SIGRTMIN+8 to every running waybar process so the
module re-reads the file.

Run it from a Taskwarrior on-exit hook.`,
		Version:       version,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runExport,
	}
	cmd.SetFlagErrorFunc(reportUsageError)
	return cmd
}

func noArgs(cmd *cobra.Command, args []string) error {
	return reportUsageError(cmd, cobra.NoArgs(cmd, args))
}

// reportUsageError prints argument and flag errors, which fail before
// runExport and its logger exist.
func reportUsageError(cmd *cobra.Command, err error) error {
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\nRun '%s --help' for usage.\n", err, cmd.CommandPath())
	}
	return err
}

func runExport(cmd *cobra.Command, _ []string) error {
	stderr := cmd.ErrOrStderr()

	// 1. Resolve configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return err
	}

	// 2. Initialize logging; from here on errors reach stderr through the logger
	logger, err := logging.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		err = &errors.IOError{Op: "create log file", Path: cfg.LogPath(), Err: err}
		fmt.Fprintln(stderr, "Failed to initialize logging:", err)
		return err
	}
	defer logger.Close()
	log := logger.With("run_id", uuid.NewString())

	// 3. Export, render, write, notify
	runner := &hook.Runner{
		Exporter:   taskwarrior.NewClient(cfg.TaskBinary),
		OutputPath: cfg.OutputPath(),
		Notifier: &signals.Notifier{
			Bounds:     cfg.Bounds(),
			Finder:     signals.NewLocator("", log),
			Dispatcher: signals.NewDispatcher(signals.UnixSender{}, log),
		},
		ProcessName:  cfg.ProcessName,
		SignalOffset: cfg.SignalOffset,
		Log:          log,
	}
	if cfg.Debug {
		runner.Debug = cmd.OutOrStdout()
	}

	if err := runner.Run(cmd.Context()); err != nil {
		log.Error("run failed", "error", err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Exported to waybar.")
	log.Info("export done")
	return nil
}

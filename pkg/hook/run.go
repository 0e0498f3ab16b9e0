// Package hook runs one export-render-notify pass.
package hook

import (
	"context"
	"io"

	"github.com/harrisonrobin/taskbar/pkg/logging"
	"github.com/harrisonrobin/taskbar/pkg/signals"
	"github.com/harrisonrobin/taskbar/pkg/taskwarrior"
	"github.com/harrisonrobin/taskbar/pkg/waybar"
)

// Notifier is satisfied by *signals.Notifier.
type Notifier interface {
	NotifyByName(name string, offset int) (signals.Report, error)
}

// Runner wires the pipeline together. All fields except Debug are required.
type Runner struct {
	Exporter     taskwarrior.Exporter
	Renderer     waybar.Renderer
	OutputPath   string
	Notifier     Notifier
	ProcessName  string
	SignalOffset int
	// Debug receives the indented summary when non-nil.
	Debug io.Writer
	Log   *logging.Logger
}

// Summarize exports, orders and renders the pending tasks.
func (r *Runner) Summarize(ctx context.Context) (waybar.Output, error) {
	tasks, err := r.Exporter.Export(ctx)
	if err != nil {
		return waybar.Output{}, err
	}
	r.Log.Info("exported tasks", "count", len(tasks))

	taskwarrior.Sort(tasks)
	return r.Renderer.Render(tasks), nil
}

// Run writes the summary to OutputPath and then signals ProcessName. Any
// error aborts the rest of the run.
func (r *Runner) Run(ctx context.Context) error {
	out, err := r.Summarize(ctx)
	if err != nil {
		return err
	}

	if err := waybar.WriteFile(r.OutputPath, out, r.Log); err != nil {
		return err
	}

	if r.Debug != nil {
		if err := waybar.EncodeIndent(r.Debug, out); err != nil {
			r.Log.Warn("could not print debug summary", "error", err)
		}
	}

	report, err := r.Notifier.NotifyByName(r.ProcessName, r.SignalOffset)
	if err != nil {
		return err
	}
	r.Log.Info("signal sent",
		"signal", report.Signal.String(),
		"delivered", len(report.Delivered),
		"failed", len(report.Failed),
	)
	return nil
}

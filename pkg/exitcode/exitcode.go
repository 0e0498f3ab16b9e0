// Package exitcode maps run failures to process exit codes.
package exitcode

import "github.com/harrisonrobin/taskbar/pkg/errors"

const (
	// Success indicates successful completion.
	Success = 0

	// Failure is any error not listed below.
	Failure = 1

	// ConfigError indicates the cache directory or config file could not be resolved.
	ConfigError = 2

	// IOError indicates the log or summary file could not be written.
	IOError = 3

	// ExportError indicates `task export` failed or printed something unexpected.
	ExportError = 4

	// SignalError indicates the configured signal offset is out of range.
	SignalError = 5

	// ProcessError indicates no process to notify, or an unreadable process table.
	ProcessError = 6
)

// For returns the exit code for err.
func For(err error) int {
	if err == nil {
		return Success
	}

	var (
		cfgErr      *errors.ConfigError
		ioErr       *errors.IOError
		exportErr   *errors.ExportError
		rangeErr    *errors.SignalRangeError
		notFoundErr *errors.ProcessNotFoundError
		listErr     *errors.ProcessListError
	)
	switch {
	case errors.As(err, &cfgErr):
		return ConfigError
	case errors.As(err, &ioErr):
		return IOError
	case errors.As(err, &exportErr):
		return ExportError
	case errors.As(err, &rangeErr):
		return SignalError
	case errors.As(err, &notFoundErr), errors.As(err, &listErr):
		return ProcessError
	default:
		return Failure
	}
}

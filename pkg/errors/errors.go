// Package errors defines the failures a taskbar run can end with.
//
// Every failure is one of a closed set of struct types. Each carries the
// fields needed to print an actionable diagnostic and unwraps to the
// lower-level error it was built from, if any. Callers match them with
// errors.As, or with errors.Is against the exported sentinels.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-exported so callers only need this package.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

var (
	// ErrSignalBelowMinimum matches a SignalRangeError with Kind BelowMinimum.
	ErrSignalBelowMinimum = New("signal below minimum")
	// ErrSignalAboveMaximum matches a SignalRangeError with Kind AboveMaximum.
	ErrSignalAboveMaximum = New("signal above maximum")
	// ErrProcessNotFound matches a ProcessNotFoundError.
	ErrProcessNotFound = New("no processes found")
)

// Error is implemented by every error type in this package and nothing else.
type Error interface {
	error
	taskbarError()
}

// ConfigError reports that configuration could not be resolved, e.g. the
// cache directory is unknown or the config file is malformed.
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err == nil {
		return "config: " + e.Op
	}
	return fmt.Sprintf("config: %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
func (*ConfigError) taskbarError()   {}

// IOError reports a failure creating or writing a file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("file error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
func (*IOError) taskbarError()   {}

// Export stages.
const (
	StageRun    = "run"
	StageDecode = "decode"
)

// ExportError reports that the task export command could not be run or that
// its output was not a JSON array of tasks.
type ExportError struct {
	Stage  string
	Stderr string
	Err    error
}

func (e *ExportError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "task export failed (%s): %v", e.Stage, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		fmt.Fprintf(&b, ", stderr: %s", s)
	}
	return b.String()
}

func (e *ExportError) Unwrap() error { return e.Err }
func (*ExportError) taskbarError()   {}

// RangeKind tells which bound a signal offset violated.
type RangeKind int

const (
	BelowMinimum RangeKind = iota
	AboveMaximum
)

func (k RangeKind) String() string {
	switch k {
	case BelowMinimum:
		return "below minimum"
	case AboveMaximum:
		return "above maximum"
	default:
		return "unknown"
	}
}

// SignalRangeError reports an offset that does not map into the realtime
// signal window (Min, Max].
type SignalRangeError struct {
	Kind   RangeKind
	Offset int
	Signal int
	Min    int
	Max    int
}

func (e *SignalRangeError) Error() string {
	switch e.Kind {
	case BelowMinimum:
		return fmt.Sprintf("signal out of bounds: SIGRTMIN+%d is too low, only SIGRTMIN+1 (%d) and above are accepted",
			e.Offset, e.Min+1)
	default:
		return fmt.Sprintf("signal out of bounds: SIGRTMIN+%d (%d + %d = %d) is greater than SIGRTMAX (%d)",
			e.Offset, e.Min, e.Offset, e.Signal, e.Max)
	}
}

// Is matches the sentinel for the violated bound.
func (e *SignalRangeError) Is(target error) bool {
	switch target {
	case ErrSignalBelowMinimum:
		return e.Kind == BelowMinimum
	case ErrSignalAboveMaximum:
		return e.Kind == AboveMaximum
	}
	return false
}

func (*SignalRangeError) taskbarError() {}

// ProcessNotFoundError reports that no running process matched Name.
type ProcessNotFoundError struct {
	Name string
}

func (e *ProcessNotFoundError) Error() string {
	return fmt.Sprintf("no processes found named %q", e.Name)
}

func (e *ProcessNotFoundError) Is(target error) bool { return target == ErrProcessNotFound }
func (*ProcessNotFoundError) taskbarError()          {}

// ProcessListError reports that the process table itself could not be read.
// Individual entries that disappear mid-scan never produce this error.
type ProcessListError struct {
	Err error
}

func (e *ProcessListError) Error() string {
	return fmt.Sprintf("process error: %v", e.Err)
}

func (e *ProcessListError) Unwrap() error { return e.Err }
func (*ProcessListError) taskbarError()   {}

// TimestampFormatError reports a due value that is not YYYYMMDDThhmmssZ.
type TimestampFormatError struct {
	Input  string
	Reason string
	Err    error
}

func (e *TimestampFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid timestamp %q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid timestamp %q: %s", e.Input, e.Reason)
}

func (e *TimestampFormatError) Unwrap() error { return e.Err }
func (*TimestampFormatError) taskbarError()   {}

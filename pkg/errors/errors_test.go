package errors

import (
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestSignalRangeErrorMatchesSentinel(t *testing.T) {
	below := &SignalRangeError{Kind: BelowMinimum, Offset: 0, Signal: 34, Min: 34, Max: 64}
	above := &SignalRangeError{Kind: AboveMaximum, Offset: 50, Signal: 84, Min: 34, Max: 64}

	if !Is(below, ErrSignalBelowMinimum) || Is(below, ErrSignalAboveMaximum) {
		t.Errorf("below-minimum error matched the wrong sentinel")
	}
	if !Is(above, ErrSignalAboveMaximum) || Is(above, ErrSignalBelowMinimum) {
		t.Errorf("above-maximum error matched the wrong sentinel")
	}

	wrapped := fmt.Errorf("notify: %w", above)
	var rangeErr *SignalRangeError
	if !As(wrapped, &rangeErr) {
		t.Fatal("expected errors.As to find SignalRangeError")
	}
	if rangeErr.Signal != 84 || rangeErr.Max != 64 {
		t.Errorf("context lost: %+v", rangeErr)
	}
}

func TestSignalRangeErrorMessage(t *testing.T) {
	err := &SignalRangeError{Kind: AboveMaximum, Offset: 50, Signal: 84, Min: 34, Max: 64}
	want := "signal out of bounds: SIGRTMIN+50 (34 + 50 = 84) is greater than SIGRTMAX (64)"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	err = &SignalRangeError{Kind: BelowMinimum, Offset: -3, Signal: 31, Min: 34, Max: 64}
	if !strings.Contains(err.Error(), "SIGRTMIN+-3 is too low") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestProcessNotFound(t *testing.T) {
	err := fmt.Errorf("run: %w", &ProcessNotFoundError{Name: "waybar"})
	if !Is(err, ErrProcessNotFound) {
		t.Error("expected ErrProcessNotFound to match")
	}
	if !strings.Contains(err.Error(), `"waybar"`) {
		t.Errorf("expected process name in message, got %q", err.Error())
	}
}

func TestUnwrapKeepsCause(t *testing.T) {
	cases := []error{
		&ConfigError{Op: "resolve cache directory", Err: fs.ErrNotExist},
		&IOError{Op: "create", Path: "/tmp/x", Err: fs.ErrNotExist},
		&ExportError{Stage: StageRun, Err: fs.ErrNotExist},
		&ProcessListError{Err: fs.ErrNotExist},
		&TimestampFormatError{Input: "x", Reason: "bad", Err: fs.ErrNotExist},
	}
	for _, err := range cases {
		if !Is(err, fs.ErrNotExist) {
			t.Errorf("%T does not unwrap to its cause", err)
		}
		var e Error
		if !As(err, &e) {
			t.Errorf("%T does not implement Error", err)
		}
	}
}

func TestExportErrorIncludesStderr(t *testing.T) {
	err := &ExportError{Stage: StageRun, Stderr: "  No matches.\n", Err: New("exit status 1")}
	want := "task export failed (run): exit status 1, stderr: No matches."
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

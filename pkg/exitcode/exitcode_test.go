package exitcode

import (
	"fmt"
	"testing"

	"github.com/harrisonrobin/taskbar/pkg/errors"
)

func TestFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, Success},
		{errors.New("boom"), Failure},
		{&errors.ConfigError{Op: "x"}, ConfigError},
		{fmt.Errorf("write: %w", &errors.IOError{Op: "open", Path: "p", Err: errors.New("denied")}), IOError},
		{&errors.ExportError{Stage: errors.StageDecode, Err: errors.New("bad json")}, ExportError},
		{&errors.SignalRangeError{Kind: errors.AboveMaximum}, SignalError},
		{&errors.ProcessNotFoundError{Name: "waybar"}, ProcessError},
		{&errors.ProcessListError{Err: errors.New("no /proc")}, ProcessError},
	}

	for _, tt := range tests {
		if got := For(tt.err); got != tt.want {
			t.Errorf("For(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

// Package signals notifies running processes with a realtime signal: it
// resolves SIGRTMIN+offset, finds processes by command name and delivers the
// signal to each of them.
package signals

import (
	"fmt"
	"math"

	"github.com/harrisonrobin/taskbar/pkg/errors"
)

// Bounds is the realtime signal window of a platform.
type Bounds struct {
	Min int // SIGRTMIN, itself reserved
	Max int // SIGRTMAX
}

// DefaultBounds are the values glibc reports on Linux. The kernel's range
// starts at 32; glibc keeps 32 and 33 for its own threading. musl keeps
// 32 to 34, so SIGRTMIN is 35 there; config's signal_min covers that case.
var DefaultBounds = Bounds{Min: 34, Max: 64}

// Signal is a resolved realtime signal.
type Signal struct {
	Offset int
	Number int
}

func (s Signal) String() string {
	return fmt.Sprintf("SIGRTMIN+%d (%d)", s.Offset, s.Number)
}

// Resolve resolves offset against DefaultBounds.
func Resolve(offset int) (Signal, error) {
	return DefaultBounds.Resolve(offset)
}

// Resolve returns SIGRTMIN+offset. Offsets below 1 are rejected since
// SIGRTMIN itself is not available to consumers such as Waybar, and so is
// any offset that would pass SIGRTMAX.
func (b Bounds) Resolve(offset int) (Signal, error) {
	if offset < 1 {
		return Signal{}, &errors.SignalRangeError{
			Kind:   errors.BelowMinimum,
			Offset: offset,
			Signal: b.Min + offset,
			Min:    b.Min,
			Max:    b.Max,
		}
	}

	if offset > b.Max-b.Min {
		return Signal{}, &errors.SignalRangeError{
			Kind:   errors.AboveMaximum,
			Offset: offset,
			Signal: saturatingAdd(b.Min, offset),
			Min:    b.Min,
			Max:    b.Max,
		}
	}
	return Signal{Offset: offset, Number: b.Min + offset}, nil
}

// saturatingAdd adds a positive offset to base, clamping at math.MaxInt.
func saturatingAdd(base, offset int) int {
	if offset > math.MaxInt-base {
		return math.MaxInt
	}
	return base + offset
}

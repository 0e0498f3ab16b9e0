package signals

import (
	"math"
	"testing"

	"github.com/harrisonrobin/taskbar/pkg/errors"
)

func TestResolveValid(t *testing.T) {
	sig, err := Resolve(8)
	if err != nil {
		t.Fatalf("Resolve(8) failed: %v", err)
	}
	if sig.Number != DefaultBounds.Min+8 {
		t.Errorf("Expected %d, got %d", DefaultBounds.Min+8, sig.Number)
	}
	if sig.String() != "SIGRTMIN+8 (42)" {
		t.Errorf("Unexpected String() %q", sig.String())
	}
}

func TestResolveBelowMinimum(t *testing.T) {
	for _, offset := range []int{0, -1, -500} {
		_, err := Resolve(offset)
		if !errors.Is(err, errors.ErrSignalBelowMinimum) {
			t.Errorf("Resolve(%d): expected below-minimum error, got %v", offset, err)
		}
	}
}

func TestResolveAboveMaximum(t *testing.T) {
	_, err := Resolve(50)
	if !errors.Is(err, errors.ErrSignalAboveMaximum) {
		t.Fatalf("Expected above-maximum error, got %v", err)
	}

	var rangeErr *errors.SignalRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatal("Expected *SignalRangeError")
	}
	if rangeErr.Offset != 50 || rangeErr.Signal != 84 || rangeErr.Min != 34 || rangeErr.Max != 64 {
		t.Errorf("Unexpected error context %+v", rangeErr)
	}
}

func TestResolveHugeOffset(t *testing.T) {
	for _, offset := range []int{math.MaxInt, math.MaxInt - 33, math.MaxInt / 2} {
		sig, err := Resolve(offset)
		if !errors.Is(err, errors.ErrSignalAboveMaximum) {
			t.Errorf("Resolve(%d) = %v, %v; expected above-maximum error", offset, sig, err)
			continue
		}
		var rangeErr *errors.SignalRangeError
		if errors.As(err, &rangeErr) && rangeErr.Signal <= rangeErr.Max {
			t.Errorf("Resolve(%d): reported signal %d is inside the window", offset, rangeErr.Signal)
		}
	}
}

func TestResolveEdges(t *testing.T) {
	b := Bounds{Min: 34, Max: 64}

	if sig, err := b.Resolve(1); err != nil || sig.Number != 35 {
		t.Errorf("Resolve(1) = %v, %v; want 35", sig, err)
	}
	if sig, err := b.Resolve(30); err != nil || sig.Number != 64 {
		t.Errorf("Resolve(30) = %v, %v; want 64", sig, err)
	}
	if _, err := b.Resolve(31); !errors.Is(err, errors.ErrSignalAboveMaximum) {
		t.Errorf("Resolve(31): expected above-maximum error, got %v", err)
	}
}

func TestResolveCustomBounds(t *testing.T) {
	b := Bounds{Min: 65, Max: 126}
	sig, err := b.Resolve(8)
	if err != nil {
		t.Fatal(err)
	}
	if sig.Number != 73 || sig.Offset != 8 {
		t.Errorf("Unexpected signal %+v", sig)
	}

	musl := Bounds{Min: 35, Max: 64}
	if sig, err := musl.Resolve(8); err != nil || sig.Number != 43 {
		t.Errorf("Resolve(8) = %v, %v; want 43", sig, err)
	}
	if _, err := musl.Resolve(30); !errors.Is(err, errors.ErrSignalAboveMaximum) {
		t.Errorf("Resolve(30): expected above-maximum error, got %v", err)
	}
}

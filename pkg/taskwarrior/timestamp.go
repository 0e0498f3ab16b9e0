package taskwarrior

import (
	"time"

	"github.com/harrisonrobin/taskbar/pkg/errors"
)

// TimeLayout is Taskwarrior's export layout, YYYYMMDDTHHMMSSZ in UTC.
const TimeLayout = "20060102T150405Z"

// timestampLen is the length up to and excluding the trailing 'Z'.
const timestampLen = 15

// digit positions in YYYYMMDDThhmmss
var timestampDigits = [...]int{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13, 14}

// ParseTimestamp parses a compact Taskwarrior timestamp such as
// "20241206T143002Z" into a UTC instant.
//
// The input is checked before it is sliced: it must be at least 15 bytes,
// have 'T' at position 8, digits in every numeric slot, and 'Z' at position
// 15 when present. Anything else yields a *errors.TimestampFormatError.
func ParseTimestamp(s string) (time.Time, error) {
	if len(s) < timestampLen {
		return time.Time{}, &errors.TimestampFormatError{Input: s, Reason: "too short"}
	}
	if s[8] != 'T' {
		return time.Time{}, &errors.TimestampFormatError{Input: s, Reason: "expected 'T' at position 8"}
	}
	if len(s) > timestampLen && s[timestampLen] != 'Z' {
		return time.Time{}, &errors.TimestampFormatError{Input: s, Reason: "expected 'Z' at position 15"}
	}
	for _, i := range timestampDigits {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, &errors.TimestampFormatError{Input: s, Reason: "non-numeric date or time field"}
		}
	}

	canonical := s[0:4] + "-" + s[4:6] + "-" + s[6:8] +
		"T" + s[9:11] + ":" + s[11:13] + ":" + s[13:15] + "+00:00"

	t, err := time.Parse(time.RFC3339, canonical)
	if err != nil {
		return time.Time{}, &errors.TimestampFormatError{Input: s, Reason: "out of range", Err: err}
	}
	return t.UTC(), nil
}

// FormatTimestamp is the inverse of ParseTimestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

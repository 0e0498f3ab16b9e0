package taskwarrior

import "time"

// Task is one pending task as emitted by `task export`. Everything except
// ID is optional and nil when the export omits it.
//
// Due is kept as the raw export string so that a malformed value degrades
// only that task's rendering instead of failing the whole decode.
type Task struct {
	ID          int      `json:"id"`
	Description *string  `json:"description,omitempty"`
	Priority    *string  `json:"priority,omitempty"`
	Due         *string  `json:"due,omitempty"`
	Urgency     *float64 `json:"urgency,omitempty"`
}

// DueTime returns the parsed due instant. ok is false when the task has no
// due value or the value does not parse.
func (t Task) DueTime() (due time.Time, ok bool) {
	if t.Due == nil {
		return time.Time{}, false
	}
	due, err := ParseTimestamp(*t.Due)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

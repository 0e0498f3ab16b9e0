// Package waybar renders ordered tasks into the JSON shape read by a Waybar
// custom module and persists it.
package waybar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harrisonrobin/taskbar/pkg/taskwarrior"
)

// NoTasks is shown in both fields when there is nothing pending.
const NoTasks = "No tasks."

// DueLayout renders due dates as e.g. "Fri, 24-12-06 15:30".
const DueLayout = "Mon, 06-01-02 15:04"

// Output is the summary consumed by Waybar: Text is the bar label, Tooltip
// lists every task.
type Output struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
}

// Renderer builds Output from tasks that are already ordered. Due dates are
// displayed in Location, or in the local zone when Location is nil.
type Renderer struct {
	Location *time.Location
}

// Render uses the local time zone.
func Render(tasks []taskwarrior.Task) Output {
	return Renderer{}.Render(tasks)
}

// Render returns the most urgent task as Text and all tasks, one per line,
// as Tooltip.
func (r Renderer) Render(tasks []taskwarrior.Task) Output {
	if len(tasks) == 0 {
		return Output{Text: NoTasks, Tooltip: NoTasks}
	}

	lines := make([]string, len(tasks))
	for i, task := range tasks {
		lines[i] = r.Line(task)
	}
	return Output{
		Text:    lines[0],
		Tooltip: strings.Join(lines, "\n"),
	}
}

// Line formats one task as "<id>: description, Prio: P, Due: ..., Urgency: U.UU".
// Absent fields are left out, and so is a due value that does not parse.
func (r Renderer) Line(task taskwarrior.Task) string {
	var parts []string

	if task.Description != nil {
		parts = append(parts, *task.Description)
	}
	if task.Priority != nil {
		parts = append(parts, "Prio: "+*task.Priority)
	}
	if due, ok := task.DueTime(); ok {
		parts = append(parts, "Due: "+due.In(r.location()).Format(DueLayout))
	}
	if task.Urgency != nil {
		parts = append(parts, fmt.Sprintf("Urgency: %.2f", *task.Urgency))
	}

	id := strconv.Itoa(task.ID)
	if len(parts) == 0 {
		return id
	}
	return id + ": " + strings.Join(parts, ", ")
}

func (r Renderer) location() *time.Location {
	if r.Location == nil {
		return time.Local
	}
	return r.Location
}

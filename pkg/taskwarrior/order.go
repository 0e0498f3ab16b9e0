package taskwarrior

import (
	"cmp"
	"slices"
)

// Compare orders two tasks for display: urgency descending, then due date
// ascending, then id ascending. Each key only breaks ties left by the one
// before it.
//
// A missing urgency on either side compares equal and defers to the due
// key; it is not pushed to the bottom. A missing or unparsable due date
// sorts before any valid one.
func Compare(a, b Task) int {
	if c := compareUrgency(a, b); c != 0 {
		return c
	}
	if c := compareDue(a, b); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func compareUrgency(a, b Task) int {
	if a.Urgency == nil || b.Urgency == nil {
		return 0
	}
	ua, ub := *a.Urgency, *b.Urgency
	switch {
	case ua > ub:
		return -1
	case ua < ub:
		return 1
	}
	// equal, or NaN on either side
	return 0
}

func compareDue(a, b Task) int {
	da, okA := a.DueTime()
	db, okB := b.DueTime()
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	}
	return da.Compare(db)
}

// Sort orders tasks in place using Compare.
func Sort(tasks []Task) {
	slices.SortFunc(tasks, Compare)
}

// Sorted returns an ordered copy of tasks, leaving the input untouched.
func Sorted(tasks []Task) []Task {
	out := slices.Clone(tasks)
	Sort(out)
	return out
}

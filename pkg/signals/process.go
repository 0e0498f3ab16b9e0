package signals

import (
	"cmp"
	"slices"

	"github.com/prometheus/procfs"

	"github.com/harrisonrobin/taskbar/pkg/errors"
	"github.com/harrisonrobin/taskbar/pkg/logging"
)

// Process is a running process matched by name.
type Process struct {
	PID  int
	Comm string
}

// Locator finds processes in a proc filesystem.
type Locator struct {
	mountPoint string
	log        *logging.Logger
}

// NewLocator returns a Locator for the proc filesystem mounted at
// mountPoint, or procfs.DefaultMountPoint when empty. Nothing is read until
// FindByName.
func NewLocator(mountPoint string, log *logging.Logger) *Locator {
	if mountPoint == "" {
		mountPoint = procfs.DefaultMountPoint
	}
	return &Locator{mountPoint: mountPoint, log: log}
}

// FindByName returns every process whose command name (the comm field of
// /proc/<pid>/stat) equals name exactly, ordered by PID.
//
// Processes that exit or cannot be read during the scan are skipped. Only a
// failure to list the process table is returned as an error.
func (l *Locator) FindByName(name string) ([]Process, error) {
	fs, err := procfs.NewFS(l.mountPoint)
	if err != nil {
		return nil, &errors.ProcessListError{Err: err}
	}
	procs, err := fs.AllProcs()
	if err != nil {
		return nil, &errors.ProcessListError{Err: err}
	}

	var matches []Process
	for _, p := range procs {
		stat, err := p.Stat()
		if err != nil {
			l.log.Debug("skipping unreadable process", "pid", p.PID, "error", err)
			continue
		}
		if stat.Comm == name {
			matches = append(matches, Process{PID: p.PID, Comm: stat.Comm})
		}
	}

	slices.SortFunc(matches, func(a, b Process) int { return cmp.Compare(a.PID, b.PID) })
	return matches, nil
}

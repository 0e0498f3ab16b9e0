package signals

import (
	"golang.org/x/sys/unix"

	"github.com/harrisonrobin/taskbar/pkg/errors"
	"github.com/harrisonrobin/taskbar/pkg/logging"
)

// Sender delivers signal sig to process pid.
type Sender interface {
	Send(pid int, sig int) error
}

// UnixSender sends signals with kill(2). It is the only code in the module
// that calls kill.
type UnixSender struct{}

func (UnixSender) Send(pid int, sig int) error {
	return unix.Kill(pid, unix.Signal(sig))
}

// Failure is a delivery that did not go through.
type Failure struct {
	PID int
	Err error
}

// Report lists the outcome of one Dispatch.
type Report struct {
	Signal    Signal
	Delivered []int
	Failed    []Failure
}

type Dispatcher struct {
	sender Sender
	log    *logging.Logger
}

func NewDispatcher(sender Sender, log *logging.Logger) *Dispatcher {
	if sender == nil {
		sender = UnixSender{}
	}
	return &Dispatcher{sender: sender, log: log}
}

// Dispatch sends sig to every process in procs. A failed delivery is logged
// and recorded in the Report without stopping the others. An empty procs is
// an error: it almost always means the consumer named name is not running.
func (d *Dispatcher) Dispatch(name string, procs []Process, sig Signal) (Report, error) {
	report := Report{Signal: sig}
	if len(procs) == 0 {
		return report, &errors.ProcessNotFoundError{Name: name}
	}

	noun := "processes"
	if len(procs) == 1 {
		noun = "process"
	}
	d.log.Info("sending signal", "signal", sig.Number, "count", len(procs), "target", noun, "name", name)

	for _, p := range procs {
		d.log.Info("sending to pid", "pid", p.PID)
		if err := d.sender.Send(p.PID, sig.Number); err != nil {
			d.log.Warn("failed to send signal", "signal", sig.Number, "pid", p.PID, "error", err)
			report.Failed = append(report.Failed, Failure{PID: p.PID, Err: err})
			continue
		}
		report.Delivered = append(report.Delivered, p.PID)
	}
	return report, nil
}

// Finder is satisfied by *Locator.
type Finder interface {
	FindByName(name string) ([]Process, error)
}

// Notifier resolves, locates and dispatches in one call.
type Notifier struct {
	Bounds     Bounds
	Finder     Finder
	Dispatcher *Dispatcher
}

// NotifyByName sends SIGRTMIN+offset to every process named name. The offset
// is validated before the process table is scanned.
func (n *Notifier) NotifyByName(name string, offset int) (Report, error) {
	sig, err := n.Bounds.Resolve(offset)
	if err != nil {
		return Report{}, err
	}
	procs, err := n.Finder.FindByName(name)
	if err != nil {
		return Report{Signal: sig}, err
	}
	return n.Dispatcher.Dispatch(name, procs, sig)
}

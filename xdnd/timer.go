package xdnd

import "time"

// ResponseTimeout is the default bounded delay the engine waits for a
// source response before treating it as a fault.
const ResponseTimeout = 3000 * time.Millisecond

// TimerHandle is an opaque cancellation token returned by Scheduler.
// ScheduleOnce. It carries no behavior of its own; only the Scheduler that
// produced it knows how to cancel it.
type TimerHandle interface{}

// Scheduler is the timer facility collaborator: schedule a single delayed
// callback, and cancel it. The engine holds at most one outstanding handle
// per DragInfo at any time.
type Scheduler interface {
	ScheduleOnce(delay time.Duration, handler func()) TimerHandle
	Cancel(handle TimerHandle)
}

// systemScheduler is the production Scheduler backed by time.AfterFunc.
type systemScheduler struct{}

// NewSystemScheduler returns the real-time Scheduler used outside tests.
func NewSystemScheduler() Scheduler {
	return systemScheduler{}
}

func (systemScheduler) ScheduleOnce(delay time.Duration, handler func()) TimerHandle {
	return time.AfterFunc(delay, handler)
}

func (systemScheduler) Cancel(handle TimerHandle) {
	if handle == nil {
		return
	}
	if t, ok := handle.(*time.Timer); ok {
		t.Stop()
	}
}

// resetWatchdog stops any outstanding watchdog timer for info and, if info
// is not idle, schedules a fresh one. Called after every non-idle
// transition: the watchdog is the floor for source
// inactivity. Invoking stop-then-maybe-reschedule here (rather than
// leaving it to callers) keeps the "at most one pending watchdog" invariant
// trivially true.
func (e *Engine) resetWatchdog(info *DragInfo) {
	e.stopWatchdog(info)
	if info.State == StateIdle {
		return
	}
	view := info.DestView
	info.watchdogHandle = e.scheduler.ScheduleOnce(e.config.ResponseTimeout, func() {
		e.onWatchdogFired(info, view)
	})
}

func (e *Engine) stopWatchdog(info *DragInfo) {
	if info.watchdogHandle != nil {
		e.scheduler.Cancel(info.watchdogHandle)
		info.watchdogHandle = nil
	}
}

package debug

import "fmt"

// ThreadState represents the execution state of a debuggee thread.
type ThreadState int

const (
	// ThreadRunning is a thread that is currently executing.
	ThreadRunning ThreadState = iota
	// ThreadStopped is a thread paused by a breakpoint, step, or pause request.
	ThreadStopped
	// ThreadFrozen is a thread suspended by the host.
	ThreadFrozen
	// ThreadDead is a thread that has exited.
	ThreadDead
)

// String returns a string representation of the thread state.
func (s ThreadState) String() string {
	switch s {
	case ThreadRunning:
		return "running"
	case ThreadStopped:
		return "stopped"
	case ThreadFrozen:
		return "frozen"
	case ThreadDead:
		return "dead"
	default:
		return "unknown"
	}
}

// ThreadHandle is the narrowed view of a thread that the host enumeration
// contract exposes. Concrete *Thread values satisfy it; the enumerator
// hands out handles without duplicating the underlying thread.
type ThreadHandle interface {
	// ThreadID returns the debuggee-assigned thread identifier.
	ThreadID() int
	// ThreadName returns the display name of the thread.
	ThreadName() string
	// State returns the current execution state.
	State() ThreadState
}

// Thread represents a thread of the debuggee as known to the host.
type Thread struct {
	// ID is the debuggee-assigned thread identifier.
	ID int

	// Name is the display name of the thread.
	Name string

	// ExecState is the execution state at snapshot time.
	ExecState ThreadState

	// FrameCount is the number of stack frames available when stopped.
	FrameCount int

	// Location describes where the thread is stopped, if known.
	Location string
}

// ThreadID returns the debuggee-assigned thread identifier.
func (t *Thread) ThreadID() int {
	return t.ID
}

// ThreadName returns the display name of the thread.
func (t *Thread) ThreadName() string {
	if t.Name == "" {
		return fmt.Sprintf("Thread %d", t.ID)
	}
	return t.Name
}

// State returns the execution state at snapshot time.
func (t *Thread) State() ThreadState {
	return t.ExecState
}

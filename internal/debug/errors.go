package debug

import "errors"

// Standard errors returned by the debug package.
var (
	// ErrNoSession indicates no debug session is active.
	ErrNoSession = errors.New("no active session")

	// ErrNoThread indicates the requested thread is not known to the session.
	ErrNoThread = errors.New("thread not found")

	// ErrNoProgram indicates the requested program is not registered.
	ErrNoProgram = errors.New("program not found")

	// ErrBreakpointExists indicates a pending breakpoint is already set at
	// the location.
	ErrBreakpointExists = errors.New("breakpoint already set")

	// ErrBreakpointNotFound indicates no breakpoint exists at the location.
	ErrBreakpointNotFound = errors.New("breakpoint not found")

	// ErrSessionTerminated indicates the session has ended and cannot be
	// used further.
	ErrSessionTerminated = errors.New("session terminated")

	// ErrWatcherClosed indicates the breakpoint file watcher was closed.
	ErrWatcherClosed = errors.New("watcher closed")
)

package enum

import (
	"errors"
	"sync"
)

// ErrNotImplemented is returned by Clone, which the enumerator does not
// support. The snapshot protocol expected by the host allows an enumerator
// to decline cloning, and callers must treat it as a permanent condition.
var ErrNotImplemented = errors.New("clone not implemented")

// Status reports whether a batch request was fully satisfied.
type Status int

const (
	// StatusComplete means every requested element was delivered.
	StatusComplete Status = iota
	// StatusPartial means fewer elements than requested were available.
	// Partial is part of the normal protocol, not a failure; callers must
	// inspect the fetched count.
	StatusPartial
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Enumerator provides a batched forward cursor over a fixed snapshot of
// elements. The snapshot is captured at construction and never changes;
// only the cursor moves. All cursor-moving operations are safe for
// concurrent use, and concurrent callers consume disjoint ranges of the
// snapshot.
type Enumerator[T any] struct {
	mu     sync.Mutex
	items  []T
	cursor int
}

// New creates an enumerator over a snapshot of items. The slice is copied
// so later mutation by the caller cannot affect the enumeration.
func New[T any](items []T) *Enumerator[T] {
	snap := make([]T, len(items))
	copy(snap, items)
	return &Enumerator[T]{items: snap}
}

// Count returns the number of elements in the snapshot. The length is
// fixed at construction, so Count does not take the lock.
func (e *Enumerator[T]) Count() int {
	return len(e.items)
}

// Next delivers up to requested elements into buf, starting at the cursor,
// and advances the cursor past them. It returns the number delivered and
// StatusComplete when the full request was satisfied, StatusPartial when
// fewer than requested remained (including zero). A nil buf advances the
// cursor without copying; a non-nil buf must have room for requested
// elements. A request of zero (or a negative request, which is clamped to
// zero) always completes with zero delivered.
func (e *Enumerator[T]) Next(requested int, buf []T) (int, Status) {
	if requested < 0 {
		requested = 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	fetched := len(e.items) - e.cursor
	if requested < fetched {
		fetched = requested
	}
	if buf != nil {
		copy(buf[:fetched], e.items[e.cursor:e.cursor+fetched])
	}
	e.cursor += fetched

	if fetched < requested {
		return fetched, StatusPartial
	}
	return fetched, StatusComplete
}

// Skip advances the cursor past up to requested elements without
// delivering them. It shares Next's advancement rule, so Skip(k) followed
// by Next(m) yields the same elements as a discarded Next(k) followed by
// Next(m).
func (e *Enumerator[T]) Skip(requested int) (int, Status) {
	return e.Next(requested, nil)
}

// Reset moves the cursor back to the start of the snapshot. A subsequent
// full walk reproduces the snapshot from the beginning.
func (e *Enumerator[T]) Reset() {
	e.mu.Lock()
	e.cursor = 0
	e.mu.Unlock()
}

// Clone would return an independent enumerator over the same snapshot with
// the same cursor position. It is not supported and always returns
// ErrNotImplemented.
func (e *Enumerator[T]) Clone() (*Enumerator[T], error) {
	return nil, ErrNotImplemented
}

package debug

import "github.com/dshills/debughost/internal/debug/enum"

// The typed enumerators below each wrap one enum.Enumerator and re-expose
// it under the exact contract the host requires. They add no batching
// logic of their own; the only work done here is signature translation
// and, for threads and modules, narrowing the stored concrete elements to
// the handle type the contract is expressed in. Handles are copied by
// reference, never by duplicating the wrapped object.

// Compile-time contract checks.
var (
	_ ProgramsEnum         = (*ProgramEnumerator)(nil)
	_ ThreadsEnum          = (*ThreadEnumerator)(nil)
	_ ModulesEnum          = (*ModuleEnumerator)(nil)
	_ CodeContextsEnum     = (*CodeContextEnumerator)(nil)
	_ FramesEnum           = (*FrameInfoEnumerator)(nil)
	_ BoundBreakpointsEnum = (*BoundBreakpointEnumerator)(nil)
	_ PropertiesEnum       = (*PropertyEnumerator)(nil)
	_ PropertyChildrenEnum = (*PropertyChildEnumerator)(nil)
)

// ProgramEnumerator enumerates a snapshot of debuggee programs.
type ProgramEnumerator struct {
	inner *enum.Enumerator[*Program]
}

// NewProgramEnumerator creates an enumerator over a snapshot of programs.
func NewProgramEnumerator(programs []*Program) *ProgramEnumerator {
	return &ProgramEnumerator{inner: enum.New(programs)}
}

// Count returns the snapshot length.
func (e *ProgramEnumerator) Count() int { return e.inner.Count() }

// Next delivers up to requested programs into buf.
func (e *ProgramEnumerator) Next(requested int, buf []*Program) (int, enum.Status) {
	return e.inner.Next(requested, buf)
}

// Skip advances past up to requested programs.
func (e *ProgramEnumerator) Skip(requested int) (int, enum.Status) {
	return e.inner.Skip(requested)
}

// Reset moves the cursor back to the start.
func (e *ProgramEnumerator) Reset() { e.inner.Reset() }

// Clone is not supported.
func (e *ProgramEnumerator) Clone() (ProgramsEnum, error) {
	return nil, enum.ErrNotImplemented
}

// ThreadEnumerator enumerates a snapshot of threads, exposing them as
// ThreadHandle values.
type ThreadEnumerator struct {
	inner *enum.Enumerator[*Thread]
}

// NewThreadEnumerator creates an enumerator over a snapshot of threads.
func NewThreadEnumerator(threads []*Thread) *ThreadEnumerator {
	return &ThreadEnumerator{inner: enum.New(threads)}
}

// Count returns the snapshot length.
func (e *ThreadEnumerator) Count() int { return e.inner.Count() }

// Next delivers up to requested threads into buf, narrowed to the handle
// type at the contract boundary.
func (e *ThreadEnumerator) Next(requested int, buf []ThreadHandle) (int, enum.Status) {
	if buf == nil {
		return e.inner.Next(requested, nil)
	}
	scratch := make([]*Thread, clampScratch(requested, e.inner.Count()))
	n, st := e.inner.Next(requested, scratch)
	for i := 0; i < n; i++ {
		buf[i] = scratch[i]
	}
	return n, st
}

// Skip advances past up to requested threads.
func (e *ThreadEnumerator) Skip(requested int) (int, enum.Status) {
	return e.inner.Skip(requested)
}

// Reset moves the cursor back to the start.
func (e *ThreadEnumerator) Reset() { e.inner.Reset() }

// Clone is not supported.
func (e *ThreadEnumerator) Clone() (ThreadsEnum, error) {
	return nil, enum.ErrNotImplemented
}

// ModuleEnumerator enumerates a snapshot of loaded modules, exposing them
// as ModuleHandle values.
type ModuleEnumerator struct {
	inner *enum.Enumerator[*Module]
}

// NewModuleEnumerator creates an enumerator over a snapshot of modules.
func NewModuleEnumerator(modules []*Module) *ModuleEnumerator {
	return &ModuleEnumerator{inner: enum.New(modules)}
}

// Count returns the snapshot length.
func (e *ModuleEnumerator) Count() int { return e.inner.Count() }

// Next delivers up to requested modules into buf, narrowed to the handle
// type at the contract boundary.
func (e *ModuleEnumerator) Next(requested int, buf []ModuleHandle) (int, enum.Status) {
	if buf == nil {
		return e.inner.Next(requested, nil)
	}
	scratch := make([]*Module, clampScratch(requested, e.inner.Count()))
	n, st := e.inner.Next(requested, scratch)
	for i := 0; i < n; i++ {
		buf[i] = scratch[i]
	}
	return n, st
}

// Skip advances past up to requested modules.
func (e *ModuleEnumerator) Skip(requested int) (int, enum.Status) {
	return e.inner.Skip(requested)
}

// Reset moves the cursor back to the start.
func (e *ModuleEnumerator) Reset() { e.inner.Reset() }

// Clone is not supported.
func (e *ModuleEnumerator) Clone() (ModulesEnum, error) {
	return nil, enum.ErrNotImplemented
}

// CodeContextEnumerator enumerates a snapshot of code locations.
type CodeContextEnumerator struct {
	inner *enum.Enumerator[*CodeContext]
}

// NewCodeContextEnumerator creates an enumerator over a snapshot of code
// contexts.
func NewCodeContextEnumerator(contexts []*CodeContext) *CodeContextEnumerator {
	return &CodeContextEnumerator{inner: enum.New(contexts)}
}

// Count returns the snapshot length.
func (e *CodeContextEnumerator) Count() int { return e.inner.Count() }

// Next delivers up to requested code contexts into buf.
func (e *CodeContextEnumerator) Next(requested int, buf []*CodeContext) (int, enum.Status) {
	return e.inner.Next(requested, buf)
}

// Skip advances past up to requested code contexts.
func (e *CodeContextEnumerator) Skip(requested int) (int, enum.Status) {
	return e.inner.Skip(requested)
}

// Reset moves the cursor back to the start.
func (e *CodeContextEnumerator) Reset() { e.inner.Reset() }

// Clone is not supported.
func (e *CodeContextEnumerator) Clone() (CodeContextsEnum, error) {
	return nil, enum.ErrNotImplemented
}

// FrameInfoEnumerator enumerates a snapshot of stack frame descriptors
// under the reference-count convention.
type FrameInfoEnumerator struct {
	inner *enum.Enumerator[FrameInfo]
}

// NewFrameInfoEnumerator creates an enumerator over a snapshot of frames.
func NewFrameInfoEnumerator(frames []FrameInfo) *FrameInfoEnumerator {
	return &FrameInfoEnumerator{inner: enum.New(frames)}
}

// Count returns the snapshot length.
func (e *FrameInfoEnumerator) Count() int { return e.inner.Count() }

// Next reads the requested count from *countInOut, delivers up to that
// many frames into buf, and writes the delivered count back through
// countInOut. A nil countInOut is treated as a zero-sized request.
func (e *FrameInfoEnumerator) Next(buf []FrameInfo, countInOut *int) enum.Status {
	if countInOut == nil {
		_, st := e.inner.Next(0, nil)
		return st
	}
	n, st := e.inner.Next(*countInOut, buf)
	*countInOut = n
	return st
}

// Skip advances past up to requested frames.
func (e *FrameInfoEnumerator) Skip(requested int) (int, enum.Status) {
	return e.inner.Skip(requested)
}

// Reset moves the cursor back to the start.
func (e *FrameInfoEnumerator) Reset() { e.inner.Reset() }

// Clone is not supported.
func (e *FrameInfoEnumerator) Clone() (FramesEnum, error) {
	return nil, enum.ErrNotImplemented
}

// BoundBreakpointEnumerator enumerates a snapshot of bound breakpoints
// under the reference-count convention.
type BoundBreakpointEnumerator struct {
	inner *enum.Enumerator[*BoundBreakpoint]
}

// NewBoundBreakpointEnumerator creates an enumerator over a snapshot of
// bound breakpoints.
func NewBoundBreakpointEnumerator(bps []*BoundBreakpoint) *BoundBreakpointEnumerator {
	return &BoundBreakpointEnumerator{inner: enum.New(bps)}
}

// Count returns the snapshot length.
func (e *BoundBreakpointEnumerator) Count() int { return e.inner.Count() }

// Next reads the requested count from *countInOut, delivers up to that
// many bound breakpoints into buf, and writes the delivered count back.
func (e *BoundBreakpointEnumerator) Next(buf []*BoundBreakpoint, countInOut *int) enum.Status {
	if countInOut == nil {
		_, st := e.inner.Next(0, nil)
		return st
	}
	n, st := e.inner.Next(*countInOut, buf)
	*countInOut = n
	return st
}

// Skip advances past up to requested bound breakpoints.
func (e *BoundBreakpointEnumerator) Skip(requested int) (int, enum.Status) {
	return e.inner.Skip(requested)
}

// Reset moves the cursor back to the start.
func (e *BoundBreakpointEnumerator) Reset() { e.inner.Reset() }

// Clone is not supported.
func (e *BoundBreakpointEnumerator) Clone() (BoundBreakpointsEnum, error) {
	return nil, enum.ErrNotImplemented
}

// PropertyEnumerator enumerates a snapshot of property descriptors under
// the reference-count convention.
type PropertyEnumerator struct {
	inner *enum.Enumerator[PropertyInfo]
}

// NewPropertyEnumerator creates an enumerator over a snapshot of
// property descriptors.
func NewPropertyEnumerator(props []PropertyInfo) *PropertyEnumerator {
	return &PropertyEnumerator{inner: enum.New(props)}
}

// Count returns the snapshot length.
func (e *PropertyEnumerator) Count() int { return e.inner.Count() }

// Next reads the requested count from *countInOut, delivers up to that
// many property descriptors into buf, and writes the delivered count back.
func (e *PropertyEnumerator) Next(buf []PropertyInfo, countInOut *int) enum.Status {
	if countInOut == nil {
		_, st := e.inner.Next(0, nil)
		return st
	}
	n, st := e.inner.Next(*countInOut, buf)
	*countInOut = n
	return st
}

// Skip advances past up to requested property descriptors.
func (e *PropertyEnumerator) Skip(requested int) (int, enum.Status) {
	return e.inner.Skip(requested)
}

// Reset moves the cursor back to the start.
func (e *PropertyEnumerator) Reset() { e.inner.Reset() }

// Clone is not supported.
func (e *PropertyEnumerator) Clone() (PropertiesEnum, error) {
	return nil, enum.ErrNotImplemented
}

// PropertyChildEnumerator enumerates the child descriptors of an
// expandable property. It is structurally identical to PropertyEnumerator;
// the host simply consumes it through a separate contract.
type PropertyChildEnumerator struct {
	inner *enum.Enumerator[PropertyInfo]
}

// NewPropertyChildEnumerator creates an enumerator over a snapshot of
// child property descriptors.
func NewPropertyChildEnumerator(props []PropertyInfo) *PropertyChildEnumerator {
	return &PropertyChildEnumerator{inner: enum.New(props)}
}

// Count returns the snapshot length.
func (e *PropertyChildEnumerator) Count() int { return e.inner.Count() }

// Next reads the requested count from *countInOut, delivers up to that
// many child descriptors into buf, and writes the delivered count back.
func (e *PropertyChildEnumerator) Next(buf []PropertyInfo, countInOut *int) enum.Status {
	if countInOut == nil {
		_, st := e.inner.Next(0, nil)
		return st
	}
	n, st := e.inner.Next(*countInOut, buf)
	*countInOut = n
	return st
}

// Skip advances past up to requested child descriptors.
func (e *PropertyChildEnumerator) Skip(requested int) (int, enum.Status) {
	return e.inner.Skip(requested)
}

// Reset moves the cursor back to the start.
func (e *PropertyChildEnumerator) Reset() { e.inner.Reset() }

// Clone is not supported.
func (e *PropertyChildEnumerator) Clone() (PropertyChildrenEnum, error) {
	return nil, enum.ErrNotImplemented
}

// clampScratch bounds the scratch buffer used for handle narrowing: never
// negative, never larger than the snapshot itself.
func clampScratch(requested, count int) int {
	if requested < 0 {
		return 0
	}
	if requested > count {
		return count
	}
	return requested
}

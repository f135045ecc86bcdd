package debug

import "github.com/dshills/debughost/internal/debug/enum"

// The host consumes every enumerable debug collection through one of two
// contract families. Both carry the same five operations; they differ only
// in how the fetched count travels. The value family returns it; the
// reference family reads the requested count from *countInOut and writes
// the delivered count back through it.

// ProgramsEnum enumerates the programs being debugged.
type ProgramsEnum interface {
	Count() int
	Next(requested int, buf []*Program) (int, enum.Status)
	Skip(requested int) (int, enum.Status)
	Reset()
	Clone() (ProgramsEnum, error)
}

// ThreadsEnum enumerates debuggee threads as narrowed thread handles.
type ThreadsEnum interface {
	Count() int
	Next(requested int, buf []ThreadHandle) (int, enum.Status)
	Skip(requested int) (int, enum.Status)
	Reset()
	Clone() (ThreadsEnum, error)
}

// ModulesEnum enumerates loaded modules as narrowed module handles.
type ModulesEnum interface {
	Count() int
	Next(requested int, buf []ModuleHandle) (int, enum.Status)
	Skip(requested int) (int, enum.Status)
	Reset()
	Clone() (ModulesEnum, error)
}

// CodeContextsEnum enumerates code locations resolved from a source position.
type CodeContextsEnum interface {
	Count() int
	Next(requested int, buf []*CodeContext) (int, enum.Status)
	Skip(requested int) (int, enum.Status)
	Reset()
	Clone() (CodeContextsEnum, error)
}

// FramesEnum enumerates stack frame descriptors. Reference convention:
// *countInOut carries the requested count in and the delivered count out.
type FramesEnum interface {
	Count() int
	Next(buf []FrameInfo, countInOut *int) enum.Status
	Skip(requested int) (int, enum.Status)
	Reset()
	Clone() (FramesEnum, error)
}

// BoundBreakpointsEnum enumerates breakpoints bound in the debuggee.
// Reference convention.
type BoundBreakpointsEnum interface {
	Count() int
	Next(buf []*BoundBreakpoint, countInOut *int) enum.Status
	Skip(requested int) (int, enum.Status)
	Reset()
	Clone() (BoundBreakpointsEnum, error)
}

// PropertiesEnum enumerates the property descriptors of a stopped frame.
// Reference convention.
type PropertiesEnum interface {
	Count() int
	Next(buf []PropertyInfo, countInOut *int) enum.Status
	Skip(requested int) (int, enum.Status)
	Reset()
	Clone() (PropertiesEnum, error)
}

// PropertyChildrenEnum enumerates the child descriptors of an expandable
// property. The host exposes it as a separate contract, but its shape is
// identical to PropertiesEnum. Reference convention.
type PropertyChildrenEnum interface {
	Count() int
	Next(buf []PropertyInfo, countInOut *int) enum.Status
	Skip(requested int) (int, enum.Status)
	Reset()
	Clone() (PropertyChildrenEnum, error)
}

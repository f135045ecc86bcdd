package debug

import "fmt"

// FrameInfo describes one stack frame of a stopped thread.
type FrameInfo struct {
	// ID is the unique frame identifier within the stop.
	ID int

	// FuncName is the function name.
	FuncName string

	// SourcePath is the source file path, empty if unknown.
	SourcePath string

	// Line is the current line in the source (1-based).
	Line int

	// Column is the current column in the source (1-based).
	Column int

	// ModuleName is the module the frame's code belongs to.
	ModuleName string

	// Language is the source language, if known.
	Language string

	// Address is the instruction pointer for the frame.
	Address uint64
}

// HasSource returns true if the frame has source information.
func (f FrameInfo) HasSource() bool {
	return f.SourcePath != ""
}

// FormatLocation returns a formatted location string like "file.go:42".
func (f FrameInfo) FormatLocation() string {
	if f.SourcePath == "" {
		return fmt.Sprintf("0x%08x", f.Address)
	}
	return fmt.Sprintf("%s:%d", f.SourcePath, f.Line)
}

// CodeContext represents a code location in the debuggee, either resolved
// from a source position or from an instruction address.
type CodeContext struct {
	// Address is the instruction address of the location.
	Address uint64

	// SourcePath is the source file the address maps to, if known.
	SourcePath string

	// Line is the mapped source line (1-based), zero if unknown.
	Line int

	// FuncName is the enclosing function, if known.
	FuncName string
}

// FormatLocation returns a formatted location string for the context.
func (c *CodeContext) FormatLocation() string {
	if c.SourcePath == "" {
		return fmt.Sprintf("0x%08x", c.Address)
	}
	return fmt.Sprintf("%s:%d", c.SourcePath, c.Line)
}

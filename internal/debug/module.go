package debug

import "path/filepath"

// SymbolStatus describes whether debug symbols were located for a module.
type SymbolStatus int

const (
	// SymbolsNotLoaded means no symbols were found for the module.
	SymbolsNotLoaded SymbolStatus = iota
	// SymbolsLoaded means symbols were located and loaded.
	SymbolsLoaded
	// SymbolsSkipped means symbol loading was disabled for the module.
	SymbolsSkipped
)

// String returns a string representation of the symbol status.
func (s SymbolStatus) String() string {
	switch s {
	case SymbolsNotLoaded:
		return "not loaded"
	case SymbolsLoaded:
		return "loaded"
	case SymbolsSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// ModuleHandle is the narrowed view of a loaded module that the host
// enumeration contract exposes. Concrete *Module values satisfy it.
type ModuleHandle interface {
	// ModuleName returns the short name of the module.
	ModuleName() string
	// ModulePath returns the full load path of the module.
	ModulePath() string
	// Symbols returns the symbol load status.
	Symbols() SymbolStatus
}

// Module represents a binary loaded into the debuggee.
type Module struct {
	// ID is the host-assigned module identifier.
	ID int

	// Name is the short name of the module (file name).
	Name string

	// Path is the full load path of the module.
	Path string

	// Version is the module version string, if known.
	Version string

	// SymbolState is the symbol load status.
	SymbolState SymbolStatus

	// SymbolPath is the path of the loaded symbol file, if any.
	SymbolPath string

	// LoadAddress is the base address the module was loaded at.
	LoadAddress uint64

	// Size is the size of the loaded image in bytes.
	Size uint32

	// IsUserCode indicates whether the host treats this module as user code.
	IsUserCode bool
}

// ModuleName returns the short name of the module, deriving it from the
// load path when unset.
func (m *Module) ModuleName() string {
	if m.Name == "" && m.Path != "" {
		return filepath.Base(m.Path)
	}
	return m.Name
}

// ModulePath returns the full load path of the module.
func (m *Module) ModulePath() string {
	return m.Path
}

// Symbols returns the symbol load status.
func (m *Module) Symbols() SymbolStatus {
	return m.SymbolState
}

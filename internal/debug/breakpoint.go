package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// PendingBreakpoint is a breakpoint requested by the user that may or may
// not yet be bound to a location in the debuggee.
type PendingBreakpoint struct {
	// ID is a unique identifier for this breakpoint.
	ID int `json:"id"`

	// Path is the source file path.
	Path string `json:"path"`

	// Line is the requested line number (1-based).
	Line int `json:"line"`

	// Condition is an optional condition expression.
	Condition string `json:"condition,omitempty"`

	// Enabled indicates if the breakpoint is enabled.
	Enabled bool `json:"enabled"`
}

// BoundBreakpoint is a pending breakpoint that the debuggee resolved to a
// concrete code location.
type BoundBreakpoint struct {
	// Pending is the breakpoint request this binding satisfies.
	Pending *PendingBreakpoint

	// Location is the resolved code location.
	Location *CodeContext

	// Verified indicates the debuggee confirmed the binding.
	Verified bool

	// Message contains any resolution message from the debuggee.
	Message string

	// HitCount is the number of times this binding has been hit.
	HitCount int
}

// FormatLocation returns the bound location as "file.go:42".
func (b *BoundBreakpoint) FormatLocation() string {
	if b.Location == nil {
		return fmt.Sprintf("%s:%d (unbound)", b.Pending.Path, b.Pending.Line)
	}
	return b.Location.FormatLocation()
}

// BreakpointManager tracks pending breakpoints and their bindings for a
// session.
//
// BreakpointManager is safe for concurrent use.
type BreakpointManager struct {
	mu sync.RWMutex

	// All pending breakpoints by ID
	pending map[int]*PendingBreakpoint

	// Pending breakpoints grouped by file path
	byPath map[string][]*PendingBreakpoint

	// Bindings grouped by pending breakpoint ID
	bound map[int][]*BoundBreakpoint

	// Next breakpoint ID
	nextID int

	// Persistence file path
	persistPath string
}

// NewBreakpointManager creates a new breakpoint manager.
func NewBreakpointManager() *BreakpointManager {
	return &BreakpointManager{
		pending: make(map[int]*PendingBreakpoint),
		byPath:  make(map[string][]*PendingBreakpoint),
		bound:   make(map[int][]*BoundBreakpoint),
		nextID:  1,
	}
}

// SetPersistPath sets the file path for breakpoint persistence.
func (m *BreakpointManager) SetPersistPath(path string) {
	m.mu.Lock()
	m.persistPath = path
	m.mu.Unlock()
}

// allocateID allocates a new breakpoint ID.
func (m *BreakpointManager) allocateID() int {
	id := m.nextID
	m.nextID++
	return id
}

// Add registers a pending breakpoint at path:line.
func (m *BreakpointManager) Add(path string, line int) (*PendingBreakpoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, bp := range m.byPath[path] {
		if bp.Line == line {
			return nil, fmt.Errorf("add breakpoint %s:%d: %w", path, line, ErrBreakpointExists)
		}
	}

	bp := &PendingBreakpoint{
		ID:      m.allocateID(),
		Path:    path,
		Line:    line,
		Enabled: true,
	}
	m.pending[bp.ID] = bp
	m.byPath[path] = append(m.byPath[path], bp)

	return bp, nil
}

// AddConditional registers a pending breakpoint with a condition.
func (m *BreakpointManager) AddConditional(path string, line int, condition string) (*PendingBreakpoint, error) {
	bp, err := m.Add(path, line)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	bp.Condition = condition
	m.mu.Unlock()
	return bp, nil
}

// Remove deletes a pending breakpoint and any bindings by ID.
func (m *BreakpointManager) Remove(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bp, ok := m.pending[id]
	if !ok {
		return fmt.Errorf("remove breakpoint %d: %w", id, ErrBreakpointNotFound)
	}

	delete(m.pending, id)
	delete(m.bound, id)
	m.byPath[bp.Path] = removePendingFromSlice(m.byPath[bp.Path], id)
	if len(m.byPath[bp.Path]) == 0 {
		delete(m.byPath, bp.Path)
	}
	return nil
}

// removePendingFromSlice removes a breakpoint from a slice by ID.
func removePendingFromSlice(slice []*PendingBreakpoint, id int) []*PendingBreakpoint {
	for i, bp := range slice {
		if bp.ID == id {
			return append(slice[:i], slice[i+1:]...)
		}
	}
	return slice
}

// SetEnabled enables or disables a pending breakpoint.
func (m *BreakpointManager) SetEnabled(id int, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bp, ok := m.pending[id]
	if !ok {
		return fmt.Errorf("breakpoint %d: %w", id, ErrBreakpointNotFound)
	}
	bp.Enabled = enabled
	return nil
}

// Bind records a resolved binding for a pending breakpoint. The debuggee
// may bind one request to several locations (inlined code, generics).
func (m *BreakpointManager) Bind(id int, loc *CodeContext, verified bool, message string) (*BoundBreakpoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bp, ok := m.pending[id]
	if !ok {
		return nil, fmt.Errorf("bind breakpoint %d: %w", id, ErrBreakpointNotFound)
	}

	b := &BoundBreakpoint{
		Pending:  bp,
		Location: loc,
		Verified: verified,
		Message:  message,
	}
	m.bound[id] = append(m.bound[id], b)
	return b, nil
}

// Unbind discards all bindings for a pending breakpoint, keeping the
// request itself.
func (m *BreakpointManager) Unbind(id int) {
	m.mu.Lock()
	delete(m.bound, id)
	m.mu.Unlock()
}

// Get returns a pending breakpoint by ID.
func (m *BreakpointManager) Get(id int) (*PendingBreakpoint, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	bp, ok := m.pending[id]
	return bp, ok
}

// ForPath returns the pending breakpoints for a file path.
func (m *BreakpointManager) ForPath(path string) []*PendingBreakpoint {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*PendingBreakpoint, len(m.byPath[path]))
	copy(result, m.byPath[path])
	return result
}

// All returns every pending breakpoint grouped by path, in sorted path
// order.
func (m *BreakpointManager) All() []*PendingBreakpoint {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.allLocked()
}

// allLocked collects all pending breakpoints in sorted path order.
// Callers must hold the lock.
func (m *BreakpointManager) allLocked() []*PendingBreakpoint {
	paths := make([]string, 0, len(m.byPath))
	for path := range m.byPath {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	result := make([]*PendingBreakpoint, 0, len(m.pending))
	for _, path := range paths {
		result = append(result, m.byPath[path]...)
	}
	return result
}

// BoundFor returns the current bindings of a pending breakpoint.
func (m *BreakpointManager) BoundFor(id int) []*BoundBreakpoint {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*BoundBreakpoint, len(m.bound[id]))
	copy(result, m.bound[id])
	return result
}

// BoundForPath returns every binding whose request targets the given path.
func (m *BreakpointManager) BoundForPath(path string) []*BoundBreakpoint {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*BoundBreakpoint
	for _, bp := range m.byPath[path] {
		result = append(result, m.bound[bp.ID]...)
	}
	return result
}

// IncrementHitCount increments the hit count of a binding.
func (m *BreakpointManager) IncrementHitCount(id int, loc *CodeContext) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.bound[id] {
		if b.Location == loc {
			b.HitCount++
			return
		}
	}
}

// ClearAll removes all pending breakpoints and bindings.
func (m *BreakpointManager) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = make(map[int]*PendingBreakpoint)
	m.byPath = make(map[string][]*PendingBreakpoint)
	m.bound = make(map[int][]*BoundBreakpoint)
}

// breakpointFile is the on-disk persistence format.
type breakpointFile struct {
	Version     int                  `json:"version"`
	Breakpoints []*PendingBreakpoint `json:"breakpoints"`
}

// Save writes the pending breakpoints to the persistence path.
func (m *BreakpointManager) Save() error {
	m.mu.RLock()
	path := m.persistPath
	file := breakpointFile{Version: 1, Breakpoints: m.allLocked()}
	m.mu.RUnlock()

	if path == "" {
		return nil
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal breakpoints: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create breakpoint dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write breakpoints %s: %w", path, err)
	}
	return nil
}

// Load replaces the pending breakpoints with the contents of the
// persistence file. A missing file is not an error and leaves the
// manager unchanged. Bindings are discarded; the debuggee re-binds
// after a reload.
func (m *BreakpointManager) Load() error {
	m.mu.RLock()
	path := m.persistPath
	m.mu.RUnlock()

	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read breakpoints %s: %w", path, err)
	}

	var file breakpointFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse breakpoints %s: %w", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = make(map[int]*PendingBreakpoint)
	m.byPath = make(map[string][]*PendingBreakpoint)
	m.bound = make(map[int][]*BoundBreakpoint)
	maxID := 0
	for _, bp := range file.Breakpoints {
		if bp.Path == "" || bp.Line <= 0 {
			continue
		}
		m.pending[bp.ID] = bp
		m.byPath[bp.Path] = append(m.byPath[bp.Path], bp)
		if bp.ID > maxID {
			maxID = bp.ID
		}
	}
	m.nextID = maxID + 1
	return nil
}

package debug

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Program represents a debuggee program known to the host.
type Program struct {
	// ID is the host-assigned program identifier.
	ID string

	// Name is the display name of the program.
	Name string

	// Pid is the operating system process ID, if the program is attached
	// to a live process.
	Pid int

	// Attached indicates whether the host attached to an already-running
	// process rather than launching it.
	Attached bool
}

// DisplayName returns the program name, falling back to the process ID.
func (p *Program) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("pid %d", p.Pid)
}

// ProgramRegistry tracks the programs the host is debugging.
//
// ProgramRegistry is safe for concurrent use.
type ProgramRegistry struct {
	mu       sync.RWMutex
	programs map[string]*Program
	order    []string
}

// NewProgramRegistry creates an empty program registry.
func NewProgramRegistry() *ProgramRegistry {
	return &ProgramRegistry{
		programs: make(map[string]*Program),
	}
}

// Add registers a program and returns its assigned identifier.
func (r *ProgramRegistry) Add(name string, pid int, attached bool) *Program {
	p := &Program{
		ID:       uuid.New().String(),
		Name:     name,
		Pid:      pid,
		Attached: attached,
	}

	r.mu.Lock()
	r.programs[p.ID] = p
	r.order = append(r.order, p.ID)
	r.mu.Unlock()

	return p
}

// Get returns the program with the given identifier.
func (r *ProgramRegistry) Get(id string) (*Program, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.programs[id]
	return p, ok
}

// Remove deletes a program from the registry.
func (r *ProgramRegistry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.programs[id]; !ok {
		return false
	}
	delete(r.programs, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Programs returns the registered programs in registration order.
func (r *ProgramRegistry) Programs() []*Program {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Program, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.programs[id])
	}
	return result
}

// Len returns the number of registered programs.
func (r *ProgramRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.programs)
}

package debug

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionState represents the current state of a debug session.
type SessionState int

const (
	// StateInitializing is the initial state before the debuggee runs.
	StateInitializing SessionState = iota
	// StateRunning is when the debuggee is executing.
	StateRunning
	// StateStopped is when the debuggee is paused (breakpoint, step, pause).
	StateStopped
	// StateTerminated is when the debuggee has exited.
	StateTerminated
)

// String returns a string representation of the state.
func (s SessionState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Session holds everything the host knows about one debugging session:
// the programs being debugged, the current thread and module sets, and
// the stop-time data (frames, properties, code contexts) reported by the
// debuggee. Construction of those values is the collaborator's job; the
// session stores them and serves point-in-time enumerators over them.
//
// Every Enum method captures a snapshot at call time. Updating the
// session afterwards never affects an enumerator that already exists.
//
// Session is safe for concurrent use.
type Session struct {
	// ID uniquely identifies the session.
	ID string

	registry    *ProgramRegistry
	breakpoints *BreakpointManager

	state   SessionState
	stateMu sync.RWMutex

	// Debuggee state, replaced wholesale on each stop/update
	threads      []*Thread
	modules      []*Module
	frames       map[int][]FrameInfo       // by thread ID
	properties   map[int][]PropertyInfo    // by frame ID or child reference
	codeContexts map[string][]*CodeContext // by "path:line"
	mu           sync.RWMutex

	log zerolog.Logger
}

// NewSession creates a session in the initializing state.
func NewSession(log zerolog.Logger) *Session {
	id := uuid.New().String()
	return &Session{
		ID:           id,
		registry:     NewProgramRegistry(),
		breakpoints:  NewBreakpointManager(),
		frames:       make(map[int][]FrameInfo),
		properties:   make(map[int][]PropertyInfo),
		codeContexts: make(map[string][]*CodeContext),
		log:          log.With().Str("session", id).Logger(),
	}
}

// Programs returns the program registry for the session.
func (s *Session) Programs() *ProgramRegistry {
	return s.registry
}

// Breakpoints returns the breakpoint manager for the session.
func (s *Session) Breakpoints() *BreakpointManager {
	return s.breakpoints
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// setState updates the session state.
func (s *Session) setState(state SessionState) {
	s.stateMu.Lock()
	old := s.state
	s.state = state
	s.stateMu.Unlock()

	if old != state {
		s.log.Info().
			Stringer("from", old).
			Stringer("to", state).
			Msg("session state changed")
	}
}

// Run marks the debuggee as executing.
func (s *Session) Run() error {
	if s.State() == StateTerminated {
		return fmt.Errorf("run: %w", ErrSessionTerminated)
	}
	s.setState(StateRunning)
	return nil
}

// Stop marks the debuggee as paused. Stop-time data (frames, properties)
// is expected to follow via the Set methods.
func (s *Session) Stop() error {
	if s.State() == StateTerminated {
		return fmt.Errorf("stop: %w", ErrSessionTerminated)
	}
	s.setState(StateStopped)
	return nil
}

// Terminate ends the session and clears debuggee state.
func (s *Session) Terminate() {
	s.setState(StateTerminated)

	s.mu.Lock()
	s.threads = nil
	s.modules = nil
	s.frames = make(map[int][]FrameInfo)
	s.properties = make(map[int][]PropertyInfo)
	s.codeContexts = make(map[string][]*CodeContext)
	s.mu.Unlock()
}

// SetThreads replaces the known thread set.
func (s *Session) SetThreads(threads []*Thread) {
	s.mu.Lock()
	s.threads = threads
	s.mu.Unlock()
	s.log.Debug().Int("count", len(threads)).Msg("threads updated")
}

// SetModules replaces the known module set.
func (s *Session) SetModules(modules []*Module) {
	s.mu.Lock()
	s.modules = modules
	s.mu.Unlock()
	s.log.Debug().Int("count", len(modules)).Msg("modules updated")
}

// SetFrames replaces the stack frames for a thread.
func (s *Session) SetFrames(threadID int, frames []FrameInfo) {
	s.mu.Lock()
	s.frames[threadID] = frames
	s.mu.Unlock()
}

// SetProperties replaces the property descriptors reachable through a
// frame ID or child reference.
func (s *Session) SetProperties(ref int, props []PropertyInfo) {
	s.mu.Lock()
	s.properties[ref] = props
	s.mu.Unlock()
}

// SetCodeContexts replaces the code locations resolved for a source
// position.
func (s *Session) SetCodeContexts(path string, line int, ctxs []*CodeContext) {
	s.mu.Lock()
	s.codeContexts[contextKey(path, line)] = ctxs
	s.mu.Unlock()
}

// Thread returns the thread with the given ID.
func (s *Session) Thread(id int) (*Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.threads {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("thread %d: %w", id, ErrNoThread)
}

// EnumPrograms returns an enumerator over the current program set.
func (s *Session) EnumPrograms() *ProgramEnumerator {
	programs := s.registry.Programs()
	s.logSnapshot("programs", len(programs))
	return NewProgramEnumerator(programs)
}

// EnumThreads returns an enumerator over the current thread set.
func (s *Session) EnumThreads() *ThreadEnumerator {
	s.mu.RLock()
	threads := s.threads
	s.mu.RUnlock()

	s.logSnapshot("threads", len(threads))
	return NewThreadEnumerator(threads)
}

// EnumModules returns an enumerator over the current module set.
func (s *Session) EnumModules() *ModuleEnumerator {
	s.mu.RLock()
	modules := s.modules
	s.mu.RUnlock()

	s.logSnapshot("modules", len(modules))
	return NewModuleEnumerator(modules)
}

// EnumFrames returns an enumerator over the stack frames of a thread.
// A thread with no reported frames yields an empty enumeration.
func (s *Session) EnumFrames(threadID int) *FrameInfoEnumerator {
	s.mu.RLock()
	frames := s.frames[threadID]
	s.mu.RUnlock()

	s.logSnapshot("frames", len(frames))
	return NewFrameInfoEnumerator(frames)
}

// EnumProperties returns an enumerator over the property descriptors of a
// stopped frame.
func (s *Session) EnumProperties(frameID int) *PropertyEnumerator {
	s.mu.RLock()
	props := s.properties[frameID]
	s.mu.RUnlock()

	s.logSnapshot("properties", len(props))
	return NewPropertyEnumerator(props)
}

// EnumPropertyChildren returns an enumerator over the children of an
// expandable property.
func (s *Session) EnumPropertyChildren(childRef int) *PropertyChildEnumerator {
	s.mu.RLock()
	props := s.properties[childRef]
	s.mu.RUnlock()

	s.logSnapshot("property children", len(props))
	return NewPropertyChildEnumerator(props)
}

// EnumCodeContexts returns an enumerator over the code locations resolved
// for a source position.
func (s *Session) EnumCodeContexts(path string, line int) *CodeContextEnumerator {
	s.mu.RLock()
	ctxs := s.codeContexts[contextKey(path, line)]
	s.mu.RUnlock()

	s.logSnapshot("code contexts", len(ctxs))
	return NewCodeContextEnumerator(ctxs)
}

// EnumBoundBreakpoints returns an enumerator over the breakpoints bound
// for a source file.
func (s *Session) EnumBoundBreakpoints(path string) *BoundBreakpointEnumerator {
	bound := s.breakpoints.BoundForPath(path)
	s.logSnapshot("bound breakpoints", len(bound))
	return NewBoundBreakpointEnumerator(bound)
}

// logSnapshot records snapshot production at debug level.
func (s *Session) logSnapshot(kind string, count int) {
	s.log.Debug().Str("kind", kind).Int("count", count).Msg("snapshot enumerator created")
}

// contextKey builds the lookup key for a source position.
func contextKey(path string, line int) string {
	return fmt.Sprintf("%s:%d", path, line)
}

// Package debug implements the debugging-host integration for debughost.
//
// The host drives every enumerable debug collection through a batched
// snapshot protocol: it asks for a chunk of items at a time, may skip
// ahead or reset to the beginning, and is told for every batch whether it
// received everything it asked for or only a prefix.
//
// # Architecture
//
//	┌──────────────────────────────────────────────────────────────┐
//	│                         Session                              │
//	│  - Programs, threads, modules known to the host              │
//	│  - Stop-time data: frames, properties, code contexts         │
//	│  - Pending and bound breakpoints                             │
//	└──────────────────────────────────────────────────────────────┘
//	                             │  EnumX() snapshots
//	                             ▼
//	┌──────────────────────────────────────────────────────────────┐
//	│                   Typed enumerators (8)                      │
//	│  programs, threads, modules, code contexts, frames,          │
//	│  bound breakpoints, properties, property children            │
//	└──────────────────────────────────────────────────────────────┘
//	                             │  wraps
//	                             ▼
//	┌──────────────────────────────────────────────────────────────┐
//	│              enum.Enumerator[T] (generic core)               │
//	│  fixed snapshot + locked cursor; Count/Next/Skip/Reset/Clone │
//	└──────────────────────────────────────────────────────────────┘
//
// Each typed enumerator satisfies one host contract from contracts.go.
// Four contracts return the fetched count as a value; four pass it by
// reference. Threads and modules are stored as concrete objects but
// exposed as narrowed handles; the narrowing happens at the adapter
// boundary and never inside the generic core.
//
// # Snapshot semantics
//
// An enumerator is fixed at construction: mutating the session afterwards
// never changes what an existing enumerator delivers. Partial delivery is
// a status, not an error, and Clone is declined with ErrNotImplemented.
//
// # Subpackages
//
//   - enum: the generic snapshot enumeration core
//   - host: capability contracts of the surrounding host environment
//   - launch: launch profile reading
package debug

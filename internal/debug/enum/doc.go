// Package enum implements the batched snapshot enumeration protocol used
// by every enumerable debug collection in debughost.
//
// An Enumerator owns a fixed snapshot of elements captured at construction
// and a cursor protected by a mutex. The host drives it through five
// operations:
//
//   - Count: snapshot length
//   - Next: deliver up to N elements and advance
//   - Skip: advance without delivering
//   - Reset: return to the start
//   - Clone: declined (ErrNotImplemented)
//
// Next and Skip report StatusComplete when the full request was satisfied
// and StatusPartial when only a prefix was available. Partial is a normal
// protocol outcome, never an error: an exhausted enumerator answers any
// positive request with zero elements and StatusPartial, and a zero-sized
// request always completes.
//
// Typed adapters in the parent package wrap one Enumerator apiece and
// re-expose these operations under the exact signatures the host contracts
// require.
package enum

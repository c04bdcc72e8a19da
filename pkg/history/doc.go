// Package history provides bounded undo/redo over immutable value snapshots.
//
// A History holds a (past, present, future) triple and every transition —
// Record, Undo, Redo — is a pure function returning a new History value.
// Keeping the manager free of hidden mutable state means there is no
// "suppress the next change" flag to get wrong: callers tag each incoming
// value with its Source, and history-sourced values are simply not recorded.
//
// # Architecture
//
// Record is the "external change" transition: when the incoming value
// differs from the present snapshot it pushes the present onto the past
// stack (bounded, oldest entries dropped first), installs the new value and
// clears the redo stack. Undo and Redo shuttle snapshots between the stacks
// and are no-ops when their stack is empty, so callers never need to guard
// with CanUndo/CanRedo first.
//
// Equality between snapshots defaults to reflect.DeepEqual and can be
// replaced with WithEqual when snapshots carry fields that defeat deep
// comparison.
//
// # Usage
//
//	h := history.New(initial, history.WithLimit(50))
//	h = h.Record(afterEdit)
//	if h.CanUndo() {
//	    h, _ = h.Undo()
//	}
//	current := h.Present()
//
// History values are plain data; copying one is cheap and two copies never
// interfere, which makes the type trivially safe to thread through
// single-owner editor state.
package history

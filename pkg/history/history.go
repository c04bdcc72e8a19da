package history

import "reflect"

// DefaultLimit bounds the undo stack when no WithLimit option is given.
const DefaultLimit = 50

// Source tags where an incoming value originated. Values produced by Undo
// or Redo must be applied with SourceHistory so they do not re-record
// themselves and destroy the opposite stack.
type Source string

const (
	SourceExternal Source = "external"
	SourceHistory  Source = "history"
)

// Option configures a History at construction time.
type Option[T any] func(*History[T])

// WithLimit bounds the undo stack to n snapshots. Values below 1 keep the
// default.
func WithLimit[T any](n int) Option[T] {
	return func(h *History[T]) {
		if n > 0 {
			h.limit = n
		}
	}
}

// WithEqual replaces the deep-equality check used to detect whether an
// incoming value actually differs from the present snapshot.
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	return func(h *History[T]) {
		if eq != nil {
			h.equal = eq
		}
	}
}

// History is an immutable (past, present, future) triple. The zero value is
// not usable; construct with New.
type History[T any] struct {
	past    []T
	present T
	future  []T
	limit   int
	equal   func(a, b T) bool
}

// New creates a History whose present snapshot is initial.
func New[T any](initial T, opts ...Option[T]) History[T] {
	h := History[T]{
		present: initial,
		limit:   DefaultLimit,
		equal:   func(a, b T) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Present returns the current snapshot.
func (h History[T]) Present() T {
	return h.present
}

// CanUndo reports whether an earlier snapshot is available.
func (h History[T]) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo reports whether an undone snapshot is available.
func (h History[T]) CanRedo() bool {
	return len(h.future) > 0
}

// Depth returns the number of recorded past snapshots.
func (h History[T]) Depth() int {
	return len(h.past)
}

// Apply routes an incoming value by its source: external values are
// recorded, history-sourced values are suppressed and leave the triple
// untouched.
func (h History[T]) Apply(next T, src Source) History[T] {
	if src == SourceHistory {
		return h
	}
	return h.Record(next)
}

// Record registers an external change. A value deep-equal to the present
// snapshot leaves the history untouched; otherwise the present snapshot is
// pushed onto the past stack (trimmed to the limit, oldest first), next
// becomes present and the redo stack is cleared.
func (h History[T]) Record(next T) History[T] {
	if h.equal(h.present, next) {
		return h
	}

	past := make([]T, 0, len(h.past)+1)
	past = append(past, h.past...)
	past = append(past, h.present)
	if len(past) > h.limit {
		past = past[len(past)-h.limit:]
	}

	h.past = past
	h.present = next
	h.future = nil
	return h
}

// Undo steps back to the most recent past snapshot, moving the present one
// onto the front of the redo stack. When there is nothing to undo it
// returns the receiver unchanged and ok=false.
func (h History[T]) Undo() (History[T], bool) {
	if len(h.past) == 0 {
		return h, false
	}

	prev := h.past[len(h.past)-1]

	future := make([]T, 0, len(h.future)+1)
	future = append(future, h.present)
	future = append(future, h.future...)

	h.past = append([]T(nil), h.past[:len(h.past)-1]...)
	h.present = prev
	h.future = future
	return h, true
}

// Redo re-applies the most recently undone snapshot. When there is nothing
// to redo it returns the receiver unchanged and ok=false.
func (h History[T]) Redo() (History[T], bool) {
	if len(h.future) == 0 {
		return h, false
	}

	next := h.future[0]

	past := make([]T, 0, len(h.past)+1)
	past = append(past, h.past...)
	past = append(past, h.present)

	h.past = past
	h.present = next
	h.future = append([]T(nil), h.future[1:]...)
	return h, true
}

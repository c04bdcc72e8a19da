// Package block defines the content blocks that make up a mail document and
// the structural operations over an ordered block sequence.
//
// A document body is a Sequence — an ordered slice of Block values. Every
// structural operation (Add, Remove, Update, Move, Duplicate, Reorder) is a
// pure function over its input snapshot: it returns a fresh Sequence and
// never mutates the one it was given. This makes sequences safe to keep as
// history snapshots and to share across renders without copying defensively
// at every call site.
//
// # Architecture
//
// Block is deliberately loose at the edges: Content is free text and Settings
// is an open string-keyed map, because the set of keys varies per block type
// and is interpreted elsewhere (action blocks are decoded into a typed
// action.Config at the editor boundary). The Type enumeration itself is
// closed.
//
// Operations that reference a block by id are forgiving — an unknown id
// results in the unchanged sequence rather than an error, since the editor
// UI may hold briefly stale ids.
//
// # Usage
//
//	seq := block.Sequence{}
//	seq = seq.Add(block.NewWithContent(block.TypeHeading, "Hello"), -1)
//	seq = seq.Add(block.New(block.TypeAction), -1)
//	seq = seq.Move(seq[1].ID, block.DirectionUp)
//
// All operations are allocation-cheap copies of the slice header plus cloned
// elements; they are safe for concurrent readers because no shared state is
// ever written.
package block

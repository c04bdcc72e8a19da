// Package editor ties the block store, undo history, action validation and
// markup generation together behind the façade the surrounding editor UI
// talks to.
//
// An Editor owns one document body as a history-wrapped block sequence.
// Structural mutations go through the pure pkg/block operations and each
// resulting snapshot is recorded as an external change; Undo and Redo step
// through recorded snapshots without re-recording themselves. The editor is
// single-owner state: the surrounding UI is event-driven and synchronous,
// so no locking happens here.
//
// Action blocks store their configuration in the loose settings map; the
// editor decodes that map into a typed action.Config at this boundary and
// runs validation for live feedback. At export time Compile walks the
// sequence and generates structured markup per action block, isolating
// failures so one broken block never prevents the rest of the document
// from exporting.
//
// # Usage
//
//	ed := editor.New(nil)
//	ed.AddBlock(block.NewWithContent(block.TypeHeading, "Hi"), -1)
//	ed.AddBlock(actionBlock, -1)
//
//	res, _ := ed.ValidateBlock(actionBlock.ID) // live feedback
//	compiled := ed.Compile()                   // export-time markup
package editor

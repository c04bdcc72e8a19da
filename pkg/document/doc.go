// Package document provides named mail documents — an id, a display name and
// an ordered block sequence — together with their persistence boundary.
//
// Persistence is deliberately an opaque key-value contract: the Storage
// interface saves, loads, lists and deletes whole documents by id and knows
// nothing about block internals. Three backends ship with the package: an
// in-memory store for tests and development, a Redis store and a MongoDB
// store, both configured through env-tagged Config structs.
//
// # Lossy load boundary
//
// Persisted documents come from outside this process and may be damaged. A
// document's blocks field is decoded defensively: entries that are not
// objects, or that lack an id or type, are discarded rather than failing
// the whole load, and a blocks field that is not an array loads as an empty
// body. A mangled entry costs one block, never the document.
//
// # Templates
//
// Starter documents can be described in YAML (see Template) and
// instantiated with fresh block ids, so template blocks never collide with
// ids already recorded in a user's undo history.
//
// # Usage
//
//	store := document.NewMemoryStorage()
//	doc := document.New("Welcome campaign")
//	doc.Blocks = seq
//	if err := store.Save(ctx, doc); err != nil { ... }
//
//	loaded, err := store.Load(ctx, doc.ID)
package document

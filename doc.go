// Package mailblocks is the document core for a block-based email builder.
//
// An email is a flat sequence of typed blocks (text, heading, image,
// button, divider, spacer, action). Action blocks describe interactive
// behavior that mail clients surface directly in the inbox, expressed as
// schema.org structured markup embedded in the message head.
//
// The module is organized as independent packages under pkg/:
//
//   - block: the block model and pure sequence operations (add, remove,
//     update, move, duplicate, reorder)
//   - history: a generic bounded undo/redo stack over immutable snapshots
//   - action: action configuration, the 16 supported variants, and
//     field-level validation with errors and advisory warnings
//   - markup: schema.org JSON-LD generation for validated actions
//   - editor: ties blocks, history, and actions into one editing session
//   - document: named persistent documents with memory, Redis, and MongoDB
//     storage backends plus YAML starter templates
//   - autosave: debounced persistence for editing sessions
//   - mailer: outbound delivery with the compiled markup embedded as
//     application/ld+json
//   - config: environment-based configuration loading
//
// Packages are usable on their own; nothing here starts a server or owns a
// main loop.
package mailblocks

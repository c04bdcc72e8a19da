// Package markup compiles a validated action configuration into the
// structured-markup object a mail client reads to render native interactive
// buttons.
//
// The output shape follows the schema.org email-markup vocabulary and is a
// byte-for-byte contract: each variant has a fixed @context/@type pair,
// nested reference entities (Airline, Airport, Organization, Person,
// PostalAddress, Place) are emitted as their own typed sub-objects, and
// status enums are rewritten into vocabulary URIs by concatenating a fixed
// prefix with the literal enum token.
//
// # Presence-conditional assembly
//
// Optional fields appear in the output only when present on the input. An
// absent input field is an absent output key — never a key holding null.
// The one deliberate exception is the simple-action shape, whose
// description falls back to the empty string.
//
// # Failure semantics
//
// A reservation or commerce action whose structured payload is missing
// fails with *MissingPayloadError instead of emitting a partial object:
// generation is all-or-nothing per block. Callers compile blocks
// independently, so one failing block never blocks the rest of a document
// (the editor package does exactly that).
//
// # Usage
//
//	obj, err := markup.Generate(cfg)
//	if markup.IsMissingPayloadError(err) {
//	    // data-integrity problem: the editor stored an action block
//	    // without its required payload
//	}
//	data, _ := json.Marshal(obj)
package markup

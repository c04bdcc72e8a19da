// Package action defines the typed configuration for interactive mail
// actions and validates it against the business rules each action variant
// carries.
//
// An action block's loose settings map is decoded into a Config — a tagged
// union discriminated by Type over sixteen variants: the simple actions
// (view, confirm, save, track, update, cancel, download), an RSVP event,
// six reservation kinds and the two commerce kinds (order, invoice).
// Structured payloads are pointer fields so that "absent" stays
// distinguishable from "present but empty"; the markup generator relies on
// exactly that distinction for presence-conditional output.
//
// # Validation
//
// Validate is a pure function returning a Result with ordered error and
// warning lists. Errors mark user-correctable problems and gate export;
// warnings are style advice (punctuation, shouting, overlong labels) and
// never affect validity. Validation never mutates its input and never
// panics on business-invalid data.
//
// Every variant is validated field-by-field, including the reservation and
// commerce variants whose hard precondition (payload presence) is enforced
// a second time at generation.
//
// # Usage
//
//	res := action.Validate(cfg)
//	if !res.Valid {
//	    // surface res.Errors to the user, block export
//	}
//	for _, w := range res.Warnings {
//	    // advisory only
//	}
//
// Timestamps are accepted in strict ISO-8601 form only:
// YYYY-MM-DDTHH:MM:SS followed by Z or a signed HH:MM offset. Fractional
// seconds and bare dates are rejected.
package action

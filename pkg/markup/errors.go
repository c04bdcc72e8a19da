package markup

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/mailblocks/pkg/action"
)

// ErrUnsupportedAction is returned when the action type is unknown to the
// generator.
var ErrUnsupportedAction = errors.New("unsupported action type")

// MissingPayloadError indicates that a reservation or commerce action
// config lacks the structured payload its variant requires. This is a
// data-integrity failure, not a user-input problem: the editor should never
// have produced such a config.
type MissingPayloadError struct {
	ActionType action.Type
	Payload    string
}

func (e *MissingPayloadError) Error() string {
	return fmt.Sprintf("missing %s payload for %s action", e.Payload, e.ActionType)
}

func newMissingPayload(t action.Type, payload string) *MissingPayloadError {
	return &MissingPayloadError{ActionType: t, Payload: payload}
}

// IsMissingPayloadError reports whether err is (or wraps) a
// *MissingPayloadError.
func IsMissingPayloadError(err error) bool {
	var e *MissingPayloadError
	return errors.As(err, &e)
}

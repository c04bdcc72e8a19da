package editor

import "errors"

var (
	// ErrBlockNotFound is returned when the referenced block id is not part
	// of the current sequence.
	ErrBlockNotFound = errors.New("block not found")

	// ErrNotActionBlock is returned when an action-only operation is applied
	// to a content block.
	ErrNotActionBlock = errors.New("block does not carry an action configuration")

	// ErrDecodeAction is returned when a block's settings cannot be decoded
	// into an action configuration.
	ErrDecodeAction = errors.New("failed to decode action settings")
)

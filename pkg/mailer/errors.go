package mailer

import "errors"

var (
	ErrFailedToSend    = errors.New("mailer.errors.failed_to_send")
	ErrInvalidConfig   = errors.New("mailer.errors.invalid_config")
	ErrInvalidMessage  = errors.New("mailer.errors.invalid_message")
	ErrMarkupEmbedding = errors.New("mailer.errors.markup_embedding_failed")
)

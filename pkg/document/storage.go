package document

import (
	"context"
	"errors"
)

var (
	// ErrDocumentNotFound is returned when no document exists under the id.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidDocument is returned when a document without an id is saved.
	ErrInvalidDocument = errors.New("document id is required")
)

// Storage persists whole documents keyed by id. Implementations treat the
// document as an opaque value; block semantics live elsewhere.
type Storage interface {
	// Save stores or replaces a document.
	Save(ctx context.Context, doc Document) error

	// Load retrieves a document by id.
	Load(ctx context.Context, id string) (Document, error)

	// Delete removes a document by id. Deleting a missing document is not
	// an error.
	Delete(ctx context.Context, id string) error

	// List returns all stored documents in unspecified order.
	List(ctx context.Context) ([]Document, error)
}

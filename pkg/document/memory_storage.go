package document

import (
	"context"
	"sync"
)

// MemoryStorage is an in-memory Storage implementation. Suitable for
// development and testing.
type MemoryStorage struct {
	docs map[string]Document
	mu   sync.RWMutex
}

// NewMemoryStorage creates an empty in-memory document store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{docs: make(map[string]Document)}
}

func (s *MemoryStorage) Save(ctx context.Context, doc Document) error {
	if doc.ID == "" {
		return ErrInvalidDocument
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// Store a deep copy so callers cannot mutate stored state afterwards.
	s.docs[doc.ID] = doc.Clone()
	return nil
}

func (s *MemoryStorage) Load(ctx context.Context, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return Document{}, ErrDocumentNotFound
	}
	return doc.Clone(), nil
}

func (s *MemoryStorage) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}

func (s *MemoryStorage) List(ctx context.Context) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc.Clone())
	}
	return out, nil
}

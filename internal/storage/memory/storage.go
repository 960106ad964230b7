package memory

import (
	"context"
	"sync"

	"github.com/mcoot/pocketcasino/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu        sync.RWMutex
	documents map[string][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		documents: make(map[string][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.documents[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte{}, data...), nil
}

func (s *Storage) Set(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Copy so later writes to the caller's buffer cannot change what is stored
	s.documents[key] = append([]byte{}, data...)
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, key)
	return nil
}

// Keys returns the number of stored documents
func (s *Storage) Keys() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

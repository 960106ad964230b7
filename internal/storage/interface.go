package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when nothing is stored under the key
var ErrNotFound = errors.New("no document stored under key")

// Storage is the durable substrate for saved documents. Implementations
// guarantee single-key overwrite and nothing stronger.
type Storage interface {
	// Get returns the document stored under key, or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the document stored under key
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes the document under key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}

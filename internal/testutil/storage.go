package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/mcoot/pocketcasino/internal/storage"
	"github.com/mcoot/pocketcasino/internal/storage/memory"
)

// ErrStorageUnavailable is returned by FlakyStorage while failing
var ErrStorageUnavailable = errors.New("storage unavailable")

// FlakyStorage wraps in-memory storage, counts writes, and can be
// switched into a failing mode.
type FlakyStorage struct {
	*memory.Storage

	mu       sync.Mutex
	failGet  bool
	failSet  bool
	setCalls int
}

var _ storage.Storage = (*FlakyStorage)(nil)

// NewFlakyStorage returns a healthy FlakyStorage
func NewFlakyStorage() *FlakyStorage {
	return &FlakyStorage{Storage: memory.New()}
}

// FailReads makes Get return ErrStorageUnavailable
func (f *FlakyStorage) FailReads(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failGet = fail
}

// FailWrites makes Set return ErrStorageUnavailable
func (f *FlakyStorage) FailWrites(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failSet = fail
}

// SetCalls returns how many writes were attempted
func (f *FlakyStorage) SetCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setCalls
}

func (f *FlakyStorage) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	fail := f.failGet
	f.mu.Unlock()
	if fail {
		return nil, ErrStorageUnavailable
	}
	return f.Storage.Get(ctx, key)
}

func (f *FlakyStorage) Set(ctx context.Context, key string, data []byte) error {
	f.mu.Lock()
	f.setCalls++
	fail := f.failSet
	f.mu.Unlock()
	if fail {
		return ErrStorageUnavailable
	}
	return f.Storage.Set(ctx, key, data)
}

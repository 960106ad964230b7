package factory

import (
	"context"
	"time"

	"github.com/mcoot/pocketcasino/internal/dependencies/mocks"
	"github.com/mcoot/pocketcasino/internal/storage"
	"github.com/mcoot/pocketcasino/internal/storage/memory"
	"github.com/mcoot/pocketcasino/internal/testutil"
)

// TestStart is the mock clock's initial time in test apps
var TestStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App over fresh in-memory storage with mocked
// clock and randomness
func NewTestApp() *TestApp {
	return NewTestAppWithStorage(memory.New())
}

// NewTestAppWithStorage creates a mocked App over the given storage, loading
// whatever record it already holds
func NewTestAppWithStorage(store storage.Storage) *TestApp {
	mockClock := mocks.NewMockClock(TestStart)
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(context.Background(), store, mockClock, mockRandom, Config{}, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// SettleSaves advances the mock clock past the save debounce window
func (t *TestApp) SettleSaves() {
	t.MockClock.Advance(t.Saver.Delay())
}

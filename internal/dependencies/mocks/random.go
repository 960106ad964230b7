package mocks

import (
	"github.com/mcoot/pocketcasino/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// FloatResults is a queue of results to return from Float64
	FloatResults []float64
	floatIndex   int

	// IntnCalls records the n argument of every Intn call
	IntnCalls []int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining.
// Queued values are clamped into [0, n).
func (r *MockRandom) Intn(n int) int {
	r.IntnCalls = append(r.IntnCalls, n)
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	if n > 0 && result >= n {
		result = n - 1
	}
	if result < 0 {
		result = 0
	}
	return result
}

// Float64 returns the next queued result, or 0 if none remaining
func (r *MockRandom) Float64() float64 {
	if r.floatIndex >= len(r.FloatResults) {
		return 0
	}
	result := r.FloatResults[r.floatIndex]
	r.floatIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueFloat adds values to the Float64 result queue
func (r *MockRandom) QueueFloat(values ...float64) {
	r.FloatResults = append(r.FloatResults, values...)
}

// Draws returns how many Intn calls have been made
func (r *MockRandom) Draws() int {
	return len(r.IntnCalls)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.FloatResults = nil
	r.floatIndex = 0
	r.IntnCalls = nil
}

package random

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mathrand "math/rand/v2"
	"sync"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Float64 returns a random float in [0, 1)
	Float64() float64
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n).
// rand.Int rejects out-of-range samples, so small ranges are not skewed.
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}

// Float64 returns a cryptographically random float in [0, 1) with 53 bits of precision
func (r *CryptoRandom) Float64() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
}

// SeededRandom is a reproducible Random for simulations and replays. It is
// safe for concurrent use, though the sequence then depends on call order.
type SeededRandom struct {
	mu sync.Mutex
	r  *mathrand.Rand
}

// NewSeeded creates a SeededRandom from a fixed seed
func NewSeeded(seed uint64) *SeededRandom {
	return &SeededRandom{r: mathrand.New(mathrand.NewPCG(seed, 0))}
}

// Intn returns a pseudo-random int in [0, n)
func (s *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// Float64 returns a pseudo-random float in [0, 1)
func (s *SeededRandom) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Int returns a uniformly distributed int in the inclusive range [min, max].
// Swapped bounds are normalised rather than rejected.
func Int(r Random, min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + r.Intn(max-min+1)
}

// Float returns a uniformly distributed float in the half-open range [min, max)
func Float(r Random, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	return min + r.Float64()*(max-min)
}

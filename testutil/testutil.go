package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Length returns a pseudo-random length in [1, maxLen].
func (r *RNG) Length(maxLen int) int {
	return r.Intn(maxLen) + 1
}

// Literal returns a random string of n '0'/'1' characters.
func (r *RNG) Literal(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.literalLocked(n)
}

// LiteralPair returns two independent random literals of length n.
// Locks only once per call.
func (r *RNG) LiteralPair(n int) (string, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.literalLocked(n), r.literalLocked(n)
}

// Literals returns num random literals, each with a random length in [1, maxLen].
func (r *RNG) Literals(num, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, num)
	for i := range out {
		out[i] = r.literalLocked(r.rand.Intn(maxLen) + 1)
	}
	return out
}

func (r *RNG) literalLocked(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = '0' + byte(r.rand.Intn(2))
	}
	return string(buf)
}

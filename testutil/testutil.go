package testutil

import (
	"math/rand"
	"slices"
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
		rand: rand.New(rand.NewSource(seed)),
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

// IntRange returns a pseudo-random number in [lo, hi).
func (r *RNG) IntRange(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rand.Intn(hi-lo)
}

// Int32 returns a pseudo-random int32 covering the full range, negatives included.
func (r *RNG) Int32() int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int32(r.rand.Uint32()) //nolint:gosec // wraparound is intended
}

// Elements returns n pseudo-random int32 values.
// Locks only once per call (preferred over calling Int32 in a loop).
func (r *RNG) Elements(n int) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int32, n)
	for i := range out {
		out[i] = int32(r.rand.Uint32()) //nolint:gosec // wraparound is intended
	}
	return out
}

// Model is a slice-backed reference for the positional semantics of a
// vector: the same bounds rules and shifting, with none of the capacity
// management. Operations report false where the vector reports an error.
type Model struct {
	values []int32
}

// Insert places x at loc, shifting later elements up.
func (m *Model) Insert(loc int, x int32) bool {
	if loc < 0 || loc > len(m.values) {
		return false
	}
	m.values = slices.Insert(m.values, loc, x)
	return true
}

// Get returns the element at loc.
func (m *Model) Get(loc int) (int32, bool) {
	if loc < 0 || loc >= len(m.values) {
		return 0, false
	}
	return m.values[loc], true
}

// Delete removes the element at loc, shifting later elements down.
func (m *Model) Delete(loc int) bool {
	if loc < 0 || loc >= len(m.values) {
		return false
	}
	m.values = slices.Delete(m.values, loc, loc+1)
	return true
}

// Len returns the number of elements.
func (m *Model) Len() int {
	return len(m.values)
}

// Values returns a copy of the elements in order.
func (m *Model) Values() []int32 {
	return slices.Clone(m.values)
}

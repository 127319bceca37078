package testutil

import (
	"math/rand/v2"
	"slices"
	"sync"
)

// RNG produces reproducible element sequences for vector tests.
// It is safe for concurrent use.
type RNG struct {
	mu   sync.Mutex
	seed uint64
	src  *rand.Rand
}

// NewRNG returns an RNG seeded with seed.
func NewRNG(seed uint64) *RNG {
	r := &RNG{seed: seed}
	r.src = r.fresh()
	return r
}

func (r *RNG) fresh() *rand.Rand {
	return rand.New(rand.NewPCG(r.seed, r.seed^0x9e3779b97f4a7c15)) //nolint:gosec // deterministic test data
}

// Reset rewinds the sequence to its start.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src = r.fresh()
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Ints returns n values in [0,maxVal).
func (r *RNG) Ints(n, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.src.IntN(maxVal)
	}
	return out
}

// Indices returns k distinct positions in [0,n) in ascending order, suitable
// for building removal sets. k is clamped to n.
func (r *RNG) Indices(n, k int) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	k = min(max(k, 0), n)
	perm := r.src.Perm(n)[:k]
	out := make([]uint32, k)
	for i, p := range perm {
		out[i] = uint32(p) //nolint:gosec // test sizes are small
	}
	slices.Sort(out)
	return out
}

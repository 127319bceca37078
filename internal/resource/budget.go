package resource

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrMemoryLimitExceeded is returned when memory limit would be exceeded.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Config holds budget limits.
type Config struct {
	// LimitBytes is the hard limit for reserved memory.
	// If 0, no hard limit is enforced (only tracking).
	LimitBytes int64
}

// Budget tracks and optionally limits reserved memory.
type Budget struct {
	cfg Config

	sem   *semaphore.Weighted // nil if unlimited
	inUse atomic.Int64
	peak  atomic.Int64
}

// NewBudget creates a new memory budget.
func NewBudget(cfg Config) *Budget {
	if cfg.LimitBytes < 0 {
		cfg.LimitBytes = 0
	}

	b := &Budget{cfg: cfg}
	if cfg.LimitBytes > 0 {
		b.sem = semaphore.NewWeighted(cfg.LimitBytes)
	}
	return b
}

// Reserve attempts to reserve memory.
// Returns ErrMemoryLimitExceeded if limit would be exceeded.
// Non-blocking - callers control retry policy.
func (b *Budget) Reserve(bytes int64) error {
	if b == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if b.sem != nil {
		if !b.sem.TryAcquire(bytes) {
			return ErrMemoryLimitExceeded
		}
	}

	used := b.inUse.Add(bytes)
	for {
		p := b.peak.Load()
		if used <= p || b.peak.CompareAndSwap(p, used) {
			break
		}
	}
	return nil
}

// Release returns reserved memory to the budget.
func (b *Budget) Release(bytes int64) {
	if b == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if b.sem != nil {
		b.sem.Release(bytes)
	}
	b.inUse.Add(-bytes)
}

// InUse returns the currently reserved bytes.
func (b *Budget) InUse() int64 {
	if b == nil {
		return 0
	}
	return b.inUse.Load()
}

// Peak returns the highest number of bytes reserved at any one time.
func (b *Budget) Peak() int64 {
	if b == nil {
		return 0
	}
	return b.peak.Load()
}

// Limit returns the configured limit in bytes (0 if unlimited).
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.cfg.LimitBytes
}

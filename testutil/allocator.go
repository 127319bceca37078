package testutil

import (
	"errors"
	"sync"
)

// ErrInjected is returned by a FailingAllocator once it has been armed.
var ErrInjected = errors.New("testutil: injected allocation failure")

// FailingAllocator tracks reservations and fails them on demand.
// It is safe for concurrent use.
type FailingAllocator struct {
	mu        sync.Mutex
	remaining int // successful reservations left; -1 means unlimited
	inUse     int64
	reserves  int
	releases  int
	failures  int
}

// NewFailingAllocator returns an allocator that never fails until armed.
func NewFailingAllocator() *FailingAllocator {
	return &FailingAllocator{remaining: -1}
}

// FailAfter lets the next n reservations succeed and fails every one after.
func (a *FailingAllocator) FailAfter(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if n < 0 {
		n = 0
	}
	a.remaining = n
}

// Heal disarms the allocator.
func (a *FailingAllocator) Heal() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.remaining = -1
}

// Reserve implements zk.Allocator.
func (a *FailingAllocator) Reserve(bytes int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.remaining == 0 {
		a.failures++
		return ErrInjected
	}
	if a.remaining > 0 {
		a.remaining--
	}
	a.reserves++
	a.inUse += bytes
	return nil
}

// Release implements zk.Allocator.
func (a *FailingAllocator) Release(bytes int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if bytes <= 0 {
		return
	}
	a.releases++
	a.inUse -= bytes
}

// InUse returns the bytes currently reserved.
func (a *FailingAllocator) InUse() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inUse
}

// Failures returns the number of refused reservations.
func (a *FailingAllocator) Failures() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.failures
}

// Reserves returns the number of successful reservations.
func (a *FailingAllocator) Reserves() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reserves
}

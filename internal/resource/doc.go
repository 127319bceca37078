// Package resource implements the memory Budget used for allocation accounting.
//
// A Budget tracks bytes reserved by vector storage regions and, when
// configured with a limit, refuses reservations that would exceed it.
//
// # Architecture
//
//	┌──────────────────────────────────────────┐
//	│                  Budget                  │
//	├─────────────────────┬────────────────────┤
//	│  Hard Limit         │  Usage Tracking    │
//	│  (semaphore,        │  (atomic counters) │
//	│   fail-fast)        │                    │
//	├─────────────────────┼────────────────────┤
//	│  Reserve            │  InUse             │
//	│  Release            │  Peak              │
//	└─────────────────────┴────────────────────┘
//
// Reserve is non-blocking and returns immediately with
// ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	b := resource.NewBudget(resource.Config{
//	    LimitBytes: 1 << 20, // 1MB limit
//	})
//
//	if err := b.Reserve(4096); err != nil {
//	    // ErrMemoryLimitExceeded - caller decides what to do
//	}
//	defer b.Release(4096)
//
// # Thread Safety
//
// All Budget methods are safe for concurrent use, so a single Budget can be
// shared by many single-owner vectors.
//
// # Nil Safety
//
// All methods handle a nil Budget gracefully - they become no-ops.
package resource

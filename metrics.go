package zk

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A collector may be shared by many vectors, so implementations must be safe
// for concurrent use.
type MetricsCollector interface {
	// RecordPush is called after each append (Push or Insert).
	// err is nil if successful.
	RecordPush(err error)

	// RecordGrow is called after each reallocation attempt.
	// from and to are the old and requested capacities.
	RecordGrow(from, to int, err error)

	// RecordRemove is called after each removal of count elements.
	RecordRemove(count int, err error)

	// RecordFree is called when a vector is freed with its live element count.
	RecordFree(elements int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPush(error)           {}
func (NoopMetricsCollector) RecordGrow(int, int, error) {}
func (NoopMetricsCollector) RecordRemove(int, error)    {}
func (NoopMetricsCollector) RecordFree(int)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PushCount      atomic.Int64
	PushErrors     atomic.Int64
	GrowCount      atomic.Int64
	GrowErrors     atomic.Int64
	SlotsAllocated atomic.Int64
	RemoveCount    atomic.Int64
	RemovedItems   atomic.Int64
	RemoveErrors   atomic.Int64
	FreeCount      atomic.Int64
	FreedItems     atomic.Int64
}

// RecordPush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPush(err error) {
	b.PushCount.Add(1)
	if err != nil {
		b.PushErrors.Add(1)
	}
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(from, to int, err error) {
	b.GrowCount.Add(1)
	if err != nil {
		b.GrowErrors.Add(1)
		return
	}
	b.SlotsAllocated.Add(int64(to - from))
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(count int, err error) {
	b.RemoveCount.Add(1)
	if err != nil {
		b.RemoveErrors.Add(1)
		return
	}
	b.RemovedItems.Add(int64(count))
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(elements int) {
	b.FreeCount.Add(1)
	b.FreedItems.Add(int64(elements))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PushCount:      b.PushCount.Load(),
		PushErrors:     b.PushErrors.Load(),
		GrowCount:      b.GrowCount.Load(),
		GrowErrors:     b.GrowErrors.Load(),
		SlotsAllocated: b.SlotsAllocated.Load(),
		RemoveCount:    b.RemoveCount.Load(),
		RemovedItems:   b.RemovedItems.Load(),
		RemoveErrors:   b.RemoveErrors.Load(),
		FreeCount:      b.FreeCount.Load(),
		FreedItems:     b.FreedItems.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PushCount      int64
	PushErrors     int64
	GrowCount      int64
	GrowErrors     int64
	SlotsAllocated int64
	RemoveCount    int64
	RemovedItems   int64
	RemoveErrors   int64
	FreeCount      int64
	FreedItems     int64
}

package zk

import (
	"log/slog"

	"github.com/zklib/zk/internal/resource"
)

// Allocator accounts for the storage regions of a vector.
//
// Reserve is called with the size of a new region before it is allocated; a
// non-nil error aborts the operation and leaves the vector unchanged. Release
// is called when a region is no longer used.
type Allocator interface {
	Reserve(bytes int64) error
	Release(bytes int64)
}

type options struct {
	allocator        Allocator
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Vector construction.
type Option func(*options)

// WithAllocator configures the allocator storage regions are reserved against.
// If nil is passed, an unlimited allocator is used.
//
// A single allocator may be shared by many vectors; it must then be safe for
// concurrent use.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// WithMemoryLimit limits the bytes this vector may reserve for storage.
// Growth that would exceed the limit fails with an *AllocationError.
// A limit <= 0 means unlimited.
//
// Example:
//
//	v, _ := zk.New[int64](zk.WithMemoryLimit(1 << 20))
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.allocator = resource.NewBudget(resource.Config{LimitBytes: bytes})
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &zk.BasicMetricsCollector{}
//	v, _ := zk.New[string](zk.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Pushes: %d, Grows: %d\n", stats.PushCount, stats.GrowCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := zk.NewJSONLogger(slog.LevelDebug)
//	v, _ := zk.New[int](zk.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.allocator == nil {
		o.allocator = resource.NewBudget(resource.Config{})
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

package zk

import (
	"iter"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/zklib/zk/internal/mem"
)

// DefaultCapacity is the number of slots allocated by New.
const DefaultCapacity = 8

// Vector is a resizable array of T backed by a single contiguous region.
//
// Capacity starts at DefaultCapacity and doubles whenever an append would
// exceed it. Removals never shrink the region.
//
// A Vector has a single owner and is not safe for concurrent use.
// After Free, every error-returning method fails with ErrFreed.
//
// The zero value is an uninitialized vector: Len and Cap report 0 and the
// first mutating call allocates DefaultCapacity slots with default options.
type Vector[T any] struct {
	data   []T   // len(data) is the capacity
	length int
	bytes  int64 // reserved for data
	freed  bool

	alloc   Allocator
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty vector with DefaultCapacity slots.
//
// If the allocator refuses the initial region, New returns nil and an
// *AllocationError.
func New[T any](optFns ...Option) (*Vector[T], error) {
	o := applyOptions(optFns)

	v := &Vector[T]{
		alloc:   o.allocator,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
	if err := v.realloc("new", DefaultCapacity); err != nil {
		return nil, err
	}
	return v, nil
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.length
}

// MemoryUsage returns the bytes currently reserved for storage.
func (v *Vector[T]) MemoryUsage() int64 {
	if v == nil {
		return 0
	}
	return v.bytes
}

// Push appends x, doubling the capacity first if the vector is full.
//
// If growth fails the vector is left unchanged and an *AllocationError is
// returned.
func (v *Vector[T]) Push(x T) error {
	if err := v.prepare("push"); err != nil {
		return err
	}

	if err := v.growTo("push", v.length+1); err != nil {
		v.metrics.RecordPush(err)
		return err
	}

	v.data[v.length] = x
	v.length++
	v.metrics.RecordPush(nil)
	return nil
}

// Insert places x at index i, shifting later elements up by one.
// i may equal Len, which appends.
func (v *Vector[T]) Insert(i int, x T) error {
	if err := v.prepare("insert"); err != nil {
		return err
	}
	if i < 0 || i > v.length {
		return &IndexError{Op: "insert", Index: i, Length: v.length}
	}

	if err := v.growTo("insert", v.length+1); err != nil {
		v.metrics.RecordPush(err)
		return err
	}

	copy(v.data[i+1:v.length+1], v.data[i:v.length])
	v.data[i] = x
	v.length++
	v.metrics.RecordPush(nil)
	return nil
}

// Get returns the element at index i.
func (v *Vector[T]) Get(i int) (T, error) {
	var zero T
	if v == nil || v.freed {
		return zero, ErrFreed
	}
	if i < 0 || i >= v.length {
		return zero, &IndexError{Op: "get", Index: i, Length: v.length}
	}
	return v.data[i], nil
}

// Set overwrites the element at index i.
func (v *Vector[T]) Set(i int, x T) error {
	if v == nil || v.freed {
		return ErrFreed
	}
	if i < 0 || i >= v.length {
		return &IndexError{Op: "set", Index: i, Length: v.length}
	}
	v.data[i] = x
	return nil
}

// Remove deletes and returns the element at index i. Later elements shift
// down by one; the capacity is unchanged.
func (v *Vector[T]) Remove(i int) (T, error) {
	var zero T
	if err := v.live(); err != nil {
		return zero, err
	}
	if i < 0 || i >= v.length {
		err := &IndexError{Op: "remove", Index: i, Length: v.length}
		v.metrics.RecordRemove(0, err)
		return zero, err
	}

	x := v.data[i]
	copy(v.data[i:v.length-1], v.data[i+1:v.length])
	v.length--
	v.data[v.length] = zero
	v.metrics.RecordRemove(1, nil)
	return x, nil
}

// Pop deletes and returns the last element.
func (v *Vector[T]) Pop() (T, error) {
	var zero T
	if err := v.live(); err != nil {
		return zero, err
	}
	if v.length == 0 {
		err := &IndexError{Op: "pop", Index: -1, Length: 0}
		v.metrics.RecordRemove(0, err)
		return zero, err
	}

	v.length--
	x := v.data[v.length]
	v.data[v.length] = zero
	v.metrics.RecordRemove(1, nil)
	return x, nil
}

// RemoveSet deletes every position contained in set in a single compacting
// pass. Surviving elements keep their relative order. If cleanup is non-nil
// it is called for each removed element in index order.
//
// If set contains a position >= Len, nothing is removed and an *IndexError
// is returned.
func (v *Vector[T]) RemoveSet(set *roaring.Bitmap, cleanup func(T)) (int, error) {
	if err := v.live(); err != nil {
		return 0, err
	}
	if set == nil || set.IsEmpty() {
		return 0, nil
	}
	if maxPos := set.Maximum(); int64(maxPos) >= int64(v.length) {
		err := &IndexError{Op: "remove", Index: int(maxPos), Length: v.length}
		v.metrics.RecordRemove(0, err)
		return 0, err
	}

	w := 0
	for r := 0; r < v.length; r++ {
		if uint64(r) <= math.MaxUint32 && set.Contains(uint32(r)) { //nolint:gosec // bounded by the first operand
			if cleanup != nil {
				cleanup(v.data[r])
			}
			continue
		}
		v.data[w] = v.data[r]
		w++
	}

	removed := v.length - w
	clear(v.data[w:v.length])
	v.length = w
	v.metrics.RecordRemove(removed, nil)
	return removed, nil
}

// Select returns the positions of all elements for which pred reports true.
// Only the first math.MaxUint32+1 positions are considered.
func (v *Vector[T]) Select(pred func(T) bool) *roaring.Bitmap {
	bm := roaring.New()
	if v == nil || v.freed || pred == nil {
		return bm
	}

	for i := 0; i < v.length; i++ {
		if uint64(i) > math.MaxUint32 {
			break
		}
		if pred(v.data[i]) {
			bm.Add(uint32(i)) //nolint:gosec // bounded above
		}
	}
	return bm
}

// Clear removes all elements, keeping the capacity. If cleanup is non-nil it
// is called once per element in index order first.
func (v *Vector[T]) Clear(cleanup func(T)) error {
	if err := v.live(); err != nil {
		return err
	}

	n := v.length
	if cleanup != nil {
		for i := 0; i < n; i++ {
			cleanup(v.data[i])
		}
	}
	clear(v.data[:n])
	v.length = 0
	v.metrics.RecordRemove(n, nil)
	return nil
}

// Reserve ensures the capacity is at least n, doubling as many times as
// needed. It never shrinks the vector.
func (v *Vector[T]) Reserve(n int) error {
	if err := v.prepare("reserve"); err != nil {
		return err
	}
	return v.growTo("reserve", n)
}

// Values returns a copy of the live elements.
func (v *Vector[T]) Values() []T {
	if v == nil || v.freed {
		return nil
	}
	return slices.Clone(v.data[:v.length])
}

// All returns an iterator over index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v == nil || v.freed {
			return
		}
		for i := 0; i < v.length; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Free destroys the vector. If cleanup is non-nil it is called exactly once
// per live element, in index order, before the storage is released.
//
// The vector must not be used afterwards; doing so returns ErrFreed.
func (v *Vector[T]) Free(cleanup func(T)) error {
	if v == nil || v.freed {
		return ErrFreed
	}
	v.defaults()

	n, capacity := v.length, len(v.data)
	if cleanup != nil {
		for i := 0; i < n; i++ {
			cleanup(v.data[i])
		}
	}

	v.alloc.Release(v.bytes)
	v.data = nil
	v.length = 0
	v.bytes = 0
	v.freed = true

	v.logger.WithCapacity(capacity).LogFree(n, cleanup != nil)
	v.metrics.RecordFree(n)
	return nil
}

// prepare is live plus the initial allocation of a zero Vector. Only
// operations that may store an element need it.
func (v *Vector[T]) prepare(op string) error {
	if err := v.live(); err != nil {
		return err
	}
	if v.data == nil {
		return v.realloc(op, DefaultCapacity)
	}
	return nil
}

// live rejects freed vectors and fills in default collaborators.
func (v *Vector[T]) live() error {
	if v == nil || v.freed {
		return ErrFreed
	}
	v.defaults()
	return nil
}

func (v *Vector[T]) defaults() {
	if v.alloc != nil {
		return
	}
	o := applyOptions(nil)
	v.alloc = o.allocator
	v.logger = o.logger
	v.metrics = o.metricsCollector
}

// growTo doubles the capacity until it holds at least need slots.
func (v *Vector[T]) growTo(op string, need int) error {
	from := len(v.data)
	if need <= from {
		return nil
	}

	to := from
	for to < need {
		if to > math.MaxInt/2 {
			err := &AllocationError{Op: op, Slots: need, cause: mem.ErrSizeOverflow}
			v.logger.LogAllocFailure(op, need, 0, err.cause)
			v.metrics.RecordGrow(from, need, err)
			return err
		}
		to *= 2
	}

	err := v.realloc(op, to)
	v.metrics.RecordGrow(from, to, err)
	if err != nil {
		return err
	}
	v.logger.WithLength(v.length).LogGrow(from, to, v.bytes)
	return nil
}

// realloc moves the live elements into a fresh region of the given size.
// The new region is reserved before the old one is released; on failure
// nothing changes.
func (v *Vector[T]) realloc(op string, slots int) error {
	bytes, err := mem.RegionBytes[T](slots)
	if err != nil {
		v.logger.LogAllocFailure(op, slots, 0, err)
		return &AllocationError{Op: op, Slots: slots, cause: err}
	}
	if err := v.alloc.Reserve(bytes); err != nil {
		v.logger.LogAllocFailure(op, slots, bytes, err)
		return &AllocationError{Op: op, Slots: slots, Bytes: bytes, cause: err}
	}

	data, err := mem.AllocSlots[T](slots)
	if err != nil {
		v.alloc.Release(bytes)
		v.logger.LogAllocFailure(op, slots, bytes, err)
		return &AllocationError{Op: op, Slots: slots, Bytes: bytes, cause: err}
	}
	copy(data, v.data[:v.length])

	v.alloc.Release(v.bytes)
	v.data = data
	v.bytes = bytes
	return nil
}

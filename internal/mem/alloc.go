// Package mem provides slot sizing and allocation utilities.
package mem

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"runtime"
	"unsafe"
)

var (
	// ErrSizeOverflow is returned when a region size does not fit in an int64.
	ErrSizeOverflow = errors.New("mem: region size overflow")

	// ErrRegionTooLarge is returned when a region exceeds MaxRegionBytes or
	// the runtime refuses to allocate it.
	ErrRegionTooLarge = errors.New("mem: region too large")
)

// MaxRegionBytes is the largest region AllocSlots will attempt. It is below
// the runtime's per-allocation limit (48-bit heap addresses on 64-bit
// platforms).
var MaxRegionBytes = maxRegionBytes()

func maxRegionBytes() int64 {
	if bits.UintSize == 32 {
		return math.MaxInt32
	}
	return 1 << 47
}

// SlotSize returns the size in bytes of a single slot holding a T.
func SlotSize[T any]() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero)) //nolint:gosec // Sizeof is always small and non-negative
}

// RegionBytes returns the number of bytes needed for a region of the given
// number of slots.
func RegionBytes[T any](slots int) (int64, error) {
	if slots < 0 {
		return 0, ErrSizeOverflow
	}
	size := SlotSize[T]()
	if size == 0 || slots == 0 {
		return 0, nil
	}
	if int64(slots) > math.MaxInt64/size {
		return 0, ErrSizeOverflow
	}
	n := int64(slots) * size
	if n > MaxRegionBytes {
		return 0, fmt.Errorf("%w: %d bytes, limit %d", ErrRegionTooLarge, n, MaxRegionBytes)
	}
	return n, nil
}

// AllocSlots allocates a zeroed region of the given number of slots.
// The returned slice has len == cap == slots.
//
// Regions the runtime cannot allocate are reported as errors instead of
// panicking.
func AllocSlots[T any](slots int) (buf []T, err error) {
	if slots <= 0 {
		return nil, nil
	}
	if _, err := RegionBytes[T](slots); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buf, err = nil, fmt.Errorf("%w: %v", ErrRegionTooLarge, re)
		}
	}()
	return make([]T, slots), nil
}

package zk

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is returned when storage for the vector cannot be allocated.
	ErrAllocation = errors.New("allocation failed")

	// ErrIndexOutOfRange is returned when an index is outside the live elements.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrFreed is returned when a vector is used after Free (or is nil).
	ErrFreed = errors.New("use of freed vector")
)

// AllocationError reports a failed storage allocation.
//
// The vector is left unchanged. The allocator's error (if any) can be
// accessed via errors.Unwrap.
type AllocationError struct {
	Op    string
	Slots int
	Bytes int64
	cause error
}

func (e *AllocationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s of %d slots (%d bytes): %v", e.Op, ErrAllocation, e.Slots, e.Bytes, e.cause)
	}
	return fmt.Sprintf("%s: %s of %d slots (%d bytes)", e.Op, ErrAllocation, e.Slots, e.Bytes)
}

func (e *AllocationError) Unwrap() error { return e.cause }

// Is reports whether target is ErrAllocation.
func (e *AllocationError) Is(target error) bool { return target == ErrAllocation }

// IndexError reports an access outside [0, Length).
type IndexError struct {
	Op     string
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s: index %d, length %d", e.Op, ErrIndexOutOfRange, e.Index, e.Length)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

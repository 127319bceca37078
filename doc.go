// Package zk provides a generic dynamic vector for Go.
//
// A Vector stores elements of type T in one contiguous region. It starts with
// DefaultCapacity (8) slots and doubles its capacity whenever an append would
// overflow it, so a sequence of N appends costs O(N) in total.
//
// # Quick Start
//
//	v, err := zk.New[string]()
//	if err != nil {
//	    return err
//	}
//	defer v.Free(nil)
//
//	_ = v.Push("a")
//	_ = v.Push("b")
//	fmt.Println(v.Len(), v.Cap()) // 2 8
//
// # Element Lifecycle
//
// Free and Clear accept an optional cleanup callback that is called once per
// live element in index order:
//
//	v.Free(func(f *os.File) { f.Close() })
//
// Remove and Pop hand the element back to the caller instead.
//
// # Memory Accounting
//
// Every storage region is reserved against an Allocator before it is
// allocated. When the allocator refuses, the operation returns an
// *AllocationError and the vector is left exactly as it was:
//
//	v, _ := zk.New[int64](zk.WithMemoryLimit(100))
//	for i := 0; i < 9; i++ {
//	    if err := v.Push(int64(i)); errors.Is(err, zk.ErrAllocation) {
//	        // v.Len() == 8, v.Cap() == 8
//	    }
//	}
//
// # Errors
//
//   - ErrAllocation / *AllocationError: storage could not be reserved
//   - ErrIndexOutOfRange / *IndexError: index outside [0, Len)
//   - ErrFreed: the vector was used after Free
//
// # Concurrency
//
// A Vector has exactly one owner and does no locking. Allocators, loggers and
// metrics collectors may be shared between vectors.
package zk

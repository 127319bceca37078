// Package testutil provides testing utilities for zk.
//
// This package is intended for use in tests and benchmarks only.
//
// # Fault Injection
//
//	a := testutil.NewFailingAllocator()
//	v, _ := zk.New[int](zk.WithAllocator(a))
//	a.FailAfter(0) // every following reservation fails
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.Ints(100, 1000)
package testutil

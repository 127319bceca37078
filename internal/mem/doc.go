// Package mem provides slot sizing and allocation utilities.
//
// # Slot Regions
//
// A slot region is the contiguous backing array of a vector. Its size in
// bytes is slots × sizeof(T). RegionBytes reports that size and fails with
// ErrSizeOverflow instead of wrapping around.
package mem

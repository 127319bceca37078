package mem

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotSize(t *testing.T) {
	assert.Equal(t, int64(8), SlotSize[int64]())
	assert.Equal(t, int64(4), SlotSize[float32]())
	assert.Equal(t, int64(1), SlotSize[byte]())
	assert.Equal(t, int64(0), SlotSize[struct{}]())
}

func TestRegionBytes(t *testing.T) {
	tests := []struct {
		slots int
		want  int64
	}{
		{0, 0},
		{1, 8},
		{8, 64},
		{16, 128},
		{1024, 8192},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("slots=%d", tt.slots), func(t *testing.T) {
			got, err := RegionBytes[int64](tt.slots)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegionBytes_Overflow(t *testing.T) {
	_, err := RegionBytes[int64](math.MaxInt)
	assert.ErrorIs(t, err, ErrSizeOverflow)

	_, err = RegionBytes[int64](-1)
	assert.ErrorIs(t, err, ErrSizeOverflow)

	// Zero-sized slots never overflow.
	n, err := RegionBytes[struct{}](math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestAllocSlots(t *testing.T) {
	sizes := []int{1, 8, 16, 100}

	for _, size := range sizes {
		buf, err := AllocSlots[string](size)
		require.NoError(t, err)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf))
		for _, s := range buf {
			assert.Empty(t, s)
		}
	}

	for _, n := range []int{0, -1} {
		buf, err := AllocSlots[int](n)
		require.NoError(t, err)
		assert.Nil(t, buf)
	}
}

func TestRegionBytes_TooLarge(t *testing.T) {
	// Fits in an int64 but no runtime can hand it out.
	_, err := RegionBytes[int64](1 << 46)
	assert.ErrorIs(t, err, ErrRegionTooLarge)
	assert.NotErrorIs(t, err, ErrSizeOverflow)

	n, err := RegionBytes[byte](int(MaxRegionBytes))
	require.NoError(t, err)
	assert.Equal(t, MaxRegionBytes, n)
}

func TestAllocSlots_TooLarge(t *testing.T) {
	tests := []struct {
		name  string
		slots int
		want  error
	}{
		{"PastRuntimeLimit", 1 << 46, ErrRegionTooLarge},
		{"Int64Overflow", math.MaxInt, ErrSizeOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				buf []int64
				err error
			)
			require.NotPanics(t, func() { buf, err = AllocSlots[int64](tt.slots) })
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, buf)
		})
	}
}

func BenchmarkAllocSlots(b *testing.B) {
	sizes := []int{8, 64, 1024, 4096}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = AllocSlots[int64](size)
			}
		})
	}
}

package resource

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// regionSizes are the byte sizes of an int64 vector at capacities 8, 16, 32.
var regionSizes = []int64{64, 128, 256}

// relocate mimics a vector growing from one region to the next: the new
// region is reserved while the old one is still held.
func relocate(b *Budget, from, to int64) error {
	if err := b.Reserve(to); err != nil {
		return err
	}
	b.Release(from)
	return nil
}

func TestBudget_Relocation(t *testing.T) {
	tests := []struct {
		name      string
		limit     int64
		wantCap   int64 // bytes of the last region that fit
		wantPeak  int64
		wantError bool
	}{
		{"Unlimited", 0, 256, 384, false},
		{"FitsAllGrowth", 384, 256, 384, false},
		{"StopsBeforeLast", 383, 128, 192, true},
		{"StopsAfterFirst", 191, 64, 64, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBudget(Config{LimitBytes: tt.limit})
			require.NoError(t, b.Reserve(regionSizes[0]))

			held := regionSizes[0]
			var err error
			for _, next := range regionSizes[1:] {
				if err = relocate(b, held, next); err != nil {
					break
				}
				held = next
			}

			if tt.wantError {
				assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCap, held)
			assert.Equal(t, held, b.InUse())
			assert.Equal(t, tt.wantPeak, b.Peak())
			assert.Equal(t, tt.limit, b.Limit())

			b.Release(held)
			assert.Equal(t, int64(0), b.InUse())
		})
	}
}

func TestBudget_FailedReserveLeavesUsage(t *testing.T) {
	b := NewBudget(Config{LimitBytes: 100})
	require.NoError(t, b.Reserve(64))

	assert.ErrorIs(t, b.Reserve(128), ErrMemoryLimitExceeded)
	assert.Equal(t, int64(64), b.InUse())
	assert.Equal(t, int64(64), b.Peak())

	// Freed capacity becomes available again.
	b.Release(64)
	require.NoError(t, b.Reserve(100))
	assert.Equal(t, int64(100), b.Peak())
}

func TestBudget_Unlimited(t *testing.T) {
	b := NewBudget(Config{})
	assert.Equal(t, int64(0), b.Limit())

	require.NoError(t, b.Reserve(1<<40))
	assert.Equal(t, int64(1<<40), b.InUse())

	b.Release(1 << 39)
	assert.Equal(t, int64(1<<39), b.InUse())
	assert.Equal(t, int64(1<<40), b.Peak())
}

func TestBudget_NegativeLimitIsUnlimited(t *testing.T) {
	b := NewBudget(Config{LimitBytes: -5})
	assert.Equal(t, int64(0), b.Limit())
	assert.NoError(t, b.Reserve(1000))
}

func TestBudget_NonPositiveAmounts(t *testing.T) {
	b := NewBudget(Config{LimitBytes: 10})

	require.NoError(t, b.Reserve(0))
	require.NoError(t, b.Reserve(-3))
	b.Release(0)
	b.Release(-3)
	assert.Equal(t, int64(0), b.InUse())
}

func TestBudget_NilChecks(t *testing.T) {
	var b *Budget
	assert.NoError(t, b.Reserve(10))
	b.Release(10) // Should not panic
	assert.Equal(t, int64(0), b.InUse())
	assert.Equal(t, int64(0), b.Peak())
	assert.Equal(t, int64(0), b.Limit())
}

func TestBudget_Concurrent(t *testing.T) {
	b := NewBudget(Config{LimitBytes: 1000})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if err := b.Reserve(10); err == nil {
					b.Release(10)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(0), b.InUse())
	assert.LessOrEqual(t, b.Peak(), int64(1000))
}

package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadings(t *testing.T) {
	rng := NewRNG(4711)

	rows := rng.Readings(8, 12)

	assert.Len(t, rows, 8)
	for _, row := range rows {
		assert.Len(t, row, 12)
		for i := 0; i < len(row); i++ {
			assert.Contains(t, "01", string(row[i]))
		}
	}
}

func TestDistinctReadings(t *testing.T) {
	rng := NewRNG(4711)

	rows := rng.DistinctReadings(64, 6)

	assert.Len(t, rows, 64)
	seen := make(map[string]bool)
	for _, row := range rows {
		assert.Len(t, row, 6)
		assert.False(t, seen[row], "duplicate reading %s", row)
		seen[row] = true
	}

	assert.Panics(t, func() { rng.DistinctReadings(5, 2) })
}

func TestBiasedReadings(t *testing.T) {
	rng := NewRNG(4711)

	ones := rng.BiasedReadings(4, 8, 1.0)
	zeros := rng.BiasedReadings(4, 8, 0.0)

	for i := range ones {
		assert.Equal(t, "11111111", ones[i])
		assert.Equal(t, "00000000", zeros[i])
	}
}

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(42)
	first := rng.Readings(4, 16)
	rng.Reset()
	second := rng.Readings(4, 16)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(42), rng.Seed())
}

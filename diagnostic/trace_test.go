package diagnostic

import (
	"testing"

	"github.com/dwhensley/subdiag/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	m := mustMatrix(t, testutil.ExampleReadings)

	exp, err := Trace(m, CO2Scrubber)
	require.NoError(t, err)

	assert.Equal(t, uint64(10), exp.Value)
	assert.Equal(t, 11, exp.Row)
	require.Len(t, exp.Steps, 3)

	first := exp.Steps[0]
	assert.Equal(t, 0, first.Column)
	assert.Equal(t, 12, first.Rows)
	assert.Equal(t, 7, first.Ones)
	assert.True(t, first.MoreOnes)
	assert.Equal(t, uint8(0), first.Kept)
	assert.Equal(t, []uint32{0, 5, 6, 10, 11}, first.Survivors.ToArray())

	last := exp.Steps[len(exp.Steps)-1]
	assert.Equal(t, []uint32{11}, last.Survivors.ToArray())

	assert.Equal(t, []uint32{1, 2, 3, 4, 7, 8, 9}, exp.Eliminated(0).ToArray())
	assert.Equal(t, []uint32{0, 6, 10}, exp.Eliminated(1).ToArray())
	assert.True(t, exp.Eliminated(99).IsEmpty())
}

func TestTrace_OxygenMatchesRate(t *testing.T) {
	rng := testutil.NewRNG(7)
	m := mustMatrix(t, rng.DistinctReadings(200, 10))

	want, err := Rate(m, OxygenGenerator)
	require.NoError(t, err)

	exp, err := Trace(m, OxygenGenerator)
	require.NoError(t, err)
	assert.Equal(t, want, exp.Value)
	assert.Equal(t, exp.Iterations, len(exp.Steps))

	// Survivor sets shrink monotonically.
	for i := 1; i < len(exp.Steps); i++ {
		prev, cur := exp.Steps[i-1].Survivors, exp.Steps[i].Survivors
		assert.True(t, cur.GetCardinality() <= prev.GetCardinality())
		assert.Equal(t, cur.GetCardinality(), cur.AndCardinality(prev))
	}
}

func TestTrace_NotConverged(t *testing.T) {
	m := mustMatrix(t, []string{"11", "11"})

	exp, err := Trace(m, CO2Scrubber)
	require.ErrorIs(t, err, ErrNotConverged)
	require.NotNil(t, exp)
	require.Len(t, exp.Steps, 2)
	for _, s := range exp.Steps {
		assert.True(t, s.Unanimous)
		assert.Equal(t, uint64(2), s.Survivors.GetCardinality())
	}
}

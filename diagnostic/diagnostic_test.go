package diagnostic

import (
	"testing"

	"github.com/dwhensley/subdiag/bitmatrix"
	"github.com/dwhensley/subdiag/bitvec"
	"github.com/dwhensley/subdiag/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatrix(t *testing.T, readings []string) *bitmatrix.Matrix {
	t.Helper()
	m, err := bitmatrix.New(readings)
	require.NoError(t, err)
	return m
}

func TestPowerConsumption(t *testing.T) {
	m := mustMatrix(t, testutil.ExampleReadings)

	for _, mm := range []*bitmatrix.Matrix{m, m.ColMajor()} {
		p := PowerConsumption(mm)
		assert.Equal(t, uint64(22), p.Gamma)
		assert.Equal(t, uint64(9), p.Epsilon)
		assert.Equal(t, uint64(198), p.Product())
		assert.Equal(t, bitvec.Vector{1, 0, 1, 1, 0}, p.GammaBits)
		assert.Equal(t, bitvec.Vector{0, 1, 0, 0, 1}, p.EpsilonBits)
	}
}

func TestMajorityBits_HalfSplitResolvesToZero(t *testing.T) {
	m := mustMatrix(t, []string{"10", "01", "11", "00"})
	assert.Equal(t, bitvec.Vector{0, 0}, MajorityBits(m))

	m = mustMatrix(t, []string{"10", "11", "10"})
	assert.Equal(t, bitvec.Vector{1, 0}, MajorityBits(m))
}

func TestComplementLaw(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for i := 0; i < 50; i++ {
		m := mustMatrix(t, rng.Readings(1+rng.Intn(30), 1+rng.Intn(16)))
		gamma, epsilon := GammaEpsilon(m)
		require.Equal(t, m.Cols(), gamma.Len())
		for c := range gamma {
			assert.Equal(t, uint8(1), gamma[c]^epsilon[c])
		}
	}
}

func TestMoreOnes(t *testing.T) {
	tests := []struct {
		ones, rows int
		want       bool
	}{
		{2, 4, true}, // even split favors ones
		{1, 4, false},
		{3, 4, true},
		{1, 2, true},
		{0, 2, false},
		{1, 3, false}, // odd: strictly more than rows/2
		{2, 3, true},
		{3, 7, false},
		{4, 7, true},
		{1, 1, true},
		{0, 1, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MoreOnes(tt.ones, tt.rows), "ones=%d rows=%d", tt.ones, tt.rows)
	}
}

func TestKeepBit(t *testing.T) {
	assert.Equal(t, uint8(1), KeepBit(OxygenGenerator, true))
	assert.Equal(t, uint8(0), KeepBit(OxygenGenerator, false))
	assert.Equal(t, uint8(0), KeepBit(CO2Scrubber, true))
	assert.Equal(t, uint8(1), KeepBit(CO2Scrubber, false))
}

func TestFilterColumn_TieBreak(t *testing.T) {
	// Column 0 splits 2/2.
	m := mustMatrix(t, []string{"1100", "1011", "0110", "0001"})

	oxy, sel := FilterColumn(m, 0, OxygenGenerator)
	assert.True(t, sel.MoreOnes)
	assert.Equal(t, uint8(1), sel.Kept)
	assert.Equal(t, []int{0, 1}, sel.Indices)
	assert.Equal(t, []string{"1100", "1011"}, oxy.Strings())

	co2, sel := FilterColumn(m, 0, CO2Scrubber)
	assert.True(t, sel.MoreOnes)
	assert.Equal(t, uint8(0), sel.Kept)
	assert.Equal(t, []int{2, 3}, sel.Indices)
	assert.Equal(t, []string{"0110", "0001"}, co2.Strings())

	assert.Equal(t, 4, m.Rows(), "filtering must not mutate the input")
}

func TestFilterColumn_Unanimous(t *testing.T) {
	m := mustMatrix(t, []string{"00", "01"})

	out, sel := FilterColumn(m, 0, CO2Scrubber)
	assert.True(t, sel.Unanimous)
	assert.Equal(t, []int{0, 1}, sel.Indices)
	assert.True(t, out.Equal(m))
}

func TestRate(t *testing.T) {
	m := mustMatrix(t, testutil.ExampleReadings)

	oxygen, err := Rate(m, OxygenGenerator)
	require.NoError(t, err)
	assert.Equal(t, uint64(23), oxygen)

	co2, err := Rate(m, CO2Scrubber)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), co2)

	ls, err := LifeSupport(m.ColMajor())
	require.NoError(t, err)
	assert.Equal(t, LifeSupportReport{OxygenGenerator: 23, CO2Scrubber: 10}, ls)
	assert.Equal(t, uint64(230), ls.Product())
}

func TestEvaluate(t *testing.T) {
	m := mustMatrix(t, testutil.ExampleReadings)

	out, err := Evaluate(m, OxygenGenerator)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Row)
	assert.Equal(t, "10111", out.Reading.String())
	assert.Equal(t, 5, out.Iterations)

	out, err = Evaluate(m, CO2Scrubber)
	require.NoError(t, err)
	assert.Equal(t, 11, out.Row)
	assert.Equal(t, "01010", out.Reading.String())
	assert.Equal(t, 3, out.Iterations, "stops as soon as one reading remains")
}

func TestRate_TieBreakEndToEnd(t *testing.T) {
	m := mustMatrix(t, []string{"1100", "1011", "0110", "0001"})

	oxygen, err := Rate(m, OxygenGenerator)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b1100), oxygen)

	co2, err := Rate(m, CO2Scrubber)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b0001), co2)
}

func TestRate_SingleReading(t *testing.T) {
	m := mustMatrix(t, []string{"0110"})

	out, err := Evaluate(m, CO2Scrubber)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), out.Value)
	assert.Equal(t, 0, out.Iterations)
}

func TestRate_NotConverged(t *testing.T) {
	m := mustMatrix(t, []string{"101", "101", "011"})

	_, err := Rate(m, OxygenGenerator)
	require.ErrorIs(t, err, ErrNotConverged)

	var ce *ConvergenceError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, OxygenGenerator, ce.Rating)
	assert.Equal(t, 2, ce.Remaining)
	assert.Equal(t, 3, ce.Columns)
	assert.Contains(t, err.Error(), "oxygen-generator")
}

func TestRate_ConvergesOnDistinctReadings(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for i := 0; i < 200; i++ {
		width := 1 + rng.Intn(10)
		num := 1 + rng.Intn(1<<width)
		readings := rng.DistinctReadings(num, width)
		m := mustMatrix(t, readings)

		for _, r := range []Rating{OxygenGenerator, CO2Scrubber} {
			out, err := Evaluate(m, r)
			require.NoError(t, err, "rating %s on %v", r, readings)
			assert.LessOrEqual(t, out.Iterations, width)
			assert.Equal(t, readings[out.Row], out.Reading.String())
		}
	}
}

func TestParseRating(t *testing.T) {
	for _, s := range []string{"oxygen", "O2", " oxygen-generator "} {
		r, err := ParseRating(s)
		require.NoError(t, err)
		assert.Equal(t, OxygenGenerator, r)
	}
	for _, s := range []string{"co2", "CO2-Scrubber", "scrubber"} {
		r, err := ParseRating(s)
		require.NoError(t, err)
		assert.Equal(t, CO2Scrubber, r)
	}

	_, err := ParseRating("nitrogen")
	assert.ErrorIs(t, err, ErrUnknownRating)
	assert.Equal(t, "Rating(9)", Rating(9).String())
}

package diagnostic

import (
	"fmt"
	"strings"

	"github.com/dwhensley/subdiag/bitmatrix"
	"github.com/dwhensley/subdiag/bitvec"
)

// Rating selects the filter policy.
type Rating uint8

const (
	// OxygenGenerator keeps readings matching the majority bit.
	OxygenGenerator Rating = iota
	// CO2Scrubber keeps readings matching the minority bit.
	CO2Scrubber
)

func (r Rating) String() string {
	switch r {
	case OxygenGenerator:
		return "oxygen-generator"
	case CO2Scrubber:
		return "co2-scrubber"
	default:
		return fmt.Sprintf("Rating(%d)", uint8(r))
	}
}

// ParseRating parses a rating name such as "oxygen" or "co2".
func ParseRating(s string) (Rating, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oxygen", "oxygen-generator", "o2":
		return OxygenGenerator, nil
	case "co2", "co2-scrubber", "scrubber":
		return CO2Scrubber, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRating, s)
	}
}

// MoreOnes reports whether 1 counts as the majority bit among rows readings with ones set.
// Even row counts use >=, odd row counts use >.
func MoreOnes(ones, rows int) bool {
	if rows%2 == 0 {
		return ones >= rows/2
	}
	return ones > rows/2
}

// KeepBit returns the bit value a rating keeps at a column.
func KeepBit(r Rating, moreOnes bool) uint8 {
	keepOnes := moreOnes
	if r == CO2Scrubber {
		keepOnes = !moreOnes
	}
	if keepOnes {
		return 1
	}
	return 0
}

// Selection is the outcome of testing one column of a working set.
type Selection struct {
	Column   int
	Rows     int
	Ones     int
	MoreOnes bool
	Kept     uint8
	// Unanimous is set when no reading carries the kept bit; the working set is unchanged.
	Unanimous bool
	// Indices are the retained rows, as indices into the tested matrix.
	Indices []int
}

// FilterColumn applies one filter step at column c and returns the new row-major working set.
func FilterColumn(m *bitmatrix.Matrix, c int, r Rating) (*bitmatrix.Matrix, Selection) {
	col := m.ColMajor().Column(c)
	ones := col.Ones()
	more := MoreOnes(ones, len(col))
	keep := KeepBit(r, more)

	sel := Selection{
		Column:   c,
		Rows:     len(col),
		Ones:     ones,
		MoreOnes: more,
		Kept:     keep,
	}
	for ridx, v := range col {
		if v == keep {
			sel.Indices = append(sel.Indices, ridx)
		}
	}

	if len(sel.Indices) == 0 {
		sel.Unanimous = true
		sel.Indices = make([]int, len(col))
		for i := range sel.Indices {
			sel.Indices[i] = i
		}
		return m.RowMajor(), sel
	}

	// Indices is non-empty, so SelectRows cannot fail.
	filtered, _ := m.SelectRows(sel.Indices)
	return filtered, sel
}

// Outcome is the reading selected by the life-support filter.
type Outcome struct {
	Rating Rating
	// Row is the index of the selected reading in the original matrix.
	Row     int
	Reading bitvec.Vector
	Value   uint64
	// Iterations is the number of columns tested before one reading remained.
	Iterations int
}

// filter runs the life-support filter. ids tracks the original row index of every survivor;
// onStep, if non-nil, observes every iteration.
func filter(m *bitmatrix.Matrix, r Rating, onStep func(Selection, []int)) (Outcome, error) {
	work := m.RowMajor()
	ids := make([]int, work.Rows())
	for i := range ids {
		ids[i] = i
	}

	steps := 0
	for c := 0; work.Rows() > 1 && c < work.Cols(); c++ {
		var sel Selection
		work, sel = FilterColumn(work, c, r)
		steps++

		next := make([]int, len(sel.Indices))
		for i, idx := range sel.Indices {
			next[i] = ids[idx]
		}
		ids = next

		if onStep != nil {
			onStep(sel, ids)
		}
	}

	if work.Rows() != 1 {
		return Outcome{Rating: r, Iterations: steps},
			&ConvergenceError{Rating: r, Remaining: work.Rows(), Columns: work.Cols()}
	}

	reading := work.Row(0)
	return Outcome{
		Rating:     r,
		Row:        ids[0],
		Reading:    reading,
		Value:      reading.Uint64(),
		Iterations: steps,
	}, nil
}

// Evaluate runs the filter for r and returns the selected reading.
func Evaluate(m *bitmatrix.Matrix, r Rating) (Outcome, error) {
	return filter(m, r, nil)
}

// Rate runs the filter for r and decodes the surviving reading.
func Rate(m *bitmatrix.Matrix, r Rating) (uint64, error) {
	out, err := filter(m, r, nil)
	if err != nil {
		return 0, err
	}
	return out.Value, nil
}

// LifeSupportReport holds both life-support ratings.
type LifeSupportReport struct {
	OxygenGenerator uint64
	CO2Scrubber     uint64
}

// Product returns oxygen × CO2.
func (l LifeSupportReport) Product() uint64 {
	return l.OxygenGenerator * l.CO2Scrubber
}

// LifeSupport computes both ratings sequentially.
func LifeSupport(m *bitmatrix.Matrix) (LifeSupportReport, error) {
	oxygen, err := Rate(m, OxygenGenerator)
	if err != nil {
		return LifeSupportReport{}, err
	}
	co2, err := Rate(m, CO2Scrubber)
	if err != nil {
		return LifeSupportReport{}, err
	}
	return LifeSupportReport{OxygenGenerator: oxygen, CO2Scrubber: co2}, nil
}

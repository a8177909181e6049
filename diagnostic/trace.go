package diagnostic

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/dwhensley/subdiag/bitmatrix"
)

// Step records one iteration of the life-support filter.
type Step struct {
	Selection
	// Survivors holds the original row ids still in the working set after this step.
	Survivors *roaring.Bitmap
}

// Explanation is a full record of one filter run.
type Explanation struct {
	Outcome
	Steps []Step
}

// Trace runs the filter for r and records every step.
// On a ConvergenceError the partial explanation is returned alongside the error.
func Trace(m *bitmatrix.Matrix, r Rating) (*Explanation, error) {
	exp := &Explanation{}
	out, err := filter(m, r, func(sel Selection, ids []int) {
		survivors := roaring.New()
		for _, id := range ids {
			survivors.Add(uint32(id))
		}
		exp.Steps = append(exp.Steps, Step{Selection: sel, Survivors: survivors})
	})
	exp.Outcome = out
	return exp, err
}

// Eliminated returns the original row ids removed at step i.
func (e *Explanation) Eliminated(i int) *roaring.Bitmap {
	if i < 0 || i >= len(e.Steps) {
		return roaring.New()
	}
	before := e.initial()
	if i > 0 {
		before = e.Steps[i-1].Survivors
	}
	return roaring.AndNot(before, e.Steps[i].Survivors)
}

func (e *Explanation) initial() *roaring.Bitmap {
	all := roaring.New()
	if len(e.Steps) > 0 {
		all.AddRange(0, uint64(e.Steps[0].Rows))
	}
	return all
}

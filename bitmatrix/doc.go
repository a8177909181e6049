// Package bitmatrix provides an immutable 2-D bit matrix with two explicit linear layouts.
//
// A Matrix stores rows*cols bits in a single contiguous []uint8 (one bit per byte, value 0 or 1).
// The layout tag says how that slice is ordered:
//
//	RowMajor: data[r*cols + c]   (one reading after another)
//	ColMajor: data[c*rows + r]   (all readings' bit 0, then all readings' bit 1, ...)
//
// Row-major is the natural form for extracting whole readings; column-major turns a per-column
// scan into a contiguous slice walk. Conversions never mutate the receiver and never share
// backing arrays:
//
//	m, err := bitmatrix.New([]string{"00100", "11110", "10110"})
//	cm := m.ColMajor()    // new value, same Rows()/Cols()
//	rm := cm.RowMajor()   // rm.Equal(m) == true
//
// The dual representation is deliberately explicit rather than a stride view, so every
// conversion is a visible allocation.
package bitmatrix

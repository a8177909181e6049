package bitmatrix

import (
	"fmt"

	"github.com/dwhensley/subdiag/bitvec"
)

// Layout is the linear storage order of a Matrix.
type Layout uint8

const (
	// RowMajor stores readings one after another: data[r*cols+c].
	RowMajor Layout = iota
	// ColMajor stores columns one after another: data[c*rows+r].
	ColMajor
)

func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// Matrix is an immutable rows×cols matrix of bits.
//
// Invariant: len(data) == rows*cols and every element is 0 or 1.
// rows and cols never change across a layout conversion.
type Matrix struct {
	data   []uint8
	rows   int
	cols   int
	layout Layout
}

// New builds a row-major Matrix from equal-width bit strings.
//
// The width is taken from the first reading. It fails with *MalformedInputError on any byte
// other than '0'/'1', with *WidthError on a reading of a different width, and with ErrEmpty
// when there is nothing to build.
func New(readings []string) (*Matrix, error) {
	if len(readings) == 0 || len(readings[0]) == 0 {
		return nil, ErrEmpty
	}

	rows := len(readings)
	cols := len(readings[0])
	data := make([]uint8, 0, rows*cols)

	for r, reading := range readings {
		if len(reading) != cols {
			return nil, &WidthError{Row: r, Expected: cols, Actual: len(reading)}
		}
		for c := 0; c < cols; c++ {
			switch reading[c] {
			case '0':
				data = append(data, 0)
			case '1':
				data = append(data, 1)
			default:
				return nil, &MalformedInputError{Row: r, Col: c, Char: reading[c]}
			}
		}
	}

	return &Matrix{data: data, rows: rows, cols: cols, layout: RowMajor}, nil
}

// FromBits builds a Matrix from already-decoded bits in the given layout.
// The bits are copied.
func FromBits(rows, cols int, layout Layout, bits []uint8) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmpty
	}
	if len(bits) != rows*cols {
		return nil, fmt.Errorf("%w: have %d, want %d×%d", ErrShape, len(bits), rows, cols)
	}
	if layout != RowMajor && layout != ColMajor {
		return nil, fmt.Errorf("bitmatrix: unknown layout %d", uint8(layout))
	}

	data := make([]uint8, len(bits))
	for i, b := range bits {
		if b > 1 {
			r, c := i/cols, i%cols
			if layout == ColMajor {
				r, c = i%rows, i/rows
			}
			return nil, &MalformedInputError{Row: r, Col: c, Char: '0' + b}
		}
		data[i] = b
	}

	return &Matrix{data: data, rows: rows, cols: cols, layout: layout}, nil
}

// Rows returns the number of readings.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the reading width in bits.
func (m *Matrix) Cols() int { return m.cols }

// Layout returns the current storage order.
func (m *Matrix) Layout() Layout { return m.layout }

// RowMajor returns the matrix in row-major order.
// If m is already row-major the result is a plain copy.
func (m *Matrix) RowMajor() *Matrix {
	if m.layout == RowMajor {
		return m.clone()
	}

	data := make([]uint8, 0, len(m.data))
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			data = append(data, m.data[c*m.rows+r])
		}
	}
	return &Matrix{data: data, rows: m.rows, cols: m.cols, layout: RowMajor}
}

// ColMajor returns the matrix in column-major order.
// If m is already column-major the result is a plain copy.
func (m *Matrix) ColMajor() *Matrix {
	if m.layout == ColMajor {
		return m.clone()
	}

	data := make([]uint8, 0, len(m.data))
	for c := 0; c < m.cols; c++ {
		for r := 0; r < m.rows; r++ {
			data = append(data, m.data[r*m.cols+c])
		}
	}
	return &Matrix{data: data, rows: m.rows, cols: m.cols, layout: ColMajor}
}

func (m *Matrix) clone() *Matrix {
	data := make([]uint8, len(m.data))
	copy(data, m.data)
	return &Matrix{data: data, rows: m.rows, cols: m.cols, layout: m.layout}
}

func (m *Matrix) index(r, c int) int {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("bitmatrix: index (%d, %d) out of range for %d×%d matrix", r, c, m.rows, m.cols))
	}
	if m.layout == ColMajor {
		return c*m.rows + r
	}
	return r*m.cols + c
}

// At returns the bit at row r, column c. It panics if the indices are out of range.
func (m *Matrix) At(r, c int) uint8 {
	return m.data[m.index(r, c)]
}

// Row returns a copy of reading r.
func (m *Matrix) Row(r int) bitvec.Vector {
	m.index(r, 0)
	out := make(bitvec.Vector, m.cols)
	if m.layout == RowMajor {
		copy(out, m.data[r*m.cols:(r+1)*m.cols])
		return out
	}
	for c := range out {
		out[c] = m.data[c*m.rows+r]
	}
	return out
}

// Column returns a copy of column c across all readings.
func (m *Matrix) Column(c int) bitvec.Vector {
	m.index(0, c)
	out := make(bitvec.Vector, m.rows)
	if m.layout == ColMajor {
		copy(out, m.data[c*m.rows:(c+1)*m.rows])
		return out
	}
	for r := range out {
		out[r] = m.data[r*m.cols+c]
	}
	return out
}

// OnesInColumn counts the readings whose bit c is 1.
func (m *Matrix) OnesInColumn(c int) int {
	m.index(0, c)
	n := 0
	if m.layout == ColMajor {
		for _, b := range m.data[c*m.rows : (c+1)*m.rows] {
			n += int(b)
		}
		return n
	}
	for r := 0; r < m.rows; r++ {
		n += int(m.data[r*m.cols+c])
	}
	return n
}

// SelectRows returns a new row-major matrix holding the given readings in the given order.
// It panics if an index is out of range. An empty selection yields ErrEmpty.
func (m *Matrix) SelectRows(idx []int) (*Matrix, error) {
	if len(idx) == 0 {
		return nil, ErrEmpty
	}
	data := make([]uint8, 0, len(idx)*m.cols)
	for _, r := range idx {
		m.index(r, 0)
		if m.layout == RowMajor {
			data = append(data, m.data[r*m.cols:(r+1)*m.cols]...)
			continue
		}
		for c := 0; c < m.cols; c++ {
			data = append(data, m.data[c*m.rows+r])
		}
	}
	return &Matrix{data: data, rows: len(idx), cols: m.cols, layout: RowMajor}, nil
}

// Bits returns a copy of the underlying data in the current layout.
func (m *Matrix) Bits() []uint8 {
	out := make([]uint8, len(m.data))
	copy(out, m.data)
	return out
}

// Strings renders every reading as a '0'/'1' string.
func (m *Matrix) Strings() []string {
	out := make([]string, m.rows)
	for r := range out {
		out[r] = m.Row(r).String()
	}
	return out
}

// Equal reports whether m and other have the same shape and the same bit at every position,
// regardless of layout.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.At(r, c) != other.At(r, c) {
				return false
			}
		}
	}
	return true
}

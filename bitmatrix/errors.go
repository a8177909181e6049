package bitmatrix

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is returned when a reading contains a character other than '0' or '1'.
	ErrMalformedInput = errors.New("malformed reading")

	// ErrRaggedRows is returned when readings do not all have the width of the first one.
	ErrRaggedRows = errors.New("readings have different widths")

	// ErrEmpty is returned when there are no readings or the readings are zero bits wide.
	ErrEmpty = errors.New("no readings")

	// ErrShape is returned by FromBits when the bit count does not match rows*cols.
	ErrShape = errors.New("bit count does not match shape")
)

// MalformedInputError describes the first invalid character found while building a matrix.
type MalformedInputError struct {
	Row  int
	Col  int
	Char byte
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed reading: row %d col %d: non-0/1 byte %q", e.Row, e.Col, e.Char)
}

func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }

// WidthError describes a reading whose width differs from the first reading.
type WidthError struct {
	Row      int
	Expected int
	Actual   int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("reading %d has width %d, expected %d", e.Row, e.Actual, e.Expected)
}

func (e *WidthError) Unwrap() error { return ErrRaggedRows }

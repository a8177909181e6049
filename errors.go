package subdiag

import (
	"errors"
	"fmt"

	"github.com/dwhensley/subdiag/bitmatrix"
	"github.com/dwhensley/subdiag/blobstore"
	"github.com/dwhensley/subdiag/diagnostic"
)

var (
	// ErrInvalidReport is the category for reports that cannot form a diagnostic matrix.
	// Malformed characters, ragged rows and empty reports all satisfy errors.Is(err, ErrInvalidReport).
	ErrInvalidReport = errors.New("invalid report")

	// ErrTooWide is returned for reports with more than 64 columns.
	ErrTooWide = errors.New("report wider than 64 columns")

	// ErrMalformedInput is returned for characters other than '0' and '1'.
	ErrMalformedInput = bitmatrix.ErrMalformedInput

	// ErrRaggedRows is returned when readings differ in width.
	ErrRaggedRows = bitmatrix.ErrRaggedRows

	// ErrEmpty is returned for reports without readings.
	ErrEmpty = bitmatrix.ErrEmpty

	// ErrNotConverged is returned when a life-support filter runs out of columns.
	ErrNotConverged = diagnostic.ErrNotConverged

	// ErrNotFound is returned when a report blob does not exist.
	ErrNotFound = blobstore.ErrNotFound
)

// ErrWidth reports a matrix too wide to decode into uint64 ratings.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrWidth struct {
	Cols  int
	cause error
}

func (e *ErrWidth) Error() string {
	return fmt.Sprintf("report has %d columns; at most 64 are supported", e.Cols)
}

func (e *ErrWidth) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, bitmatrix.ErrMalformedInput) ||
		errors.Is(err, bitmatrix.ErrRaggedRows) ||
		errors.Is(err, bitmatrix.ErrEmpty) {
		return fmt.Errorf("%w: %w", ErrInvalidReport, err)
	}

	return err
}

package diagnostic

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConverged is returned when the life-support filter exhausts every column with more
	// than one reading left. It signals a data-contract violation (e.g. duplicate readings).
	ErrNotConverged = errors.New("life-support filter did not converge")

	// ErrUnknownRating is returned by ParseRating for unrecognized names.
	ErrUnknownRating = errors.New("unknown rating")
)

// ConvergenceError reports a filter that ran out of columns.
type ConvergenceError struct {
	Rating    Rating
	Remaining int
	Columns   int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s rating: %d readings remain after all %d columns",
		e.Rating, e.Remaining, e.Columns)
}

func (e *ConvergenceError) Unwrap() error { return ErrNotConverged }

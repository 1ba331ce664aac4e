package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or an empty first row.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrGridTooSmall indicates the fixed start and finish cells would overlap.
	ErrGridTooSmall = errors.New("gridgraph: grid must be at least 3 wide and 2 high")
	// ErrInvalidCell indicates an unknown cell marker.
	ErrInvalidCell = errors.New("gridgraph: invalid cell marker")
	// ErrStartBlocked indicates the start cell (1,0) is a wall.
	ErrStartBlocked = errors.New("gridgraph: start cell is not open")
	// ErrFinishBlocked indicates the finish cell (Width-2,Height-1) is a wall.
	ErrFinishBlocked = errors.New("gridgraph: finish cell is not open")
)

// MalformedGridError reports a structural defect in the input rows.
// Row and Col locate the offending cell; Col is -1 when the defect concerns
// a whole row, and both are -1 when it concerns the grid as a whole.
type MalformedGridError struct {
	Row, Col int
	Err      error
}

func (e *MalformedGridError) Error() string {
	switch {
	case e.Row < 0:
		return e.Err.Error()
	case e.Col < 0:
		return fmt.Sprintf("%v (row %d)", e.Err, e.Row)
	default:
		return fmt.Sprintf("%v (row %d, col %d)", e.Err, e.Row, e.Col)
	}
}

// Unwrap exposes the sentinel for errors.Is.
func (e *MalformedGridError) Unwrap() error { return e.Err }

func malformed(row, col int, err error) error {
	return &MalformedGridError{Row: row, Col: col, Err: err}
}

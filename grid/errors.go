package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates text whose cell count is not width*height.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrDimensionMismatch indicates a backing slice whose length is not width*height,
	// or dimensions whose product overflows int.
	ErrDimensionMismatch = errors.New("grid: slice length does not match dimensions")
	// ErrNonSquare indicates an in-place transpose of a non-square grid.
	ErrNonSquare = errors.New("grid: grid is not square")
)

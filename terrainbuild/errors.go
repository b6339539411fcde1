package terrainbuild

import "errors"

// Sentinel errors for terrain construction.
var (
	// ErrEmptyGrid indicates the input land/water grid has no rows or columns.
	ErrEmptyGrid = errors.New("terrainbuild: input grid must have at least one row and one column")
	// ErrNonRectangular indicates the input grid's rows differ in length.
	ErrNonRectangular = errors.New("terrainbuild: all rows must have the same length")
)

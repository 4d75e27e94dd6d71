// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrCellOutOfBounds indicates a cell outside [0,Width)×[0,Height).
	ErrCellOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrDuplicateCell indicates a cell listed more than once.
	ErrDuplicateCell = errors.New("gridgraph: duplicate cell")
)

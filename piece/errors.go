// SPDX-License-Identifier: MIT

package piece

import (
	"errors"

	"github.com/katalvlaran/hexed/gridgraph"
)

// Sentinel errors for data-integrity violations. Callers branch with
// errors.Is; returned errors carry piece/orientation context via %w.
var (
	// ErrEmptyBox indicates a width or height below 1.
	ErrEmptyBox = gridgraph.ErrEmptyGrid
	// ErrCellOutOfBounds indicates a cell outside the declared bounding box.
	ErrCellOutOfBounds = gridgraph.ErrCellOutOfBounds
	// ErrDuplicateCell indicates the same cell listed twice.
	ErrDuplicateCell = gridgraph.ErrDuplicateCell
	// ErrDisconnected indicates the cells are not one edge-connected region.
	ErrDisconnected = errors.New("piece: cells are not edge-connected")
	// ErrLooseBoundingBox indicates an empty border row or column.
	ErrLooseBoundingBox = errors.New("piece: bounding box is not tight")
	// ErrNoOrientations indicates a piece without orientations.
	ErrNoOrientations = errors.New("piece: no orientations")
	// ErrTooManyOrientations indicates more than MaxOrientations entries.
	ErrTooManyOrientations = errors.New("piece: too many orientations")
	// ErrDuplicateOrientation indicates two orientations with the same cell set.
	ErrDuplicateOrientation = errors.New("piece: duplicate orientation")
)

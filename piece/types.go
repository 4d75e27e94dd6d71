// SPDX-License-Identifier: MIT

package piece

import "github.com/katalvlaran/hexed/gridgraph"

const (
	// CellCount is the number of cells in every piece.
	CellCount = 5
	// MaxOrientations bounds the dihedral orbit: 4 rotations × optional mirror.
	MaxOrientations = 8
)

// Coord is a column/row offset inside an orientation's bounding box.
type Coord struct {
	X, Y int
}

// Orientation is one rotation/mirror variant of a piece.
// Cells are listed in a fixed, meaningful-to-humans order; identity is
// order-independent (see Key).
type Orientation struct {
	Width, Height int
	Cells         [CellCount]Coord
}

// Piece is a named base shape with its ordered orientation list.
type Piece struct {
	Name         string
	Orientations []Orientation
}

// Symmetry summarises how a shape behaves under the dihedral group.
type Symmetry struct {
	// Orbit is the number of distinct orientations: 1, 2, 4 or 8.
	Orbit int
	// Chiral reports that the mirror image is not a rotation of the shape.
	Chiral bool
}

// Pairs returns the cells as {x, y} pairs for gridgraph.
func (o Orientation) Pairs() [][2]int {
	out := make([][2]int, len(o.Cells))
	for i, c := range o.Cells {
		out[i] = [2]int{c.X, c.Y}
	}
	return out
}

// Grid builds the occupancy grid of o.
// Errors are the gridgraph sentinels (ErrEmptyBox, ErrCellOutOfBounds,
// ErrDuplicateCell as re-exported here).
func (o Orientation) Grid() (*gridgraph.GridGraph, error) {
	return gridgraph.FromCells(o.Width, o.Height, o.Pairs())
}

// Clone returns a deep copy of p.
func (p Piece) Clone() Piece {
	out := Piece{Name: p.Name, Orientations: make([]Orientation, len(p.Orientations))}
	copy(out.Orientations, p.Orientations)
	return out
}

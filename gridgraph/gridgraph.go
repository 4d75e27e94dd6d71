// SPDX-License-Identifier: MIT

package gridgraph

import "fmt"

// FromCells builds a width×height GridGraph with the given cells occupied.
// Each cell is an {x, y} pair. Returns ErrEmptyGrid for a non-positive
// size, ErrCellOutOfBounds or ErrDuplicateCell for bad cells; the error
// names the offending cell. Nothing is clamped.
// Complexity: O(W×H + N).
func FromCells(width, height int, cells [][2]int) (*GridGraph, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrEmptyGrid)
	}
	gg := &GridGraph{
		Width:    width,
		Height:   height,
		occupied: make([]bool, width*height),
	}
	for _, c := range cells {
		x, y := c[0], c[1]
		if !gg.InBounds(x, y) {
			return nil, fmt.Errorf("cell (%d,%d) in %dx%d: %w", x, y, width, height, ErrCellOutOfBounds)
		}
		i := gg.index(x, y)
		if gg.occupied[i] {
			return nil, fmt.Errorf("cell (%d,%d): %w", x, y, ErrDuplicateCell)
		}
		gg.occupied[i] = true
		gg.count++
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Occupied reports whether (x,y) is in bounds and occupied.
func (gg *GridGraph) Occupied(x, y int) bool {
	return gg.InBounds(x, y) && gg.occupied[gg.index(x, y)]
}

// Count returns the number of occupied cells.
func (gg *GridGraph) Count() int {
	return gg.count
}

// NeighborOffsets returns the N, E, S, W neighbor offsets.
// The slice is shared; callers must not modify it.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return neighborOffsets
}

// Raster returns a fresh Height×Width matrix where raster[y][x] is true
// for occupied cells. The result does not alias gg.
// Complexity: O(W×H).
func (gg *GridGraph) Raster() [][]bool {
	out := make([][]bool, gg.Height)
	for y := 0; y < gg.Height; y++ {
		out[y] = make([]bool, gg.Width)
		copy(out[y], gg.occupied[y*gg.Width:(y+1)*gg.Width])
	}
	return out
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// SPDX-License-Identifier: MIT

// Package gridgraph treats the bounding box of a small polyomino as a grid
// graph of occupied and empty cells.
//
// What:
//
//   - GridGraph holds a Width×Height occupancy matrix built from a list of
//     (x,y) cells; it is immutable once built.
//   - Identifies edge-connected components of occupied cells; cells that
//     touch only at a corner belong to different components.
//   - Rasterizes the occupancy into a fresh [][]bool for renderers.
//
// Why:
//
//   - Piece validation: five cells must form exactly one component.
//   - Rendering: row y, column x of the raster is the marker position.
//
// Complexity:
//
//   - FromCells:           O(W×H + N), Memory: O(W×H).
//   - ConnectedComponents: O(W×H),     Memory: O(W×H).
//   - Raster:              O(W×H),     Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height below 1.
//   - ErrCellOutOfBounds: a cell lies outside the declared box.
//   - ErrDuplicateCell: the same cell is listed twice.
package gridgraph

// SPDX-License-Identifier: MIT

package gridgraph

// neighborOffsets lists edge neighbours: N, E, S, W. Cells touching only
// at a corner are not adjacent.
var neighborOffsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// GridGraph is an occupancy grid. It is immutable once built.
// occupied is row-major: occupied[y*Width+x].
type GridGraph struct {
	Width, Height int
	occupied      []bool
	count         int
}

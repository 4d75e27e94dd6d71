// SPDX-License-Identifier: MIT

package gridgraph

// ConnectedComponents finds all edge-connected regions of occupied cells. Components are seeded in row-major
// order; each is a slice of row-major cell indices in BFS order.
//
// To convert an index back to (x,y), use Coordinate.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, len(gg.occupied))
	var comps [][]int
	offsets := gg.NeighborOffsets()

	for i0, occ := range gg.occupied {
		if !occ || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := gg.Coordinate(queue[qi])
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.Occupied(vx, vy) {
					continue
				}
				vi := gg.index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Connected reports whether all occupied cells form a single component.
// An empty grid is not connected.
func (gg *GridGraph) Connected() bool {
	return len(gg.ConnectedComponents()) == 1
}

// SPDX-License-Identifier: MIT

package piece

import "fmt"

// Validate checks a single orientation: positive box, every cell in
// bounds, no duplicates, one edge-connected component and a tight bounding box.
// The first violation is returned, wrapped with the box size.
// Complexity: O(W×H).
func Validate(o Orientation) error {
	gg, err := o.Grid()
	if err != nil {
		return err
	}
	if !gg.Connected() {
		return fmt.Errorf("%dx%d %v: %w", o.Width, o.Height, o.Cells, ErrDisconnected)
	}
	minX, minY := o.Width, o.Height
	maxX, maxY := -1, -1
	for _, c := range o.Cells {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	if minX != 0 || minY != 0 || maxX != o.Width-1 || maxY != o.Height-1 {
		return fmt.Errorf("%dx%d, cells span x[%d..%d] y[%d..%d]: %w",
			o.Width, o.Height, minX, maxX, minY, maxY, ErrLooseBoundingBox)
	}
	return nil
}

// ValidatePiece validates every orientation of p and checks that no two
// share a cell set. Errors name the piece and the orientation index.
func ValidatePiece(p Piece) error {
	switch n := len(p.Orientations); {
	case n == 0:
		return fmt.Errorf("piece %q: %w", p.Name, ErrNoOrientations)
	case n > MaxOrientations:
		return fmt.Errorf("piece %q has %d: %w", p.Name, n, ErrTooManyOrientations)
	}
	seen := make(map[string]int, len(p.Orientations))
	for i, o := range p.Orientations {
		if err := Validate(o); err != nil {
			return fmt.Errorf("piece %q orientation %d: %w", p.Name, i, err)
		}
		k := Key(o)
		if j, dup := seen[k]; dup {
			return fmt.Errorf("piece %q orientations %d and %d: %w", p.Name, j, i, ErrDuplicateOrientation)
		}
		seen[k] = i
	}
	return nil
}

// SPDX-License-Identifier: MIT

package piece

import (
	"fmt"
	"slices"
	"strings"
)

// Normalize shifts cells so the minimum x and y are 0 and returns the
// orientation with its tight bounding box. Cell order is preserved.
func Normalize(cells [CellCount]Coord) Orientation {
	minX, minY := cells[0].X, cells[0].Y
	maxX, maxY := minX, minY
	for _, c := range cells[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	o := Orientation{Width: maxX - minX + 1, Height: maxY - minY + 1}
	for i, c := range cells {
		o.Cells[i] = Coord{X: c.X - minX, Y: c.Y - minY}
	}
	return o
}

// Rotate turns o 90° clockwise: (x, y) → (Height-1-y, x).
func Rotate(o Orientation) Orientation {
	var cells [CellCount]Coord
	for i, c := range o.Cells {
		cells[i] = Coord{X: o.Height - 1 - c.Y, Y: c.X}
	}
	return Normalize(cells)
}

// Mirror flips o left to right: (x, y) → (Width-1-x, y).
func Mirror(o Orientation) Orientation {
	var cells [CellCount]Coord
	for i, c := range o.Cells {
		cells[i] = Coord{X: o.Width - 1 - c.X, Y: c.Y}
	}
	return Normalize(cells)
}

// Key returns an order-independent identity for o: the box size followed
// by the sorted cell list, e.g. "3x3:0,1;1,0;1,1;1,2;2,1".
func Key(o Orientation) string {
	cells := o.Cells
	slices.SortFunc(cells[:], func(a, b Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d:", o.Width, o.Height)
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%d,%d", c.X, c.Y)
	}
	return b.String()
}

// Same reports whether a and b describe the same occupied-cell pattern.
func Same(a, b Orientation) bool {
	return Key(a) == Key(b)
}

// Variants returns every distinct dihedral image of o: the four clockwise
// rotations of o, then the four rotations of Mirror(o), first occurrence
// kept. The first element is o itself.
func Variants(o Orientation) []Orientation {
	out := make([]Orientation, 0, MaxOrientations)
	seen := make(map[string]struct{}, MaxOrientations)
	for _, start := range [2]Orientation{o, Mirror(o)} {
		r := start
		for i := 0; i < 4; i++ {
			if k := Key(r); !hasKey(seen, k) {
				seen[k] = struct{}{}
				out = append(out, r)
			}
			r = Rotate(r)
		}
	}
	return out
}

// Classify reports the orbit size of o and whether it is chiral.
func Classify(o Orientation) Symmetry {
	rotations := make(map[string]struct{}, 4)
	r := o
	for i := 0; i < 4; i++ {
		rotations[Key(r)] = struct{}{}
		r = Rotate(r)
	}
	return Symmetry{
		Orbit:  len(Variants(o)),
		Chiral: !hasKey(rotations, Key(Mirror(o))),
	}
}

// String formats s as e.g. "8 orientations, chiral".
func (s Symmetry) String() string {
	kind := "achiral"
	if s.Chiral {
		kind = "chiral"
	}
	noun := "orientations"
	if s.Orbit == 1 {
		noun = "orientation"
	}
	return fmt.Sprintf("%d %s, %s", s.Orbit, noun, kind)
}

func hasKey(set map[string]struct{}, k string) bool {
	_, ok := set[k]
	return ok
}

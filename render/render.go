// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hexed/piece"
)

// Render rasterizes o into o.Height rows of o.Width markers each, row 0
// (the top of the shape) first. Exactly five markers are "filled".
// Returns a wrapped piece.ErrEmptyBox, piece.ErrCellOutOfBounds or
// piece.ErrDuplicateCell for a malformed record.
func Render(o piece.Orientation, opts ...Option) ([]string, error) {
	return newConfig(opts).render(o)
}

// MustRender is Render that panics on a malformed record.
func MustRender(o piece.Orientation, opts ...Option) []string {
	rows, err := Render(o, opts...)
	if err != nil {
		panic(err)
	}
	return rows
}

func (c config) render(o piece.Orientation) ([]string, error) {
	gg, err := o.Grid()
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	raster := gg.Raster()
	rows := make([]string, len(raster))
	var b strings.Builder
	for y, line := range raster {
		b.Reset()
		for _, occ := range line {
			if occ {
				b.WriteRune(c.filled)
			} else {
				b.WriteRune(c.blank)
			}
		}
		rows[y] = b.String()
	}
	return rows, nil
}

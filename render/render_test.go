// SPDX-License-Identifier: MIT

// Package render_test contains unit tests for orientation rendering.
package render_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexed/catalog"
	"github.com/katalvlaran/hexed/piece"
	"github.com/katalvlaran/hexed/render"
)

func orientation(w, h int, xy ...int) piece.Orientation {
	o := piece.Orientation{Width: w, Height: h}
	for i := range o.Cells {
		o.Cells[i] = piece.Coord{X: xy[2*i], Y: xy[2*i+1]}
	}
	return o
}

var (
	plus = orientation(3, 3, 1, 0, 0, 1, 1, 1, 2, 1, 1, 2)
	bar  = orientation(5, 1, 0, 0, 1, 0, 2, 0, 3, 0, 4, 0)
)

func TestRender_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		o    piece.Orientation
		want []string
	}{
		{"plus", plus, []string{" # ", "###", " # "}},
		{"bar", bar, []string{"#####"}},
		{"column", orientation(1, 5, 0, 0, 0, 1, 0, 2, 0, 3, 0, 4), []string{"#", "#", "#", "#", "#"}},
		{"ell", orientation(4, 2, 0, 0, 1, 0, 2, 0, 3, 0, 3, 1), []string{"####", "   #"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rows, err := render.Render(tc.o)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rows)
		})
	}
}

func TestRender_ShapeGuarantees(t *testing.T) {
	t.Parallel()

	for _, p := range catalog.Pieces() {
		for i, o := range p.Orientations {
			rows, err := render.Render(o)
			require.NoError(t, err)
			require.Len(t, rows, o.Height, "%s[%d]", p.Name, i)
			filled := 0
			for _, r := range rows {
				require.Len(t, r, o.Width, "%s[%d]", p.Name, i)
				for _, ch := range r {
					switch ch {
					case '#':
						filled++
					case ' ':
					default:
						t.Fatalf("%s[%d]: unexpected marker %q", p.Name, i, ch)
					}
				}
			}
			assert.Equal(t, piece.CellCount, filled, "%s[%d]", p.Name, i)

			again := render.MustRender(o)
			assert.Equal(t, rows, again, "%s[%d] not deterministic", p.Name, i)
		}
	}
}

func TestRender_Markers(t *testing.T) {
	t.Parallel()

	rows, err := render.Render(plus, render.WithFilled('█'), render.WithBlank('.'))
	require.NoError(t, err)
	assert.Equal(t, []string{".█.", "███", ".█."}, rows)
}

func TestRender_DataIntegrity(t *testing.T) {
	t.Parallel()

	_, err := render.Render(orientation(4, 1, 0, 0, 1, 0, 2, 0, 3, 0, 4, 0))
	assert.ErrorIs(t, err, piece.ErrCellOutOfBounds)

	_, err = render.Render(orientation(5, 1, 0, 0, 1, 0, 2, 0, 3, 0, 0, 0))
	assert.ErrorIs(t, err, piece.ErrDuplicateCell)

	_, err = render.Render(orientation(0, 1, 0, 0, 1, 0, 2, 0, 3, 0, 4, 0))
	assert.ErrorIs(t, err, piece.ErrEmptyBox)

	assert.Panics(t, func() { render.MustRender(orientation(3, 2, 1, 0, 0, 1, 1, 1, 2, 1, 1, 2)) })
}

func TestOptions_PanicOnMeaninglessInput(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { render.WithFilled(0) })
	assert.Panics(t, func() { render.WithBlank('\n') })
	assert.Panics(t, func() { render.WithDelimiter("") })
	assert.Panics(t, func() { render.WithDelimiter("--\n--") })
	assert.NotPanics(t, func() { render.WithDelimiter("=") })
}

// TestRender_Concurrent renders every catalog orientation from its own
// goroutine and compares with the sequential result.
func TestRender_Concurrent(t *testing.T) {
	t.Parallel()

	var all []piece.Orientation
	for _, p := range catalog.Pieces() {
		all = append(all, p.Orientations...)
	}
	got := make([][]string, len(all))
	var wg sync.WaitGroup
	for i := range all {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = render.MustRender(all[i])
		}(i)
	}
	wg.Wait()

	for i, o := range all {
		assert.Equal(t, render.MustRender(o), got[i])
	}
}

// SPDX-License-Identifier: MIT

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexed/piece"
)

func TestOrient_PacksPairs(t *testing.T) {
	o := orient(2, 3, 0, 0, 1, 0, 0, 1, 1, 1, 1, 2)
	assert.Equal(t, 2, o.Width)
	assert.Equal(t, 3, o.Height)
	assert.Equal(t, piece.Coord{X: 1, Y: 2}, o.Cells[4])

	assert.Panics(t, func() { orient(1, 1, 0, 0) })
}

func TestMatchVariants_RejectsIncompleteOrbit(t *testing.T) {
	l := table[7].piece()
	require.Equal(t, "L", l.Name)

	l.Orientations = l.Orientations[:4]
	assert.ErrorIs(t, matchVariants(l), ErrVariantMismatch)

	// Right count, wrong content: an orientation of Y in place of one of L.
	l = table[7].piece()
	l.Orientations[7] = table[8].orientations[0]
	assert.ErrorIs(t, matchVariants(l), ErrVariantMismatch)
}

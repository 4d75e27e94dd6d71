// SPDX-License-Identifier: MIT

package piece_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexed/piece"
)

func TestNormalize_ShiftsToOrigin(t *testing.T) {
	t.Parallel()

	o := piece.Normalize(cells(3, 5, 4, 5, 5, 5, 6, 5, 7, 5))
	assert.Equal(t, bar, o)
}

func TestRotate_Clockwise(t *testing.T) {
	t.Parallel()

	// ####      #
	//    #  →   #
	//           #
	//          ##
	want := piece.Orientation{Width: 2, Height: 4, Cells: cells(1, 0, 1, 1, 1, 2, 1, 3, 0, 3)}
	assert.Equal(t, want, piece.Rotate(ell))
	assert.Equal(t, piece.Orientation{Width: 1, Height: 5, Cells: cells(0, 0, 0, 1, 0, 2, 0, 3, 0, 4)}, piece.Rotate(bar))
}

func TestMirror_LeftRight(t *testing.T) {
	t.Parallel()

	want := piece.Orientation{Width: 4, Height: 2, Cells: cells(3, 0, 2, 0, 1, 0, 0, 0, 0, 1)}
	assert.Equal(t, want, piece.Mirror(ell))
}

func TestTransforms_GroupIdentities(t *testing.T) {
	t.Parallel()

	for _, o := range []piece.Orientation{plus, bar, ell} {
		r := o
		for i := 0; i < 4; i++ {
			r = piece.Rotate(r)
			require.NoError(t, piece.Validate(r))
		}
		assert.True(t, piece.Same(o, r), "four rotations of %v", o)
		assert.True(t, piece.Same(o, piece.Mirror(piece.Mirror(o))), "double mirror of %v", o)
	}
}

func TestKey_OrderIndependent(t *testing.T) {
	t.Parallel()

	reordered := piece.Orientation{Width: 3, Height: 3, Cells: cells(2, 1, 1, 2, 0, 1, 1, 1, 1, 0)}
	assert.Equal(t, piece.Key(plus), piece.Key(reordered))
	assert.Equal(t, "3x3:1,0;0,1;1,1;2,1;1,2", piece.Key(plus))
	assert.NotEqual(t, piece.Key(bar), piece.Key(piece.Rotate(bar)))
	// Key must not reorder the caller's cells.
	assert.Equal(t, piece.Coord{X: 2, Y: 1}, reordered.Cells[0])
}

func TestClassify(t *testing.T) {
	t.Parallel()

	zed := piece.Orientation{Width: 3, Height: 3, Cells: cells(0, 0, 0, 1, 1, 1, 2, 1, 2, 2)}
	tee := piece.Orientation{Width: 3, Height: 3, Cells: cells(0, 0, 1, 0, 2, 0, 1, 1, 1, 2)}

	tests := []struct {
		name string
		o    piece.Orientation
		want piece.Symmetry
	}{
		{"plus", plus, piece.Symmetry{Orbit: 1, Chiral: false}},
		{"bar", bar, piece.Symmetry{Orbit: 2, Chiral: false}},
		{"zed", zed, piece.Symmetry{Orbit: 4, Chiral: true}},
		{"tee", tee, piece.Symmetry{Orbit: 4, Chiral: false}},
		{"ell", ell, piece.Symmetry{Orbit: 8, Chiral: true}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, piece.Classify(tc.o))
			assert.Len(t, piece.Variants(tc.o), tc.want.Orbit)
		})
	}
}

func TestVariants_StartsWithInputAndIsDistinct(t *testing.T) {
	t.Parallel()

	vs := piece.Variants(ell)
	require.NotEmpty(t, vs)
	assert.Equal(t, ell, vs[0])
	seen := map[string]bool{}
	for _, v := range vs {
		require.NoError(t, piece.Validate(v))
		k := piece.Key(v)
		assert.False(t, seen[k], "duplicate variant %s", k)
		seen[k] = true
	}
}

func TestSymmetry_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1 orientation, achiral", piece.Symmetry{Orbit: 1}.String())
	assert.Equal(t, "8 orientations, chiral", piece.Symmetry{Orbit: 8, Chiral: true}.String())
}

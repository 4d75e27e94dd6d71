// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexed/catalog"
	"github.com/katalvlaran/hexed/piece"
	"github.com/katalvlaran/hexed/render"
)

func TestWriteYAML_Catalog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.WriteYAML(&buf, catalog.Pieces()))

	var doc render.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Pieces, 12)

	total := 0
	for _, p := range doc.Pieces {
		total += len(p.Orientations)
		assert.Equal(t, p.Orbit, len(p.Orientations), p.Name)
	}
	assert.Equal(t, 63, total)

	x := doc.Pieces[0]
	assert.Equal(t, "X", x.Name)
	assert.False(t, x.Chiral)
	assert.Equal(t, render.OrientationDoc{
		Width:  3,
		Height: 3,
		Cells:  [][]int{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}},
		Rows:   []string{" # ", "###", " # "},
	}, x.Orientations[0])
	assert.True(t, doc.Pieces[11].Chiral)
}

func TestNewDocument_Errors(t *testing.T) {
	t.Parallel()

	_, err := render.NewDocument([]piece.Piece{{Name: "bad", Orientations: []piece.Orientation{orientation(2, 2, 0, 0, 1, 0, 2, 0, 3, 0, 4, 0)}}})
	assert.ErrorIs(t, err, piece.ErrCellOutOfBounds)

	doc, err := render.NewDocument([]piece.Piece{{Name: "none"}})
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Pieces[0].Orbit)
}

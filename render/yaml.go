// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexed/piece"
)

// Document is the YAML form of a list of pieces.
type Document struct {
	Pieces []PieceDoc `yaml:"pieces"`
}

// PieceDoc describes one piece and its orientations.
type PieceDoc struct {
	Name         string           `yaml:"name"`
	Orbit        int              `yaml:"orbit"`
	Chiral       bool             `yaml:"chiral"`
	Orientations []OrientationDoc `yaml:"orientations"`
}

// OrientationDoc is one orientation: box, cells as [x, y] pairs, and the
// rendered rows.
type OrientationDoc struct {
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Cells  [][]int  `yaml:"cells,flow"`
	Rows   []string `yaml:"rows"`
}

// NewDocument renders pieces into a Document. Symmetry is classified from
// each piece's first orientation; a piece without orientations has Orbit 0.
func NewDocument(pieces []piece.Piece, opts ...Option) (Document, error) {
	c := newConfig(opts)
	doc := Document{Pieces: make([]PieceDoc, 0, len(pieces))}
	for _, p := range pieces {
		pd := PieceDoc{Name: p.Name, Orientations: make([]OrientationDoc, 0, len(p.Orientations))}
		if len(p.Orientations) > 0 {
			s := piece.Classify(p.Orientations[0])
			pd.Orbit, pd.Chiral = s.Orbit, s.Chiral
		}
		for i, o := range p.Orientations {
			rows, err := c.render(o)
			if err != nil {
				return Document{}, fmt.Errorf("piece %q orientation %d: %w", p.Name, i, err)
			}
			cells := make([][]int, len(o.Cells))
			for j, xy := range o.Cells {
				cells[j] = []int{xy.X, xy.Y}
			}
			pd.Orientations = append(pd.Orientations, OrientationDoc{
				Width: o.Width, Height: o.Height, Cells: cells, Rows: rows,
			})
		}
		doc.Pieces = append(doc.Pieces, pd)
	}
	return doc, nil
}

// WriteYAML encodes NewDocument(pieces) to w with two-space indentation.
func WriteYAML(w io.Writer, pieces []piece.Piece, opts ...Option) error {
	doc, err := NewDocument(pieces, opts...)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("render: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render: encode yaml: %w", err)
	}
	return nil
}

// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/hexed"
	"github.com/katalvlaran/hexed/piece"
)

// WriteReport writes every orientation of every piece to w in order.
// Each orientation is its rows followed by one empty line; each piece ends
// with the delimiter line.
//
// A piece is rendered in full before any of its lines are written. When an
// orientation fails to render, the pieces before it are written whole,
// nothing of the failing piece or those after it is written, and the error
// names the piece and orientation index.
func WriteReport(w io.Writer, pieces []piece.Piece, opts ...Option) error {
	c := newConfig(opts)
	bw := bufio.NewWriter(w)
	log := hexed.Logger()

	for _, p := range pieces {
		block, err := c.pieceBlock(p)
		if err != nil {
			if ferr := bw.Flush(); ferr != nil {
				return errors.Join(err, fmt.Errorf("render: write report: %w", ferr))
			}
			return err
		}
		for _, line := range block {
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
		log.Debug("rendered piece", "piece", p.Name, "orientations", len(p.Orientations))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: write report: %w", err)
	}
	return nil
}

// pieceBlock renders all lines of one piece, delimiter included.
func (c config) pieceBlock(p piece.Piece) ([]string, error) {
	var lines []string
	for i, o := range p.Orientations {
		rows, err := c.render(o)
		if err != nil {
			return nil, fmt.Errorf("piece %q orientation %d: %w", p.Name, i, err)
		}
		lines = append(lines, rows...)
		lines = append(lines, "")
	}
	return append(lines, c.delimiter), nil
}

// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/hexed"
	"github.com/katalvlaran/hexed/piece"
)

const (
	// Count is the number of base pieces.
	Count = 12
	// TotalOrientations is the sum of all orbit sizes.
	TotalOrientations = 63

	// BoardWidth and BoardHeight describe the puzzle board (6 across,
	// 10 down); 12 pieces × 5 cells cover it exactly.
	BoardWidth  = 6
	BoardHeight = 10
)

var loadOnce sync.Once

// mustLoad validates the table on first use and panics on violation.
func mustLoad() {
	loadOnce.Do(func() {
		if err := Validate(); err != nil {
			hexed.Logger().Error("catalog validation failed", "err", err)
			panic(err)
		}
		hexed.Logger().Debug("catalog validated", "pieces", Count, "orientations", TotalOrientations)
	})
}

// Validate checks every table entry with piece.ValidatePiece and verifies
// that each entry lists exactly the dihedral variants of its first
// orientation. It also checks the piece and orientation totals.
func Validate() error {
	total := 0
	for _, e := range table {
		p := e.piece()
		if err := piece.ValidatePiece(p); err != nil {
			return err
		}
		if err := matchVariants(p); err != nil {
			return err
		}
		total += len(p.Orientations)
	}
	if total != TotalOrientations {
		return fmt.Errorf("catalog: %d orientations, want %d: %w", total, TotalOrientations, ErrVariantMismatch)
	}
	return nil
}

// matchVariants compares p's orientations with piece.Variants as sets.
// ValidatePiece has already ruled out duplicates, so equal sizes plus
// containment is set equality.
func matchVariants(p piece.Piece) error {
	want := piece.Variants(p.Orientations[0])
	if len(want) != len(p.Orientations) {
		return fmt.Errorf("piece %q has %d orientations, symmetry gives %d: %w",
			p.Name, len(p.Orientations), len(want), ErrVariantMismatch)
	}
	have := make(map[string]struct{}, len(p.Orientations))
	for _, o := range p.Orientations {
		have[piece.Key(o)] = struct{}{}
	}
	for _, v := range want {
		if _, ok := have[piece.Key(v)]; !ok {
			return fmt.Errorf("piece %q is missing %s: %w", p.Name, piece.Key(v), ErrVariantMismatch)
		}
	}
	return nil
}

func (e entry) piece() piece.Piece {
	return piece.Piece{Name: e.name, Orientations: e.orientations}.Clone()
}

// Len returns the number of pieces.
func Len() int { return Count }

// Orientations returns the total orientation count across all pieces.
func Orientations() int {
	mustLoad()
	n := 0
	for _, e := range table {
		n += len(e.orientations)
	}
	return n
}

// Pieces returns a deep copy of all pieces in catalog order.
func Pieces() []piece.Piece {
	mustLoad()
	out := make([]piece.Piece, len(table))
	for i, e := range table {
		out[i] = e.piece()
	}
	return out
}

// Piece returns a copy of the i-th piece.
func Piece(i int) (piece.Piece, error) {
	mustLoad()
	if i < 0 || i >= len(table) {
		return piece.Piece{}, fmt.Errorf("index %d: %w", i, ErrIndexOutOfRange)
	}
	return table[i].piece(), nil
}

// Lookup returns a copy of the piece with the given letter name,
// case-insensitively.
func Lookup(name string) (piece.Piece, error) {
	mustLoad()
	for _, e := range table {
		if strings.EqualFold(e.name, name) {
			return e.piece(), nil
		}
	}
	return piece.Piece{}, fmt.Errorf("%q: %w", name, ErrUnknownPiece)
}

// Names returns the piece names in catalog order.
func Names() []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.name
	}
	return out
}

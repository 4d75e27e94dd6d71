// SPDX-License-Identifier: MIT

// Package piece models five-cell puzzle pieces and their orientations.
//
// An Orientation is one rotation or mirror image of a piece: a tight
// Width×Height bounding box and exactly five occupied cells inside it.
// A Piece groups the 1, 2, 4 or 8 distinct orientations of one shape.
//
// Invariants enforced by Validate / ValidatePiece:
//
//  1. Five distinct cells (the count is fixed by the [CellCount]Coord array).
//  2. The cells form one edge-connected region.
//  3. The bounding box is tight: some cell touches each of its four sides.
//  4. No two orientations of a piece share the same cell set.
//
// Transforms (Rotate, Mirror, Normalize, Variants, Classify) derive the
// dihedral images of a shape; they are used to cross-check hand-encoded
// tables and to classify symmetry.
package piece

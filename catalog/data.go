// SPDX-License-Identifier: MIT
// Package: hexed/catalog
//
// data.go - hand-encoded orientation tables for the 12 pieces (data-only).
//
// Purpose:
//   - Single source of truth for piece geometry. Every rotation and mirror
//     image is listed explicitly; nothing is derived at run time.
//   - Cells are (x, y) with x the column and y the row, both from the top-left
//     corner of the tight bounding box.
//
// Contract:
//   - Piece order and orientation order are the report order; do not reorder.
//   - Orbit sizes: X 1, I 2, Z W U T V 4, L Y N F P 8 (63 in total).
//   - Validation (tightness, connectivity, distinctness, and agreement with
//     piece.Variants) runs once in catalog.go before any read.

package catalog

import "github.com/katalvlaran/hexed/piece"

// entry is one base piece as stored in the table.
type entry struct {
	name         string
	orientations []piece.Orientation
}

// orient packs a width, a height and five x, y pairs into an Orientation.
// Panics on a wrong pair count; the table is fixed at compile time.
func orient(width, height int, xy ...int) piece.Orientation {
	if len(xy) != 2*piece.CellCount {
		panic("catalog: orient needs exactly 5 coordinate pairs")
	}
	o := piece.Orientation{Width: width, Height: height}
	for i := range o.Cells {
		o.Cells[i] = piece.Coord{X: xy[2*i], Y: xy[2*i+1]}
	}
	return o
}

// table lists the pieces in report order.
var table = [Count]entry{
	// X: fully symmetric.
	//
	//	 #
	//	###
	//	 #
	{
		name: "X",
		orientations: []piece.Orientation{
			orient(3, 3, 1, 0, 0, 1, 1, 1, 2, 1, 1, 2),
		},
	},
	// I: 2-fold symmetric.
	//
	//	#####
	{
		name: "I",
		orientations: []piece.Orientation{
			orient(5, 1, 0, 0, 1, 0, 2, 0, 3, 0, 4, 0),
			orient(1, 5, 0, 0, 0, 1, 0, 2, 0, 3, 0, 4),
		},
	},
	// Z: 2-fold symmetric and chiral: 2 rotations, same again mirrored.
	//
	//	#
	//	###
	//	  #
	{
		name: "Z",
		orientations: []piece.Orientation{
			orient(3, 3, 0, 0, 0, 1, 1, 1, 2, 1, 2, 2),
			orient(3, 3, 2, 0, 1, 0, 1, 1, 1, 2, 0, 2), // clockwise
			orient(3, 3, 2, 0, 2, 1, 1, 1, 0, 1, 0, 2), // mirrored
			orient(3, 3, 0, 0, 1, 0, 1, 1, 1, 2, 2, 2), // mirrored, clockwise
		},
	},
	// W: achiral.
	//
	//	##
	//	 ##
	//	  #
	{
		name: "W",
		orientations: []piece.Orientation{
			orient(3, 3, 0, 0, 1, 0, 1, 1, 2, 1, 2, 2),
			orient(3, 3, 2, 0, 2, 1, 1, 1, 1, 2, 0, 2),
			orient(3, 3, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2),
			orient(3, 3, 2, 0, 1, 0, 1, 1, 0, 1, 0, 2),
		},
	},
	// U: achiral.
	//
	//	###
	//	# #
	{
		name: "U",
		orientations: []piece.Orientation{
			orient(3, 2, 0, 1, 0, 0, 1, 0, 2, 0, 2, 1),
			orient(2, 3, 0, 0, 1, 0, 1, 1, 1, 2, 0, 2),
			orient(3, 2, 0, 0, 0, 1, 1, 1, 2, 1, 2, 0),
			orient(2, 3, 1, 0, 0, 0, 0, 1, 0, 2, 1, 2),
		},
	},
	// T: achiral.
	//
	//	###
	//	 #
	//	 #
	{
		name: "T",
		orientations: []piece.Orientation{
			orient(3, 3, 0, 0, 1, 0, 2, 0, 1, 1, 1, 2),
			orient(3, 3, 2, 0, 2, 1, 2, 2, 1, 1, 0, 1),
			orient(3, 3, 1, 0, 1, 1, 0, 2, 1, 2, 2, 2),
			orient(3, 3, 0, 0, 0, 1, 0, 2, 1, 1, 2, 1),
		},
	},
	// V: achiral.
	//
	//	###
	//	#
	//	#
	{
		name: "V",
		orientations: []piece.Orientation{
			orient(3, 3, 2, 0, 1, 0, 0, 0, 0, 1, 0, 2),
			orient(3, 3, 0, 0, 1, 0, 2, 0, 2, 1, 2, 2),
			orient(3, 3, 2, 0, 2, 1, 2, 2, 1, 2, 0, 2),
			orient(3, 3, 0, 0, 0, 1, 0, 2, 1, 2, 2, 2),
		},
	},
	// L: chiral: 4 rotations, same again mirrored.
	//
	//	####
	//	   #
	{
		name: "L",
		orientations: []piece.Orientation{
			orient(4, 2, 0, 0, 1, 0, 2, 0, 3, 0, 3, 1),
			orient(2, 4, 1, 0, 1, 1, 1, 2, 1, 3, 0, 3),
			orient(4, 2, 0, 0, 0, 1, 1, 1, 2, 1, 3, 1),
			orient(2, 4, 1, 0, 0, 0, 0, 1, 0, 2, 0, 3),
			orient(4, 2, 0, 1, 0, 0, 1, 0, 2, 0, 3, 0), // mirrored
			orient(2, 4, 0, 0, 1, 0, 1, 1, 1, 2, 1, 3),
			orient(4, 2, 3, 0, 3, 1, 2, 1, 1, 1, 0, 1),
			orient(2, 4, 0, 0, 0, 1, 0, 2, 0, 3, 1, 3),
		},
	},
	// Y: chiral: 4 rotations, same again mirrored.
	//
	//	####
	//	  #
	{
		name: "Y",
		orientations: []piece.Orientation{
			orient(4, 2, 0, 0, 1, 0, 2, 0, 3, 0, 2, 1),
			orient(2, 4, 1, 0, 1, 1, 1, 2, 1, 3, 0, 2),
			orient(4, 2, 1, 0, 0, 1, 1, 1, 2, 1, 3, 1),
			orient(2, 4, 1, 1, 0, 0, 0, 1, 0, 2, 0, 3),
			orient(4, 2, 1, 1, 0, 0, 1, 0, 2, 0, 3, 0), // mirrored
			orient(2, 4, 0, 1, 1, 0, 1, 1, 1, 2, 1, 3),
			orient(4, 2, 2, 0, 3, 1, 2, 1, 1, 1, 0, 1),
			orient(2, 4, 0, 0, 0, 1, 0, 2, 0, 3, 1, 2),
		},
	},
	// N: chiral: 4 rotations, same again mirrored.
	//
	//	###
	//	  ##
	{
		name: "N",
		orientations: []piece.Orientation{
			orient(4, 2, 0, 0, 1, 0, 2, 0, 2, 1, 3, 1),
			orient(2, 4, 1, 0, 1, 1, 1, 2, 0, 2, 0, 3),
			orient(4, 2, 0, 0, 1, 0, 1, 1, 2, 1, 3, 1),
			orient(2, 4, 1, 0, 1, 1, 0, 1, 0, 2, 0, 3),
			orient(4, 2, 0, 1, 1, 1, 1, 0, 2, 0, 3, 0), // mirrored
			orient(2, 4, 0, 0, 0, 1, 1, 1, 1, 2, 1, 3),
			orient(4, 2, 3, 0, 2, 0, 2, 1, 1, 1, 0, 1),
			orient(2, 4, 0, 0, 0, 1, 0, 2, 1, 2, 1, 3),
		},
	},
	// F: chiral: 4 rotations, same again mirrored.
	//
	//	#
	//	###
	//	 #
	{
		name: "F",
		orientations: []piece.Orientation{
			orient(3, 3, 0, 0, 0, 1, 1, 1, 2, 1, 1, 2),
			orient(3, 3, 1, 0, 2, 0, 0, 1, 1, 1, 1, 2),
			orient(3, 3, 1, 0, 0, 1, 1, 1, 2, 1, 2, 2),
			orient(3, 3, 1, 0, 1, 1, 2, 1, 0, 2, 1, 2),
			orient(3, 3, 2, 0, 0, 1, 1, 1, 2, 1, 1, 2), // mirrored
			orient(3, 3, 1, 0, 0, 1, 1, 1, 1, 2, 2, 2),
			orient(3, 3, 1, 0, 0, 1, 1, 1, 2, 1, 0, 2),
			orient(3, 3, 0, 0, 1, 0, 1, 1, 2, 1, 1, 2),
		},
	},
	// P: chiral: 4 rotations, same again mirrored.
	//
	//	###
	//	##
	{
		name: "P",
		orientations: []piece.Orientation{
			orient(3, 2, 0, 0, 1, 0, 2, 0, 0, 1, 1, 1),
			orient(2, 3, 0, 0, 1, 0, 0, 1, 1, 1, 1, 2),
			orient(3, 2, 1, 0, 2, 0, 0, 1, 1, 1, 2, 1),
			orient(2, 3, 0, 0, 0, 1, 1, 1, 0, 2, 1, 2),
			orient(3, 2, 0, 0, 1, 0, 2, 0, 1, 1, 2, 1), // mirrored
			orient(2, 3, 1, 0, 0, 1, 1, 1, 0, 2, 1, 2),
			orient(3, 2, 0, 0, 1, 0, 0, 1, 1, 1, 2, 1),
			orient(2, 3, 0, 0, 1, 0, 0, 1, 1, 1, 0, 2),
		},
	},
}

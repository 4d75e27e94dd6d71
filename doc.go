// SPDX-License-Identifier: MIT

// Package hexed catalogs the twelve five-cell pieces of the Hexed vintage
// tiling puzzle and renders every rotation and mirror image as text.
//
// What:
//
//   - piece/: Coord, Orientation and Piece types, invariant checks,
//     rotate/mirror transforms and symmetry classification.
//   - gridgraph/: occupancy grid over a bounding box: bounds, neighbour
//     offsets, connected components, rasterization.
//   - catalog/: the immutable, hand-encoded table of 12 pieces and
//     63 orientations, validated once on first access.
//   - render/: text rows for one orientation, the full text report
//     and a YAML export.
//   - cmd/hexed: prints the report.
//
// Why:
//
//   - The pieces are placement primitives for a 6×10 board solver; the
//     catalog documents them precisely and rejects malformed data up front.
//
// Quick ASCII example (piece X, the only orientation):
//
//	 #
//	###
//	 #
//
// Logging is silent by default; see SetLogger.
package hexed

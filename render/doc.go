// SPDX-License-Identifier: MIT

// Package render turns piece orientations into text.
//
// What:
//
//   - Render: one orientation → Height rows of Width runes, row 0 first,
//     '#' for occupied and ' ' for empty cells by default.
//   - WriteReport: every orientation of every piece, each followed by an
//     empty line; each piece followed by a delimiter line of 30 '-'.
//   - WriteYAML: the same pieces as a structured YAML document.
//
// Errors:
//
//   - A cell outside its box or a repeated cell is a data-integrity error
//     (piece.ErrCellOutOfBounds, piece.ErrDuplicateCell). Render never clamps;
//     MustRender panics.
//   - Write failures are returned wrapped with the piece name.
//
// The renderer keeps no state between calls and is safe for concurrent use.
package render

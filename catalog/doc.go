// SPDX-License-Identifier: MIT

// Package catalog is the immutable table of the 12 Hexed puzzle pieces and
// their 63 orientations.
//
// The table is hand-encoded (data.go) and validated once, on first access.
// A data-integrity violation is a programming error: the first reader panics
// with the wrapped piece error instead of seeing silently wrong shapes.
// All accessors return copies; there is no write path.
//
// The pieces are the placement primitives of a BoardWidth×BoardHeight
// solver; the catalog itself performs no search.
package catalog

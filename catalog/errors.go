// SPDX-License-Identifier: MIT

package catalog

import "errors"

var (
	// ErrIndexOutOfRange indicates a piece index outside [0, Count).
	ErrIndexOutOfRange = errors.New("catalog: piece index out of range")
	// ErrUnknownPiece indicates a name not present in the catalog.
	ErrUnknownPiece = errors.New("catalog: unknown piece")
	// ErrVariantMismatch indicates a piece whose orientations differ from the
	// dihedral variants of its first orientation.
	ErrVariantMismatch = errors.New("catalog: orientations do not match dihedral variants")
)

// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by storage, codecs and operators.
// This file intentionally contains ONLY small value types and the read-only
// View interface. Errors and options live in errors.go and options.go.
package sparse

// Coord is a zero-based (row, col) key into the sparse mapping.
// Using a comparable struct keeps the key collision-free for every valid
// index pair without packing tricks.
type Coord struct {
	Row int // zero-based row index
	Col int // zero-based column index
}

// Entry is one stored (non-zero) cell of a Matrix.
type Entry struct {
	Row   int   // zero-based row index
	Col   int   // zero-based column index
	Value int64 // never 0 when produced by this package
}

// View is the read-only surface shared by *Matrix and *Dense.
// FromView and ValidateSameShape accept a View so dense fixtures can be read
// or shape-checked against sparse results without conversions at the call site.
type View interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At returns the value at (i, j) or an ErrOutOfRange-wrapped error.
	// Complexity: O(1).
	At(i, j int) (int64, error)
}

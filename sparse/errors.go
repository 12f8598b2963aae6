// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinels plus the ParseError carrier.
// Every public entry point returns one of these (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is / errors.As.
// Nothing in this package panics on user-triggered conditions; panics are
// reserved for nonsensical Option arguments (programmer error).

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." so failures are easy to grep.
// Sentinels are returned wrapped with a call-site tag ("Add: ...", "Set(3,1): ...");
// callers still match them with errors.Is.

var (
	// ErrFormat is returned when serialized input is malformed: missing or bad
	// rows=/cols= header, broken entry syntax, non-integer fields, or coordinates
	// outside the declared shape. A parse that fails never returns a matrix.
	ErrFormat = errors.New("sparse: malformed matrix input")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g., Add/Sub of
	// different shapes, or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside [0,rows)×[0,cols).
	// At/Set return this instead of silently reading zero.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrInvalidDimensions indicates that a requested shape has a negative dimension,
	// or that a full-grid (Dense, gonum) shape exceeds MaxDenseCells.
	ErrInvalidDimensions = errors.New("sparse: invalid dimensions")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an argument or used
	// as the receiver of At/Set.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNotIntegral is returned by FromGonum when a source cell is NaN, ±Inf,
	// has a fractional part or does not fit into int64.
	ErrNotIntegral = errors.New("sparse: value is not an int64 integer")

	// ErrUnknownOp is returned by ParseOp and Apply for names/values outside the Op set.
	ErrUnknownOp = errors.New("sparse: unknown operation")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// Kept so errors.Is(err, ErrIndexOutOfBounds) reads naturally at call sites.
var ErrIndexOutOfBounds = ErrOutOfRange

// ParseError describes a rejected line of serialized input.
// Line is the 1-based physical line number in the input (0 when the failure is
// not tied to a single line, e.g. a missing header).
// It always unwraps to ErrFormat (plus Err when Err is another sentinel).
type ParseError struct {
	Line int    // 1-based physical line; 0 when not line-bound
	Text string // offending (trimmed) line content or coordinate
	Msg  string // short reason
	Err  error  // optional underlying cause (strconv error, ErrOutOfRange, ...)
}

// Error implements error.
func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Text != "":
		return fmt.Sprintf("%s: line %d %q: %s", ErrFormat, e.Line, e.Text, e.Msg)
	case e.Line > 0:
		return fmt.Sprintf("%s: line %d: %s", ErrFormat, e.Line, e.Msg)
	}

	return fmt.Sprintf("%s: %s", ErrFormat, e.Msg)
}

// Unwrap exposes ErrFormat and the optional cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFormat}
	}

	return []error{ErrFormat, e.Err}
}

// parseErrorf builds a *ParseError for the given line.
func parseErrorf(line int, text string, cause error, format string, args ...any) error {
	return &ParseError{Line: line, Text: text, Msg: fmt.Sprintf(format, args...), Err: cause}
}

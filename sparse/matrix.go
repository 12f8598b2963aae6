// SPDX-License-Identifier: MIT

// Package sparse - coordinate-keyed storage & safe accessors.
//
// Purpose:
//   - Keep only non-zero cells in a map keyed by Coord (dictionary-of-keys layout).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking
//     and never silently read out-of-range cells as zero.
//   - Funnel every mutation through Set so the zero-elision invariant always holds.
//
// Complexity quicksheet:
//   - New: O(1); At/Set: O(1) average; Entries/Range/String: O(nnz·log nnz);
//     Clone/Equal: O(nnz).

package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// matrixIndexErrorf wraps an error with a uniform Matrix context and callsite indices.
// Produces "Matrix.<method>(row,col): <sentinel>" while preserving the sentinel via %w.
func matrixIndexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a rows×cols integer matrix that stores only its non-zero cells.
//   - r,c hold the shape; both are fixed for the lifetime of the instance.
//   - data maps every stored coordinate to a value that is never 0.
//
// The zero value is not usable; construct with New (or Parse/Read/Load, or
// receive one from Add/Sub/Mul). A Matrix is not safe for concurrent mutation;
// concurrent readers are fine as long as nobody calls Set.
type Matrix struct {
	r, c int             // row and column counts (>= 0)
	data map[Coord]int64 // non-zero cells only
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ View         = (*Matrix)(nil)
	_ fmt.Stringer = (*Matrix)(nil)
)

// New creates an empty rows×cols matrix (every cell reads as 0).
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity: O(1).
func New(rows, cols int) (*Matrix, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}

	return newMatrix(rows, cols, 0), nil
}

// newMatrix allocates storage with a capacity hint. Callers guarantee a valid shape.
func newMatrix(rows, cols, hint int) *Matrix {
	return &Matrix{r: rows, c: cols, data: make(map[Coord]int64, hint)}
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// NNZ returns the number of stored (non-zero) cells.
func (m *Matrix) NNZ() int { return len(m.data) }

// IsZero reports whether no cell is stored, i.e. the matrix is all zeros.
func (m *Matrix) IsZero() bool { return len(m.data) == 0 }

// At returns the value at (row, col), or 0 when the cell is not stored.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrOutOfRange when row ∉ [0,Rows()) or col ∉ [0,Cols()).
//
// Complexity: O(1) average.
func (m *Matrix) At(row, col int) (int64, error) {
	if m == nil {
		return 0, matrixIndexErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	if !inBounds(m.r, m.c, row, col) {
		return 0, matrixIndexErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[Coord{Row: row, Col: col}], nil
}

// Set assigns v at (row, col). Setting 0 removes the cell (no-op when absent),
// so storing a zero is indistinguishable from never storing it.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrOutOfRange when row ∉ [0,Rows()) or col ∉ [0,Cols()).
//
// Complexity: O(1) average.
func (m *Matrix) Set(row, col int, v int64) error {
	if m == nil {
		return matrixIndexErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	if !inBounds(m.r, m.c, row, col) {
		return matrixIndexErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.put(Coord{Row: row, Col: col}, v)

	return nil
}

// put writes v at an already validated key, enforcing zero-elision.
func (m *Matrix) put(key Coord, v int64) {
	if v == 0 {
		delete(m.data, key) // no-op when absent
		return
	}
	m.data[key] = v
}

// Entries returns every stored cell in row-major order (row asc, then col asc).
// The slice is freshly allocated; mutating it does not affect m.
// Complexity: O(nnz·log nnz).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.data))
	for k, v := range m.data {
		out = append(out, Entry{Row: k.Row, Col: k.Col, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}

// Range calls fn for every stored cell in row-major order until fn returns false.
// fn must not mutate m.
func (m *Matrix) Range(fn func(e Entry) bool) {
	for _, e := range m.Entries() {
		if !fn(e) {
			return
		}
	}
}

// Clone returns a deep copy; the copy shares no storage with m.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	out := newMatrix(m.r, m.c, len(m.data))
	for k, v := range m.data {
		out.data[k] = v
	}

	return out
}

// Equal reports whether m and other have the same shape and the same entry set.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(nnz).
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c || len(m.data) != len(other.data) {
		return false
	}
	for k, v := range m.data {
		if ov, ok := other.data[k]; !ok || ov != v {
			return false
		}
	}

	return true
}

// String renders a short debugging summary followed by the stored entries,
// e.g. "Matrix(2x2, nnz=1){(1, 1, 2)}".
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix(%dx%d, nnz=%d){", m.r, m.c, len(m.data))
	for i, e := range m.Entries() {
		if i > 0 {
			sb.WriteString(", ")
		}
		_ = writeEntry(&sb, e)
	}
	sb.WriteByte('}')

	return sb.String()
}

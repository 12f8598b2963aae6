// SPDX-License-Identifier: MIT

// Package sparse - Dense storage (row-major) & conversions.
//
// Purpose:
//   - Provide a plain row-major int64 buffer for small fixtures, debugging output
//     and interop with code that wants a full grid.
//   - Keep the same safety contract as Matrix: At/Set return errors instead of
//     panicking.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); ToDense: O(r*c + nnz); FromDense: O(r*c).

package sparse

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major int64 matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts (>= 0)
	data []int64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ View         = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0, cols < 0 or rows*cols > MaxDenseCells.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := ValidateDenseShape(rows, cols); err != nil {
		return nil, err
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.r }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Keep unexported so the public surface never panics.
func (d *Dense) indexOf(method string, row, col int) (int, error) {
	if !inBounds(d.r, d.c, row, col) {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*d.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (d *Dense) At(row, col int) (int64, error) {
	idx, err := d.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return d.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (d *Dense) Set(row, col int, v int64) error {
	idx, err := d.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	d.data[idx] = v

	return nil
}

// String renders one bracketed row per line, e.g. "[1, 0]\n[0, 2]\n".
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatInt(d.data[i*d.c+j], 10))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// ToDense expands m into a full row-major grid.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidDimensions when rows*cols > MaxDenseCells.
func ToDense(m *Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	if err := ValidateDenseShape(m.r, m.c); err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	d := &Dense{r: m.r, c: m.c, data: make([]int64, m.r*m.c)}
	for k, v := range m.data {
		d.data[k.Row*d.c+k.Col] = v
	}

	return d, nil
}

// FromView builds a Matrix by reading every cell of v; zero cells are not stored.
// Shapes above MaxDenseCells are rejected with ErrInvalidDimensions.
// Complexity: O(r*c) reads.
func FromView(v View) (*Matrix, error) {
	if v == nil {
		return nil, matrixErrorf("FromView", ErrNilMatrix)
	}
	rows, cols := v.Rows(), v.Cols()
	if err := ValidateDenseShape(rows, cols); err != nil {
		return nil, matrixErrorf("FromView", err)
	}

	m := newMatrix(rows, cols, 0)
	var (
		i, j int
		x    int64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if x, err = v.At(i, j); err != nil {
				return nil, matrixErrorf("FromView", err)
			}
			m.put(Coord{Row: i, Col: j}, x)
		}
	}

	return m, nil
}

// FromDense is FromView specialised for *Dense; it reads the flat buffer directly.
func FromDense(d *Dense) (*Matrix, error) {
	if d == nil {
		return nil, matrixErrorf("FromDense", ErrNilMatrix)
	}
	m := newMatrix(d.r, d.c, 0)
	for idx, x := range d.data {
		m.put(Coord{Row: idx / d.c, Col: idx % d.c}, x)
	}

	return m, nil
}

// FromRows builds a Matrix from a rectangular [][]int64 literal.
// An empty slice yields a 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch when rows have different lengths.
func FromRows(rows [][]int64) (*Matrix, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m := newMatrix(r, c, 0)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf("FromRows", fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		for j, x := range row {
			m.put(Coord{Row: i, Col: j}, x)
		}
	}

	return m, nil
}

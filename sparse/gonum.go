// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// int64 range as float64 bounds: [-2^63, 2^63).
const (
	minInt64Float = -(1 << 63)
	maxInt64Float = 1 << 63
)

// ToGonum expands m into a gonum *mat.Dense for use with gonum's dense kernels.
// Values above 2^53 in magnitude lose precision in float64.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidDimensions when m has a zero dimension (gonum has no 0×n matrices)
//     or more than MaxDenseCells cells.
func ToGonum(m *Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf("ToGonum", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrInvalidDimensions))
	}
	if err := ValidateDenseShape(m.r, m.c); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	g := mat.NewDense(m.r, m.c, nil)
	for k, v := range m.data {
		g.Set(k.Row, k.Col, float64(v))
	}

	return g, nil
}

// FromGonum converts any gonum matrix whose cells are exact int64 integers.
//
// Errors:
//   - ErrNilMatrix for a nil source.
//   - ErrNotIntegral for NaN, ±Inf, fractional or out-of-int64-range cells.
func FromGonum(a mat.Matrix) (*Matrix, error) {
	if a == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := a.Dims()
	m := newMatrix(r, c, 0)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = a.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v < minInt64Float || v >= maxInt64Float {
				return nil, matrixErrorf("FromGonum", fmt.Errorf("(%d,%d)=%g: %w", i, j, v, ErrNotIntegral))
			}
			m.put(Coord{Row: i, Col: j}, int64(v))
		}
	}

	return m, nil
}

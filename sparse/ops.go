// SPDX-License-Identifier: MIT
// Package sparse provides the algebraic operators over *Matrix: element-wise
// addition and subtraction and the matrix product. All of them perform strict
// fail-fast validation, never mutate their operands and always return a
// freshly allocated result.
//
// Numeric policy:
//   - Values are int64 and arithmetic is plain Go two's-complement arithmetic:
//     overflow wraps silently and is not reported. Wrapping addition and
//     multiplication are associative and commutative, so results never depend on
//     map iteration order.

package sparse

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opApply = "Apply"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the merge loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: copy a's entries into a fresh map (they are already non-zero).
//   - Stage 3: merge sign*b entry by entry through put, which drops cells whose
//     sum cancels to zero.
//
// Behavior highlights:
//   - Only coordinates stored in a or b are ever touched; absent-in-both cells
//     never appear in the result.
//   - Inputs remain immutable.
//
// Complexity:
//   - Time O(nnz(a) + nnz(b)), Space O(nnz(a) + nnz(b)).
func addSub(a, b *Matrix, sign int64, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newMatrix(a.r, a.c, len(a.data)+len(b.data))
	for k, v := range a.data {
		res.data[k] = v
	}
	for k, v := range b.data {
		res.put(k, res.data[k]+sign*v)
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity: O(nnz(A) + nnz(B)).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity: O(nnz(A) + nnz(B)).
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// rowIndex groups a matrix's stored cells by row: row -> [(col, value)].
// Built once per Mul so each A entry finds B's row k in O(1).
type rowIndex map[int][]Entry

// indexRows builds the row index of m in O(nnz(m)).
func indexRows(m *Matrix) rowIndex {
	idx := make(rowIndex)
	for k, v := range m.data {
		idx[k.Row] = append(idx[k.Row], Entry{Row: k.Row, Col: k.Col, Value: v})
	}

	return idx
}

// Mul performs the matrix product C = A × B without touching zero cells.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: index B's stored cells by row once.
//   - Stage 3: for each stored A[i,k] and each stored B[k,j], accumulate
//     A[i,k]*B[k,j] into C[i,j]. Contributions from several k land in the same
//     cell through the accumulator map.
//   - Stage 4: elide every cell whose final sum is zero.
//
// Behavior highlights:
//   - Never iterates the dense (rows × shared × cols) index space; the work is
//     proportional to the number of matching (A[i,k], B[k,j]) pairs.
//   - Intermediate sums are allowed to pass through zero; only the final sum
//     decides whether a cell is stored.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (A.Cols != B.Rows).
//
// Complexity:
//   - Time O(nnz(B) + Σ_{(i,k)∈A} nnz(B[k,:])), Space O(nnz(B) + nnz(C)).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := newMatrix(a.r, b.c, 0)
	if len(a.data) == 0 || len(b.data) == 0 {
		return res, nil // product with an all-zero operand is all zeros
	}

	bRows := indexRows(b)
	acc := make(map[Coord]int64)
	for ak, av := range a.data {
		for _, be := range bRows[ak.Col] {
			acc[Coord{Row: ak.Row, Col: be.Col}] += av * be.Value
		}
	}
	for k, v := range acc {
		if v != 0 {
			res.data[k] = v
		}
	}

	return res, nil
}

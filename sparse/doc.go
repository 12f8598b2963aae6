// Package sparse implements an integer sparse matrix that stores only its
// non-zero cells, the three algebraic operators over it, and a human-readable
// text format for persistence.
//
// What:
//
//   - Matrix: rows×cols shape fixed at construction plus a map from Coord to
//     a non-zero int64. Storing 0 through Set removes the cell (zero-elision).
//   - Add / Sub: element-wise over the union of stored coordinates.
//   - Mul: matrix product that visits only stored cells: B is indexed by row
//     once and each stored A[i,k] is combined with B's row k.
//   - Parse / Read / Load and Format / Write / Save: the text codec.
//   - EncodeYAML / DecodeYAML and LoadAny / SaveAny: a YAML snapshot codec.
//   - Dense, ToDense / FromDense / FromRows and ToGonum / FromGonum: bridges to
//     full grids and to gonum.
//
// Text format:
//
//	rows=2
//	cols=2
//	(0, 0, 1)
//	(1, 1, 2)
//
// Errors:
//
//   - ErrFormat (as *ParseError) for malformed input, including coordinates
//     outside the declared shape.
//   - ErrDimensionMismatch when operand shapes are incompatible.
//   - ErrOutOfRange (alias ErrIndexOutOfBounds) for At/Set outside the shape.
//
// All sentinels are wrapped with the failing operation's name; match them
// with errors.Is. Operators never mutate their operands and never return a
// partial result.
//
// Numeric policy: int64 with silent two's-complement wrap-around on overflow.
//
// Complexity:
//
//   - At/Set: O(1) average.
//   - Add/Sub: O(nnz(A) + nnz(B)).
//   - Mul:     O(nnz(B) + Σ over stored A[i,k] of nnz(B row k)).
//   - Format:  O(nnz·log nnz) (row-major output).
package sparse

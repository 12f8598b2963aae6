// Package sparsemat is an integer sparse-matrix toolkit: storage, a plain-text
// codec and the three classic binary operators, sized for matrices where almost
// every cell is zero.
//
// What is in the box?
//
//	sparse/          - Matrix (dictionary-of-keys, int64), Parse/Format text codec,
//	                   YAML snapshots, Load/Save, Add/Sub/Mul, Dense and gonum bridges
//	internal/cli/    - cobra commands, viper configuration, slog logging
//	cmd/sparsemat/   - the sparsemat binary
//
// Text format:
//
//	rows=2
//	cols=2
//	(0, 0, 1)
//	(1, 1, 2)
//
// Guarantees:
//
//   - Only non-zero cells are stored; every mutation keeps it that way.
//   - Operators never modify their operands and always return a fresh Matrix.
//   - Mul touches stored entries only; it never walks rows×cols.
//   - Failures are sentinel errors (sparse.ErrFormat, sparse.ErrDimensionMismatch, ...)
//     matched with errors.Is; nothing panics on bad input.
//
// Quick start:
//
//	a, _ := sparse.Load("a.txt")
//	b, _ := sparse.Load("b.txt")
//	c, err := sparse.Mul(a, b)
//	if err != nil { /* handle */ }
//	_ = sparse.Save("c.txt", c)
//
// Or from the shell:
//
//	sparsemat multiply a.txt b.txt -o c.txt
package sparsemat

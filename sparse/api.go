// SPDX-License-Identifier: MIT
// Package sparse: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical kernels.
//   - Let callers that pick the operation at runtime (CLIs, config-driven jobs)
//     dispatch through Op / Apply instead of switching themselves.
//
// Facades never duplicate loops: each delegates to Add, Sub, Mul or New.

package sparse

import (
	"fmt"
	"strings"
)

// Op selects one of the supported binary operators.
type Op int

// Supported operators. The zero value is deliberately invalid.
const (
	OpAdd Op = iota + 1 // element-wise sum
	OpSub               // element-wise difference
	OpMul               // matrix product
)

// String returns the canonical lower-case name ("add", "subtract", "multiply").
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// opNames maps accepted spellings onto operators. Lookups are case-insensitive.
var opNames = map[string]Op{
	"add":      OpAdd,
	"sum":      OpAdd,
	"+":        OpAdd,
	"subtract": OpSub,
	"sub":      OpSub,
	"diff":     OpSub,
	"-":        OpSub,
	"multiply": OpMul,
	"mul":      OpMul,
	"product":  OpMul,
	"*":        OpMul,
}

// ParseOp resolves an operator name such as "add", "sub" or "multiply".
func ParseOp(name string) (Op, error) {
	op, ok := opNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("ParseOp(%q): %w", name, ErrUnknownOp)
	}

	return op, nil
}

// Apply runs op on (a, b). It is the single dispatch point used by the CLI.
//
// Errors:
//   - ErrUnknownOp for an invalid op; otherwise whatever the kernel returns.
func Apply(op Op, a, b *Matrix) (*Matrix, error) {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSub:
		return Sub(a, b)
	case OpMul:
		return Mul(a, b)
	default:
		return nil, matrixErrorf(opApply, fmt.Errorf("%v: %w", op, ErrUnknownOp))
	}
}

// Sum is an alias for Add.
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// NewIdentity returns I_n: ones on the diagonal, nothing else stored.
// Complexity: O(n).
func NewIdentity(n int) (*Matrix, error) {
	if err := ValidateShape(n, n); err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	m := newMatrix(n, n, n)
	for i := 0; i < n; i++ {
		m.data[Coord{Row: i, Col: i}] = 1
	}

	return m, nil
}

// ZerosLike returns an empty matrix with the same shape as m.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newMatrix(m.r, m.c, 0), nil
}

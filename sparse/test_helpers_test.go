// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for storage, codec and operator tests.
//   - Keep values small so products stay exact when compared against gonum (float64).

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
)

// MustNew allocates an empty r×c matrix or fails the test.
func MustNew(t testing.TB, r, c int) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(r, c)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// MustSet sets (i,j)=v or fails the test.
func MustSet(t testing.TB, m *sparse.Matrix, i, j int, v int64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%d): %v", i, j, v, err)
	}
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m sparse.View, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// FromEntries builds an r×c matrix holding the given cells (applied in order).
func FromEntries(t testing.TB, r, c int, entries ...sparse.Entry) *sparse.Matrix {
	t.Helper()
	m := MustNew(t, r, c)
	for _, e := range entries {
		MustSet(t, m, e.Row, e.Col, e.Value)
	}

	return m
}

// MustRows builds a matrix from a dense literal or fails the test.
func MustRows(t testing.TB, rows [][]int64) *sparse.Matrix {
	t.Helper()
	m, err := sparse.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// RandSparse fills an r×c matrix with values in [-9, 9] at the given density.
// Deterministic for a fixed seed; drawn zeros are simply not stored.
func RandSparse(t testing.TB, r, c int, density float64, seed int64) *sparse.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustNew(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if rng.Float64() < density {
				MustSet(t, m, i, j, rng.Int63n(19)-9)
			}
		}
	}

	return m
}

// e is a terse Entry literal for tables.
func e(row, col int, v int64) sparse.Entry {
	return sparse.Entry{Row: row, Col: col, Value: v}
}

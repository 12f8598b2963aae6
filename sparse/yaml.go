// SPDX-License-Identifier: MIT

package sparse

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// snapshot is the YAML shape of a Matrix:
//
//	rows: 2
//	cols: 2
//	entries: [[0, 0, 1], [1, 1, 2]]
type snapshot struct {
	Rows    int       `yaml:"rows"`
	Cols    int       `yaml:"cols"`
	Entries [][]int64 `yaml:"entries,flow"`
}

// Compile-time assertions for the yaml.v3 hooks.
var (
	_ yaml.Marshaler   = (*Matrix)(nil)
	_ yaml.Unmarshaler = (*Matrix)(nil)
)

// MarshalYAML implements yaml.Marshaler. Entries are emitted row-major.
func (m *Matrix) MarshalYAML() (any, error) {
	s := snapshot{Rows: m.r, Cols: m.c, Entries: make([][]int64, 0, len(m.data))}
	for _, e := range m.Entries() {
		s.Entries = append(s.Entries, []int64{int64(e.Row), int64(e.Col), e.Value})
	}

	return s, nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same validation as Parse
// (default options). On failure m is left untouched.
func (m *Matrix) UnmarshalYAML(node *yaml.Node) error {
	out, err := decodeNode(node, defaultOptions())
	if err != nil {
		return err
	}
	*m = *out

	return nil
}

// EncodeYAML writes m as a single YAML document.
func EncodeYAML(w io.Writer, m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("EncodeYAML", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return matrixErrorf("EncodeYAML", err)
	}

	return enc.Close()
}

// DecodeYAML reads one YAML document from r and validates it like Parse.
//
// Errors:
//   - *ParseError matching ErrFormat for an empty document, malformed YAML or
//     invalid contents.
func DecodeYAML(r io.Reader, opts ...Option) (*Matrix, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, parseErrorf(0, "", err, "empty YAML document")
		}

		return nil, parseErrorf(0, "", err, "invalid YAML")
	}
	// Decode(&node) yields a DocumentNode; the mapping is its only child.
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		return decodeNode(node.Content[0], gatherOptions(opts...))
	}

	return decodeNode(&node, gatherOptions(opts...))
}

// rawSnapshot keeps each entry as its own node so errors can point at the
// entry's line rather than the enclosing mapping.
type rawSnapshot struct {
	Rows    int         `yaml:"rows"`
	Cols    int         `yaml:"cols"`
	Entries []yaml.Node `yaml:"entries"`
}

// decodeNode converts a mapping node into a validated Matrix.
func decodeNode(node *yaml.Node, o Options) (*Matrix, error) {
	var s rawSnapshot
	if err := node.Decode(&s); err != nil {
		return nil, parseErrorf(node.Line, "", err, "invalid matrix document")
	}
	if err := ValidateShape(s.Rows, s.Cols); err != nil {
		return nil, parseErrorf(node.Line, fmt.Sprintf("rows=%d cols=%d", s.Rows, s.Cols), err,
			"rows and cols must be non-negative")
	}

	m := newMatrix(s.Rows, s.Cols, len(s.Entries))
	var t []int64
	for i := range s.Entries {
		en := &s.Entries[i]
		t = t[:0]
		if err := en.Decode(&t); err != nil {
			return nil, parseErrorf(en.Line, "", err, "entry %d: expected [row, col, value]", i)
		}
		text := fmt.Sprint(t)
		if len(t) != _fieldsWant {
			return nil, parseErrorf(en.Line, text, nil, "entry %d: expected %d fields, got %d", i, _fieldsWant, len(t))
		}
		if t[0] < 0 || t[1] < 0 || t[0] >= int64(s.Rows) || t[1] >= int64(s.Cols) {
			return nil, parseErrorf(en.Line, text, ErrOutOfRange,
				"entry %d: coordinate (%d, %d) outside %dx%d", i, t[0], t[1], s.Rows, s.Cols)
		}
		if t[2] == 0 && o.rejectZeroValues {
			return nil, parseErrorf(en.Line, text, nil, "entry %d: zero value is not allowed", i)
		}
		m.put(Coord{Row: int(t[0]), Col: int(t[1])}, t[2])
	}

	return m, nil
}

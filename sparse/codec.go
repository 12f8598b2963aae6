// SPDX-License-Identifier: MIT

// Package sparse: line-oriented text codec.
//
// Format:
//
//	rows=<non-negative integer>
//	cols=<non-negative integer>
//	(<row>, <col>, <value>)
//	...
//
// Leading/trailing whitespace on every line is ignored and blank lines are
// skipped. Writers emit entries in row-major order and never emit zero values;
// readers accept zero values (collapsing them to "absent") unless
// WithRejectZeroValues is set.

package sparse

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ---------- Format literals ----------

const (
	_hdrRows    = "rows"
	_hdrCols    = "cols"
	_hdrSep     = "="
	_entryOpen  = "("
	_entryClose = ")"
	_entrySep   = ","
	_entryJoin  = ", "
	_fieldsWant = 3
)

// sourceLine is a trimmed, non-blank input line with its physical position.
type sourceLine struct {
	no   int    // 1-based physical line number
	text string // trimmed content
}

// Parse decodes a matrix from its text form.
//
// Errors:
//   - *ParseError matching ErrFormat on any malformed input; no partial matrix
//     is ever returned.
//
// Complexity: O(len(text) + nnz).
func Parse(text string, opts ...Option) (*Matrix, error) {
	return Read(strings.NewReader(text), opts...)
}

// Read decodes a matrix from r. The reader is consumed up to EOF (or the first
// failure); Read does not close it.
func Read(r io.Reader, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	lines, err := scanLines(r, o.maxLineBytes)
	if err != nil {
		return nil, err
	}

	return parseLines(lines, o)
}

// scanLines collects trimmed non-blank lines, keeping their physical numbers.
func scanLines(r io.Reader, maxLineBytes int) ([]sourceLine, error) {
	sc := bufio.NewScanner(r)
	initial := 64 * 1024
	if maxLineBytes < initial {
		initial = maxLineBytes
	}
	sc.Buffer(make([]byte, 0, initial), maxLineBytes)

	var (
		lines []sourceLine
		no    int
	)
	for sc.Scan() {
		no++
		if t := strings.TrimSpace(sc.Text()); t != "" {
			lines = append(lines, sourceLine{no: no, text: t})
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, parseErrorf(no+1, "", err, "line exceeds %d bytes", maxLineBytes)
		}

		return nil, err // I/O failure from the underlying reader, not a format problem
	}

	return lines, nil
}

// parseLines validates the header, then applies every entry through put.
func parseLines(lines []sourceLine, o Options) (*Matrix, error) {
	if len(lines) < 2 {
		return nil, parseErrorf(0, "", nil,
			"expected %q and %q header lines, got %d non-blank line(s)", _hdrRows+_hdrSep, _hdrCols+_hdrSep, len(lines))
	}
	rows, err := parseHeader(lines[0], _hdrRows)
	if err != nil {
		return nil, err
	}
	cols, err := parseHeader(lines[1], _hdrCols)
	if err != nil {
		return nil, err
	}

	m := newMatrix(rows, cols, len(lines)-2)
	var e Entry
	for _, ln := range lines[2:] {
		if e, err = parseEntry(ln); err != nil {
			return nil, err
		}
		if !inBounds(rows, cols, e.Row, e.Col) {
			return nil, parseErrorf(ln.no, ln.text, ErrOutOfRange,
				"coordinate (%d, %d) outside %dx%d", e.Row, e.Col, rows, cols)
		}
		if e.Value == 0 && o.rejectZeroValues {
			return nil, parseErrorf(ln.no, ln.text, nil, "zero value is not allowed")
		}
		m.put(Coord{Row: e.Row, Col: e.Col}, e.Value) // last write wins
	}

	return m, nil
}

// parseHeader reads "<key>=<non-negative integer>".
func parseHeader(ln sourceLine, key string) (int, error) {
	parts := strings.Split(ln.text, _hdrSep)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) != key {
		return 0, parseErrorf(ln.no, ln.text, nil, "expected %s=<integer>", key)
	}
	n, err := parseIndex(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, parseErrorf(ln.no, ln.text, err, "%s must be a non-negative integer", key)
	}

	return n, nil
}

// parseEntry reads "(<row>, <col>, <value>)". Bounds are checked by the caller.
func parseEntry(ln sourceLine) (Entry, error) {
	t := ln.text
	if len(t) < 2 || !strings.HasPrefix(t, _entryOpen) || !strings.HasSuffix(t, _entryClose) {
		return Entry{}, parseErrorf(ln.no, t, nil, "expected (row, col, value)")
	}
	parts := strings.Split(t[1:len(t)-1], _entrySep)
	if len(parts) != _fieldsWant {
		return Entry{}, parseErrorf(ln.no, t, nil, "expected %d fields, got %d", _fieldsWant, len(parts))
	}

	row, err := parseIndex(strings.TrimSpace(parts[0]))
	if err != nil {
		return Entry{}, parseErrorf(ln.no, t, err, "row must be a non-negative integer")
	}
	col, err := parseIndex(strings.TrimSpace(parts[1]))
	if err != nil {
		return Entry{}, parseErrorf(ln.no, t, err, "col must be a non-negative integer")
	}
	v, err := parseValue(strings.TrimSpace(parts[2]))
	if err != nil {
		return Entry{}, parseErrorf(ln.no, t, err, "value must be an integer")
	}

	return Entry{Row: row, Col: col, Value: v}, nil
}

// errNotDigits marks a field that contains something other than ASCII digits.
var errNotDigits = errors.New("not a decimal digit string")

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// parseIndex accepts digits only: no sign, no spaces, no underscores.
func parseIndex(s string) (int, error) {
	if !isDigits(s) {
		return 0, errNotDigits
	}

	return strconv.Atoi(s)
}

// parseValue accepts an optional leading '-' followed by digits.
func parseValue(s string) (int64, error) {
	if !isDigits(strings.TrimPrefix(s, "-")) {
		return 0, errNotDigits
	}

	return strconv.ParseInt(s, 10, 64)
}

// Format renders m in the text format. A nil matrix renders as "".
// Complexity: O(nnz·log nnz).
func Format(m *Matrix) string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	_ = writeText(&sb, m) // strings.Builder never fails

	return sb.String()
}

// Write renders m in the text format to w through a buffered writer.
//
// Errors:
//   - ErrNilMatrix for a nil matrix; otherwise the first write error.
func Write(w io.Writer, m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Write", err)
	}
	bw := bufio.NewWriter(w)
	if err := writeText(bw, m); err != nil {
		return err
	}

	return bw.Flush()
}

// writeText emits the header and every entry in row-major order.
func writeText(w io.StringWriter, m *Matrix) error {
	header := _hdrRows + _hdrSep + strconv.Itoa(m.r) + "\n" +
		_hdrCols + _hdrSep + strconv.Itoa(m.c) + "\n"
	if _, err := w.WriteString(header); err != nil {
		return err
	}
	for _, e := range m.Entries() {
		if err := writeEntry(w, e); err != nil {
			return err
		}
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
	}

	return nil
}

// writeEntry emits "(row, col, value)" without a trailing newline.
func writeEntry(w io.StringWriter, e Entry) error {
	_, err := w.WriteString(_entryOpen +
		strconv.Itoa(e.Row) + _entryJoin +
		strconv.Itoa(e.Col) + _entryJoin +
		strconv.FormatInt(e.Value, 10) + _entryClose)

	return err
}

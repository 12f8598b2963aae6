// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Encoding names a serialized representation.
type Encoding int

// Supported encodings.
const (
	EncodingText Encoding = iota // rows=/cols= header + (row, col, value) lines
	EncodingYAML                 // rows/cols/entries mapping
)

// String returns "text" or "yaml".
func (e Encoding) String() string {
	if e == EncodingYAML {
		return "yaml"
	}

	return "text"
}

// EncodingFor picks the encoding from a file extension: ".yaml"/".yml" → YAML,
// anything else → text.
func EncodingFor(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return EncodingYAML
	default:
		return EncodingText
	}
}

// Load reads a text-encoded matrix from path. The file is closed on every
// return path, including parse failures partway through.
func Load(path string, opts ...Option) (*Matrix, error) {
	return load(path, EncodingText, opts...)
}

// LoadAny is Load with the encoding chosen by EncodingFor(path).
func LoadAny(path string, opts ...Option) (*Matrix, error) {
	return load(path, EncodingFor(path), opts...)
}

func load(path string, enc Encoding, opts ...Option) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	defer f.Close() // read-only handle; a close error cannot lose data

	var m *Matrix
	if enc == EncodingYAML {
		m, err = DecodeYAML(f, opts...)
	} else {
		m, err = Read(f, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return m, nil
}

// Save writes m to path in the text encoding, creating missing parent
// directories. The data goes to a temporary file in the same directory that is
// renamed over path only after a successful write and close, so a failed Save
// never leaves a truncated file at path. The result has mode 0644.
func Save(path string, m *Matrix) error {
	return save(path, m, EncodingText)
}

// SaveAny is Save with the encoding chosen by EncodingFor(path).
func SaveAny(path string, m *Matrix) error {
	return save(path, m, EncodingFor(path))
}

func save(path string, m *Matrix, enc Encoding) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("Save(%s): mkdir %s: %w", path, dir, err)
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}
	if err = writeTemp(tmp, m, enc); err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		_ = os.Remove(tmp.Name()) // best effort; the original error matters
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	return nil
}

// writeTemp encodes m into f, sets the final mode and closes f. A failing Close
// is reported, since it may mean the data never reached disk.
func writeTemp(f *os.File, m *Matrix, enc Encoding) error {
	var err error
	if enc == EncodingYAML {
		err = EncodeYAML(f, m)
	} else {
		err = Write(f, m)
	}
	if err == nil {
		err = f.Chmod(0o644)
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close: %w", cerr)
	}

	return err
}

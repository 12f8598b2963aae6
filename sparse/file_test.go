// SPDX-License-Identifier: MIT

package sparse_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_Text(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "m.txt") // parents do not exist yet
	m := RandSparse(t, 7, 3, 0.5, 99)

	require.NoError(t, sparse.Save(path, m))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, sparse.Format(m), string(raw))

	got, err := sparse.Load(path)
	require.NoError(t, err)
	require.True(t, got.Equal(m))
}

func TestSaveLoadAny_PicksEncoding(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	m := FromEntries(t, 3, 3, e(0, 2, 8), e(2, 2, -1))

	for _, name := range []string{"m.yaml", "m.YML", "m.txt", "m.matrix"} {
		path := filepath.Join(dir, name)
		require.NoError(t, sparse.SaveAny(path, m), name)

		got, err := sparse.LoadAny(path)
		require.NoError(t, err, name)
		require.True(t, got.Equal(m), name)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "m.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(raw), "entries:")
}

func TestEncodingFor(t *testing.T) {
	t.Parallel()
	require.Equal(t, sparse.EncodingYAML, sparse.EncodingFor("a/b.yaml"))
	require.Equal(t, sparse.EncodingYAML, sparse.EncodingFor("B.YML"))
	require.Equal(t, sparse.EncodingText, sparse.EncodingFor("b.txt"))
	require.Equal(t, sparse.EncodingText, sparse.EncodingFor("noext"))
	require.Equal(t, "yaml", sparse.EncodingYAML.String())
	require.Equal(t, "text", sparse.EncodingText.String())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := sparse.Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.NotErrorIs(t, err, sparse.ErrFormat)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("rows=2\ncols=2\n(0,0,1)\n(9,9,9)\n"), 0o644))

	m, err := sparse.Load(path)
	require.ErrorIs(t, err, sparse.ErrFormat)
	require.Nil(t, m)
}

func TestLoad_RejectZeroValuesOption(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "zeros.txt")
	require.NoError(t, os.WriteFile(path, []byte("rows=1\ncols=1\n(0,0,0)\n"), 0o644))

	_, err := sparse.Load(path)
	require.NoError(t, err)
	_, err = sparse.Load(path, sparse.WithRejectZeroValues())
	require.ErrorIs(t, err, sparse.ErrFormat)
}

func TestSave_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.ErrorIs(t, sparse.Save(filepath.Join(dir, "nil.txt"), nil), sparse.ErrNilMatrix)

	// A regular file where a parent directory should be.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	require.Error(t, sparse.Save(filepath.Join(blocker, "m.txt"), MustNew(t, 1, 1)))
}

func TestSave_ReplacesWithoutLeftovers(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "m.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the new file\n"), 0o600))

	m := FromEntries(t, 1, 1, e(0, 0, 3))
	require.NoError(t, sparse.Save(path, m))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "rows=1\ncols=1\n(0, 0, 3)\n", string(raw))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, names, 1, "no temporary files left behind")
}

func TestSave_FailureLeavesTargetAndNoTempFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// A directory at the target path makes the final rename fail.
	target := filepath.Join(dir, "m.yaml")
	require.NoError(t, os.Mkdir(target, 0o755))
	keep := filepath.Join(target, "keep.txt")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o644))

	require.Error(t, sparse.SaveAny(target, FromEntries(t, 2, 2, e(1, 0, 4))))

	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, names, 1)
	require.True(t, names[0].IsDir())
	raw, err := os.ReadFile(keep)
	require.NoError(t, err)
	require.Equal(t, "x", string(raw))
}

// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/internal/cli"
	"github.com/katalvlaran/sparsemat/sparse"
)

// writeFile writes content under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// run executes the CLI and returns exit code, stdout and stderr.
func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := cli.Execute(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

const (
	matA = "rows=2\ncols=2\n(0,0,1)\n(0,1,2)\n(1,0,3)\n(1,1,4)\n"
	matB = "rows=2\ncols=2\n(0,1,1)\n(1,0,1)\n"
)

func TestBinaryCommands_Stdout(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", matA)
	b := writeFile(t, dir, "b.txt", matB)

	cases := map[string]string{
		"add":      "rows=2\ncols=2\n(0, 0, 1)\n(0, 1, 3)\n(1, 0, 4)\n(1, 1, 4)\n",
		"sum":      "rows=2\ncols=2\n(0, 0, 1)\n(0, 1, 3)\n(1, 0, 4)\n(1, 1, 4)\n",
		"subtract": "rows=2\ncols=2\n(0, 0, 1)\n(0, 1, 1)\n(1, 0, 2)\n(1, 1, 4)\n",
		"sub":      "rows=2\ncols=2\n(0, 0, 1)\n(0, 1, 1)\n(1, 0, 2)\n(1, 1, 4)\n",
		"multiply": "rows=2\ncols=2\n(0, 0, 2)\n(0, 1, 1)\n(1, 0, 4)\n(1, 1, 3)\n",
		"mul":      "rows=2\ncols=2\n(0, 0, 2)\n(0, 1, 1)\n(1, 0, 4)\n(1, 1, 3)\n",
	}
	for name, want := range cases {
		code, out, errOut := run(t, name, a, b)
		require.Equal(t, 0, code, "%s: %s", name, errOut)
		require.Equal(t, want, out, name)
	}
}

func TestBinaryCommand_OutputFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", matA)
	b := writeFile(t, dir, "b.txt", matB)
	out := filepath.Join(dir, "out", "c.yaml")

	code, stdout, stderr := run(t, "multiply", a, b, "-o", out)
	require.Equal(t, 0, code, stderr)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "result written")

	got, err := sparse.LoadAny(out)
	require.NoError(t, err)
	want, err := sparse.FromRows([][]int64{{2, 1}, {4, 3}})
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}

func TestBinaryCommand_Failures(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", matA)
	wide := writeFile(t, dir, "wide.txt", "rows=2\ncols=3\n")
	bad := writeFile(t, dir, "bad.txt", "rows=2\ncols=2\n(0,0,1,2)\n")

	for _, args := range [][]string{
		{"add", a, wide},
		{"multiply", wide, a},
		{"add", a, bad},
		{"add", a, filepath.Join(dir, "missing.txt")},
		{"add", a},
		{"divide", a, a},
	} {
		code, stdout, stderr := run(t, args...)
		require.Equal(t, 1, code, "%v", args)
		require.Empty(t, stdout, "%v", args)
		require.Contains(t, stderr, "command failed", "%v", args)
	}
}

func TestRejectZerosFlag(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	z := writeFile(t, dir, "z.txt", "rows=1\ncols=1\n(0,0,0)\n")

	code, _, _ := run(t, "add", z, z)
	require.Equal(t, 0, code)

	code, _, stderr := run(t, "--reject-zeros", "add", z, z)
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "malformed matrix input")
}

func TestShow(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "m.yaml", "rows: 3\ncols: 4\nentries: [[2, 3, -5]]\n")

	code, out, stderr := run(t, "show", path)
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "# 3x4 nnz=1\nrows=3\ncols=4\n(2, 3, -5)\n", out)
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", matA)
	b := writeFile(t, dir, "b.txt", matB)
	out := filepath.Join(dir, "c.txt")
	cfg := writeFile(t, dir, "job.yaml",
		"op: subtract\na: "+a+"\nb: "+b+"\noutput: "+out+"\nlog-level: debug\n")

	code, _, stderr := run(t, "run", "--config", cfg)
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stderr, "operands loaded", "debug level comes from the file")

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "rows=2\ncols=2\n(0, 0, 1)\n(0, 1, 1)\n(1, 0, 2)\n(1, 1, 4)\n", string(raw))
}

func TestRun_FlagOverridesConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", matA)
	b := writeFile(t, dir, "b.txt", matB)
	cfg := writeFile(t, dir, "job.yaml",
		"op: add\na: "+a+"\nb: "+b+"\noutput: "+filepath.Join(dir, "ignored.txt")+"\n")
	out := filepath.Join(dir, "flag.yml")

	code, _, stderr := run(t, "run", "--config", cfg, "-o", out, "--log-level", "error")
	require.Equal(t, 0, code, stderr)
	require.NotContains(t, stderr, "result written")

	_, err := os.Stat(out)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "ignored.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_Environment(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", matA)
	b := writeFile(t, dir, "b.txt", matB)
	t.Setenv("SPARSEMAT_OP", "mul")
	t.Setenv("SPARSEMAT_A", a)
	t.Setenv("SPARSEMAT_B", b)

	code, out, stderr := run(t, "run")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "rows=2\ncols=2\n(0, 0, 2)\n(0, 1, 1)\n(1, 0, 4)\n(1, 1, 3)\n", out)
}

func TestRun_MissingSettings(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg := writeFile(t, dir, "job.yaml", "op: add\n")

	code, _, stderr := run(t, "run", "--config", cfg)
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "missing setting")

	code, _, stderr = run(t, "run", "--config", filepath.Join(dir, "absent.yaml"))
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "command failed")

	code, _, _ = run(t, "show", "--log-level", "loud", cfg)
	require.Equal(t, 1, code)
}

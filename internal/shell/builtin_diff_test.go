package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinDiffIdenticalFiles(t *testing.T) {
	s := newTestState(t)
	var out bytes.Buffer

	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("same content\n"), 0o644))

	require.NoError(t, builtinDiff(s, &out, []string{path, path}))
	assert.Contains(t, out.String(), "0")
}

func TestBuiltinDiffDifferentFiles(t *testing.T) {
	s := newTestState(t)
	var out bytes.Buffer

	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(pathA, []byte("content A\n"), 0o644))
	require.NoError(t, os.WriteFile(pathB, []byte("content B\n"), 0o644))

	require.NoError(t, builtinDiff(s, &out, []string{pathA, pathB}))
	lines := bytes.SplitN(out.Bytes(), []byte("\n"), 2)
	assert.Equal(t, "1", string(lines[0]))
}

func TestBuiltinDiffArity(t *testing.T) {
	s := newTestState(t)
	var out bytes.Buffer

	err := builtinDiff(s, &out, []string{"only-one"})
	require.Error(t, err)
	assert.Equal(t, "smash error: diff: expected 2 arguments", err.Error())
}

func TestBuiltinDiffMissingFile(t *testing.T) {
	s := newTestState(t)
	var out bytes.Buffer

	err := builtinDiff(s, &out, []string{"/nonexistent/a", "/nonexistent/b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected valid paths for files")
}

func TestBuiltinDiffDirectoryIsNotAFile(t *testing.T) {
	s := newTestState(t)
	var out bytes.Buffer
	dir := t.TempDir()

	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := builtinDiff(s, &out, []string{dir, path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "paths are not files")
}

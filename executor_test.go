package gsh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), mode))
	return path
}

func TestFindExecutablePathOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	want := writeScript(t, first, "tool", 0o755)
	writeScript(t, second, "tool", 0o755)
	t.Setenv("PATH", first+string(os.PathListSeparator)+second)

	got, ok := FindExecutable("tool")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestFindExecutableSkipsNonExecutable(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeScript(t, first, "tool", 0o644)
	want := writeScript(t, second, "tool", 0o755)
	t.Setenv("PATH", first+string(os.PathListSeparator)+second)

	got, ok := FindExecutable("tool")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestFindExecutableNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, ok := FindExecutable("no-such-command")
	assert.False(t, ok)
}

func TestFindExecutableDirectPath(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "tool", 0o755)
	t.Setenv("PATH", "")

	got, ok := FindExecutable(path)
	require.True(t, ok)
	assert.Equal(t, path, got)

	_, ok = FindExecutable(filepath.Join(dir, "absent"))
	assert.False(t, ok)
}

func TestFindExecutableRejectsDirectory(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(parent, "tool"), 0o755))
	t.Setenv("PATH", parent)

	_, ok := FindExecutable("tool")
	assert.False(t, ok)
}

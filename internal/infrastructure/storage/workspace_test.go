package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFSWorkspacePrepareClean_RemovesExistingContents(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "stale", "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "stale", "old.png"), []byte("x"), 0o644))

	ws := NewFSWorkspace()
	require.NoError(t, ws.PrepareClean(root))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestFSWorkspacePrepareClean_MissingRootIsFine(t *testing.T) {
	root := filepath.Join(t.TempDir(), "never-existed")
	ws := NewFSWorkspace()
	require.NoError(t, ws.PrepareClean(root))
	require.DirExists(t, root)
}

func TestFSWorkspaceEnsureDir_ConflictingTypeFails(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	ws := NewFSWorkspace()
	require.Error(t, ws.EnsureDir(filepath.Join(file, "child")))
}

func TestFSWorkspaceWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image_1.png")

	ws := NewFSWorkspace()
	require.NoError(t, ws.WriteFile(path, []byte("data")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("data"), got)
}

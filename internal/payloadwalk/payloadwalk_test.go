package payloadwalk

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestListOrdersByModTime(t *testing.T) {
	root := t.TempDir()
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	touch(t, filepath.Join(root, "second.txt"), base.Add(2*time.Second))
	touch(t, filepath.Join(root, "first.txt"), base.Add(1*time.Second))
	touch(t, filepath.Join(root, "sub", "third.txt"), base.Add(3*time.Second))

	files, err := List(root)
	require.NoError(t, err)
	require.Len(t, files, 3)
	require.Equal(t, "first.txt", files[0].RelativePath)
	require.Equal(t, "second.txt", files[1].RelativePath)
	require.Equal(t, filepath.Join("sub", "third.txt"), files[2].RelativePath)
}

func TestListBreaksModTimeTiesByPath(t *testing.T) {
	root := t.TempDir()
	same := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	touch(t, filepath.Join(root, "b.txt"), same)
	touch(t, filepath.Join(root, "a.txt"), same)

	files, err := List(root)
	require.NoError(t, err)
	require.Equal(t, "a.txt", files[0].RelativePath)
	require.Equal(t, "b.txt", files[1].RelativePath)
}

func TestListSkipsDirectoryEntries(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))
	touch(t, filepath.Join(root, "a.txt"), time.Now())

	files, err := List(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
}

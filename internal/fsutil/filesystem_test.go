package fsutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystemStatDistinguishesFilesAndDirs(t *testing.T) {
	fsys := NewMemoryFileSystem()
	fsys.Files["in.txt"] = true
	fsys.Dirs["out"] = true

	fi, err := fsys.Stat("in.txt")
	require.NoError(t, err)
	require.False(t, fi.IsDir())

	di, err := fsys.Stat("out")
	require.NoError(t, err)
	require.True(t, di.IsDir())

	_, err = fsys.Stat("missing")
	require.Error(t, err)
}

func TestMemoryFileSystemMkdirAllRecordsPath(t *testing.T) {
	fsys := NewMemoryFileSystem()
	require.NoError(t, fsys.MkdirAll("a/b/c", 0o755))
	require.True(t, fsys.Dirs["a/b/c"])
}

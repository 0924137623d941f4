package pvrecio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveInputsModeFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	files, err := ResolveInputs(ModeFile, f)
	require.NoError(t, err)
	require.Equal(t, []string{f}, files)
}

func TestResolveInputsModeFileRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := ResolveInputs(ModeFile, dir)
	require.Error(t, err)
}

func TestResolveInputsModeDirFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.csv"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	files, err := ResolveInputs(ModeDir, dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
	}, files)
}

func TestResolveInputsModeDirRejectsFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))
	_, err := ResolveInputs(ModeDir, f)
	require.Error(t, err)
}

func TestEnsureOutputDirCreatesNestedPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureOutputDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

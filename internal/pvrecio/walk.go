package pvrecio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Mode selects whether an input path is a single file or a directory of
// files, mirroring the CLI's -F/-D switch (§6).
type Mode int

const (
	// ModeFile treats the input path as exactly one file.
	ModeFile Mode = iota
	// ModeDir treats the input path as a directory; every regular file
	// with a ".txt" extension directly inside it is processed.
	ModeDir
)

// ResolveInputs validates path against mode and returns the ordered list
// of files to process. Ordering is lexical by base name so a run is
// reproducible across OSes and directory-entry orders.
func ResolveInputs(mode Mode, path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("pvrecio: stat %s: %w", path, err)
	}

	switch mode {
	case ModeFile:
		if info.IsDir() {
			return nil, fmt.Errorf("pvrecio: %s is a directory, but -F expects a file", path)
		}
		return []string{path}, nil

	case ModeDir:
		if !info.IsDir() {
			return nil, fmt.Errorf("pvrecio: %s is not a directory", path)
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("pvrecio: read dir %s: %w", path, err)
		}
		var files []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if filepath.Ext(e.Name()) != ".txt" {
				continue
			}
			files = append(files, filepath.Join(path, e.Name()))
		}
		sort.Strings(files)
		return files, nil

	default:
		return nil, fmt.Errorf("pvrecio: unknown mode %d", mode)
	}
}

// EnsureOutputDir creates dir (and any missing parents) if it does not
// already exist, matching the CLI's -6 "output directory cannot be
// created" exit path.
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("pvrecio: create output dir %s: %w", dir, err)
	}
	return nil
}

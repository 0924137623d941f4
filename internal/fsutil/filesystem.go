// Package fsutil provides a small filesystem abstraction so cmd/pvrec's
// argument validation (§6's -F/-D checks and exit codes) can be tested
// without touching the real disk. Adapted from the teacher's
// internal/fsutil, trimmed to the operations pvrec actually needs.
package fsutil

import (
	"io/fs"
	"os"
	"time"
)

// FileSystem abstracts the handful of filesystem checks the CLI performs
// before it starts processing: "does this path exist, and is it a file or
// a directory", plus creating the output directory.
type FileSystem interface {
	// Stat returns a FileInfo describing the named file or directory.
	Stat(name string) (fs.FileInfo, error)

	// MkdirAll creates a directory and all necessary parents.
	MkdirAll(path string, perm os.FileMode) error
}

// OSFileSystem implements FileSystem using the os package. It is the
// production default; tests substitute MemoryFileSystem.
type OSFileSystem struct{}

func (OSFileSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// MemoryFileSystem is an in-memory FileSystem for exercising the CLI's
// argument-validation exit codes without creating real files.
type MemoryFileSystem struct {
	Dirs  map[string]bool
	Files map[string]bool
}

// NewMemoryFileSystem returns an empty MemoryFileSystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{Dirs: map[string]bool{}, Files: map[string]bool{}}
}

func (m *MemoryFileSystem) Stat(name string) (fs.FileInfo, error) {
	if m.Dirs[name] {
		return memInfo{name: name, isDir: true}, nil
	}
	if m.Files[name] {
		return memInfo{name: name}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MemoryFileSystem) MkdirAll(path string, perm os.FileMode) error {
	m.Dirs[path] = true
	return nil
}

type memInfo struct {
	name  string
	isDir bool
}

func (i memInfo) Name() string       { return i.name }
func (i memInfo) Size() int64        { return 0 }
func (i memInfo) Mode() os.FileMode  { return 0 }
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.isDir }
func (i memInfo) Sys() any           { return nil }

// Package fs writes rendered pages to disk.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// File is an output file that replaces its target atomically. Writes go
// to a temporary file in the target's directory; Commit renames it into
// place and Abort discards it, so readers never see a partial page.
type File struct {
	path string
	tmp  *os.File
}

// Create opens a File for path. The parent directory is created if needed.
func Create(path string) (*File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	return &File{path: path, tmp: tmp}, nil
}

func (f *File) Write(p []byte) (int, error) {
	return f.tmp.Write(p)
}

// Commit flushes the temporary file and moves it over the target.
func (f *File) Commit() error {
	if err := f.tmp.Sync(); err != nil {
		_ = f.Abort()
		return fmt.Errorf("sync output file: %w", err)
	}
	if err := f.tmp.Close(); err != nil {
		_ = os.Remove(f.tmp.Name())
		return fmt.Errorf("close output file: %w", err)
	}
	if err := os.Chmod(f.tmp.Name(), 0644); err != nil {
		_ = os.Remove(f.tmp.Name())
		return fmt.Errorf("chmod output file: %w", err)
	}
	if err := os.Rename(f.tmp.Name(), f.path); err != nil {
		_ = os.Remove(f.tmp.Name())
		return fmt.Errorf("rename output file: %w", err)
	}
	return nil
}

// Abort discards everything written. The target is left untouched.
func (f *File) Abort() error {
	_ = f.tmp.Close()
	return os.Remove(f.tmp.Name())
}

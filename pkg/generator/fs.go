package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// PathTypeConflictError means something other than a directory already
// occupies an output directory path.
type PathTypeConflictError struct {
	Path string
	Want string
	Got  string
}

func (e *PathTypeConflictError) Error() string {
	return fmt.Sprintf("path type conflict: %q (want %s, got %s)", e.Path, e.Want, e.Got)
}

func IsPathTypeConflict(err error) bool {
	var e *PathTypeConflictError
	return errors.As(err, &e)
}

// EnsureDirectory creates path and any missing parents. It reports whether
// the directory was created; an existing directory is left untouched along
// with whatever it already contains.
func EnsureDirectory(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err == nil {
		if !fi.IsDir() {
			got := "file"
			if !fi.Mode().IsRegular() {
				got = fi.Mode().Type().String()
			}
			return false, &PathTypeConflictError{Path: path, Want: "dir", Got: got}
		}
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return false, fmt.Errorf("create directory %s: %w", path, err)
	}
	return true, nil
}

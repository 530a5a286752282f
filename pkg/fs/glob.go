package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// Glob finds files under root matching the slash-separated pattern relative to root.
// Only the pattern is glob syntax; matches are joined onto root.
func (f *realFS) Glob(root, pattern string) ([]string, error) {
	matches, err := iofs.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, err
	}

	for i, m := range matches {
		matches[i] = filepath.Join(root, filepath.FromSlash(m))
	}
	return matches, nil
}

// Abs returns the cleaned absolute form of path.
func (f *realFS) Abs(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: path cannot be empty", ErrPathResolution)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to get absolute path for %s: %w", ErrPathResolution, path, err)
	}

	return absPath, nil
}

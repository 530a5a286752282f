// Package fs provides the file system operations used by the hygiene checks.
package fs

import (
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interface.go -destination=mockfs.gen.go -package=fs

// FS interface provides file system operations for walking and inspecting a project tree.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// ReadText reads a file and returns its content if it is valid UTF-8 text.
	ReadText(path string) (string, error)

	// ReadDir reads the contents of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// Glob finds files under root matching a slash-separated pattern relative to root.
	Glob(root, pattern string) ([]string, error)

	// Abs returns the cleaned absolute form of a path.
	Abs(path string) (string, error)

	// IsNotExist checks if an error indicates that a file or directory doesn't exist.
	IsNotExist(err error) bool

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

type realFS struct{}

// NewFS creates a new FS instance backed by the operating system.
func NewFS() FS {
	return &realFS{}
}

package fs

import "os"

// Exists checks if a file or directory exists at the given path.
// A missing path is not an error; any other stat failure is.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

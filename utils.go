package main

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic writes through a temporary file and rename so a failed
// write never leaves a partial file behind. Atomicity holds only within the
// same filesystem.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	defer func() { _ = os.Remove(tmpName) }()

	if err = tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

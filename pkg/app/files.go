package app

import (
	"os"
	"path/filepath"
)

// DirFiles is a FileAccess that writes exports into a directory.
type DirFiles string

// Save writes the file under the directory, creating it if needed.
func (d DirFiles) Save(filename string, data []byte) error {
	if err := os.MkdirAll(string(d), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(string(d), filename), data, 0o644)
}

// Package filex holds small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold the file at path,
// so a database file can be placed in a directory that does not exist yet.
// It returns the absolute directory. Paths without a directory component
// and SQLite in-memory names need nothing.
func EnsureParentDir(path string) (string, error) {
	if path == "" || path == ":memory:" || filepath.Dir(path) == "." {
		return "", nil
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", path, err)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

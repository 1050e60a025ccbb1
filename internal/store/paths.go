// ABOUTME: Standard filesystem paths for modelmap configuration
// ABOUTME: Resolves ~/.modelmap/ with a safe fallback to the working directory

package store

import (
	"os"
	"path/filepath"
)

const globalDirName = ".modelmap"

// GlobalDir returns the user-global config directory (~/.modelmap/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// MappingsFile returns the path to the persisted mapping collection.
func MappingsFile() string {
	return filepath.Join(GlobalDir(), "mappings.json")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}

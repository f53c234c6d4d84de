package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// SpecFileName is the default spec file name looked up by Discover.
const SpecFileName = "gitvend.yaml"

// LockFileName is the default lockfile name, kept next to the spec.
const LockFileName = "gitvend.lock"

// Discover walks upward from dir looking for a gitvend.yaml and returns its
// path. Returns an error when no spec file exists in dir or any ancestor.
func Discover(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for {
		candidate := filepath.Join(abs, SpecFileName)
		info, statErr := os.Stat(candidate)
		if statErr == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("no %s found in %s or any parent directory", SpecFileName, dir)
		}
		abs = parent
	}
}

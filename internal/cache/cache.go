// Package cache decides where dependency working copies live on disk so
// repeat runs reuse existing clones instead of re-cloning.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Cache maps dependency URLs to working-copy directories under a base dir.
type Cache struct {
	dir string
}

// New creates a Cache rooted at the given directory.
// The directory is created if it does not exist.
func New(dir string) (*Cache, error) {
	repoDir := filepath.Join(dir, "repos")
	if err := os.MkdirAll(repoDir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory %s: %w", repoDir, err)
	}
	return &Cache{dir: dir}, nil
}

// DefaultDir returns the default cache directory.
// Uses XDG_CACHE_HOME if set, otherwise ~/.cache/gitvend.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitvend")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		if runtime.GOOS == "windows" {
			return filepath.Join(os.TempDir(), "gitvend-cache")
		}
		return filepath.Join("/tmp", "gitvend-cache")
	}
	return filepath.Join(home, ".cache", "gitvend")
}

// WorkdirFor returns the working-copy directory for a dependency URL. The
// directory name combines a short URL digest with a human-readable repo name
// so two deps never collide while the cache stays inspectable.
func (c *Cache) WorkdirFor(url string) string {
	digest := sha256.Sum256([]byte(strings.ToLower(url)))
	short := hex.EncodeToString(digest[:])[:12]
	return filepath.Join(c.dir, "repos", short+"-"+repoName(url))
}

// Path returns the cache base directory.
func (c *Cache) Path() string {
	return c.dir
}

// repoName extracts the final path segment of a repository URL, without any
// .git suffix. Falls back to "repo" when the URL has no usable segment.
func repoName(url string) string {
	trimmed := strings.TrimRight(url, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")

	idx := strings.LastIndexAny(trimmed, "/:")
	name := trimmed
	if idx >= 0 {
		name = trimmed[idx+1:]
	}
	if name == "" {
		return "repo"
	}
	return name
}

// Package git drives dependency working copies through the git CLI.
package git

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Repository is a cached working copy of one dependency's remote.
type Repository struct {
	url  string
	path string
}

// Open returns a Repository for the given remote URL whose working copy
// lives at path. Nothing is cloned until Ensure is called.
func Open(path, url string) *Repository {
	return &Repository{url: url, path: path}
}

// Root returns the working-copy directory.
func (r *Repository) Root() string {
	return r.path
}

// Ensure guarantees a usable working copy exists, cloning if absent.
// Idempotent: an already-cloned repository is left untouched.
func (r *Repository) Ensure(ctx context.Context) error {
	if _, err := os.Stat(filepath.Join(r.path, ".git")); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return &CacheError{URL: r.url, Operation: "ensure", Err: fmt.Errorf("creating cache directory: %w", err)}
	}

	if _, err := runGit(ctx, "", "clone", r.url, r.path); err != nil {
		return &CacheError{URL: r.url, Operation: "ensure", Err: err}
	}
	return nil
}

// Fetch updates remote-tracking state for refname without altering the
// working copy.
func (r *Repository) Fetch(ctx context.Context, refname string) error {
	if _, err := runGit(ctx, r.path, "fetch", "--tags", "origin", refname); err != nil {
		return &CacheError{URL: r.url, Operation: "fetch", Err: err}
	}
	return nil
}

// Reset forcibly moves the working copy to refname, discarding local
// differences. The refname is resolved against the local ref, the
// remote-tracking ref, and FETCH_HEAD, in that order.
func (r *Repository) Reset(ctx context.Context, refname string) error {
	rev, err := r.resolve(ctx, refname)
	if err != nil {
		return &CacheError{URL: r.url, Operation: "reset", Err: err}
	}
	if _, err := runGit(ctx, r.path, "reset", "--hard", rev); err != nil {
		return &CacheError{URL: r.url, Operation: "reset", Err: err}
	}
	return nil
}

// Checkout moves the working copy to refname. A refname that is not yet
// known locally triggers a fetch before the checkout is retried.
func (r *Repository) Checkout(ctx context.Context, refname string) error {
	if _, err := runGit(ctx, r.path, "checkout", "--force", refname); err == nil {
		return nil
	}

	if err := r.Fetch(ctx, refname); err != nil {
		return &CacheError{URL: r.url, Operation: "checkout", Err: err}
	}
	if _, err := runGit(ctx, r.path, "checkout", "--force", "FETCH_HEAD"); err != nil {
		return &CacheError{URL: r.url, Operation: "checkout", Err: err}
	}
	return nil
}

// CurrentRefname returns the concrete commit hash currently checked out.
func (r *Repository) CurrentRefname(ctx context.Context) (string, error) {
	out, err := runGit(ctx, r.path, "rev-parse", "HEAD")
	if err != nil {
		return "", &CacheError{URL: r.url, Operation: "current-refname", Err: err}
	}
	return out, nil
}

// Files enumerates every regular file under the working copy, as absolute
// paths, skipping the .git directory.
func (r *Repository) Files(ctx context.Context) ([]string, error) {
	var files []string
	err := filepath.WalkDir(r.path, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, &CacheError{URL: r.url, Operation: "enumerate", Err: err}
	}
	return files, nil
}

// resolve turns a symbolic refname into a commit hash. The remote-tracking
// name is tried first: after a fetch it is the freshest, while a local
// branch of the same name may lag behind.
func (r *Repository) resolve(ctx context.Context, refname string) (string, error) {
	candidates := []string{"origin/" + refname, refname, "FETCH_HEAD"}
	var lastErr error
	for _, candidate := range candidates {
		rev, err := runGit(ctx, r.path, "rev-parse", "--verify", candidate+"^{commit}")
		if err == nil {
			return rev, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("cannot resolve '%s': %w", refname, lastErr)
}

// CacheError is a failure of the version-control cache for one dependency.
type CacheError struct {
	URL       string
	Operation string
	Err       error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("git %s %s: %s", e.Operation, e.URL, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}

// runGit executes a git command, returning trimmed stdout+stderr. dir is the
// working directory; empty means inherit.
func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	sub := args[0]
	if dir != "" {
		args = append([]string{"-C", dir}, args...)
	}
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	output, err := cmd.CombinedOutput()
	out := strings.TrimSpace(string(output))
	if err != nil {
		return "", fmt.Errorf("git %s failed: %s: %w", sub, out, err)
	}
	return out, nil
}

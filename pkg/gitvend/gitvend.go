// Package gitvend provides the public Go library API for gitvend.
//
// gitvend vendors external git source trees into a local directory,
// selecting files by path and extension filters, and pins the resolved
// reference of every dependency in a lockfile so installs are reproducible.
//
// # Basic Usage
//
//	client, err := gitvend.New(gitvend.Options{
//	    SpecPath: "gitvend.yaml",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Install dependencies at their locked references.
//	result, err := client.Install(ctx)
//
//	// Re-resolve dependencies against their remotes.
//	result, err = client.Update(ctx)
package gitvend

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"gitvend/internal/cache"
	"gitvend/internal/config"
	"gitvend/internal/engine"
	"gitvend/internal/git"
	"gitvend/internal/lock"
)

// Options configures a gitvend client.
type Options struct {
	// SpecPath is the path to the spec file. Default: "gitvend.yaml".
	SpecPath string

	// LockfilePath is the path to the lockfile.
	// Default: "gitvend.lock" next to the spec file.
	LockfilePath string

	// CacheDir is the working-copy cache directory.
	// If empty, uses the default (~/.cache/gitvend).
	CacheDir string

	// Logger receives per-dependency and per-file progress.
	// If nil, log.Default() is used.
	Logger *log.Logger
}

// Client is the main entry point for the gitvend library.
type Client struct {
	spec     *config.Spec
	lockfile *lock.Lockfile
	lockPath string
	cache    *cache.Cache
	logger   *log.Logger
}

// New loads the spec and lockfile and prepares the working-copy cache.
// A missing lockfile is not an error; it starts empty.
func New(opts Options) (*Client, error) {
	specPath := opts.SpecPath
	if specPath == "" {
		specPath = config.SpecFileName
	}

	spec, err := config.Load(specPath)
	if err != nil {
		return nil, err
	}

	lockPath := opts.LockfilePath
	if lockPath == "" {
		lockPath = filepath.Join(filepath.Dir(specPath), config.LockFileName)
	}

	lockfile, err := lock.Load(lockPath)
	if errors.Is(err, os.ErrNotExist) {
		lockfile = lock.New()
	} else if err != nil {
		return nil, err
	}

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		cacheDir = cache.DefaultDir()
	}
	repoCache, err := cache.New(cacheDir)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Client{
		spec:     spec,
		lockfile: lockfile,
		lockPath: lockPath,
		cache:    repoCache,
		logger:   logger,
	}, nil
}

// Install vendors every dependency at its locked reference (falling back to
// the declared reference) and persists the merged lockfile.
func (c *Client) Install(ctx context.Context) (*Result, error) {
	return c.run(ctx, func(v *engine.Vendor) (*Result, error) {
		return v.Install(ctx)
	})
}

// Update re-resolves every dependency against its remote, ignoring the
// current lock, and persists the refreshed lockfile.
func (c *Client) Update(ctx context.Context) (*Result, error) {
	return c.run(ctx, func(v *engine.Vendor) (*Result, error) {
		return v.Update(ctx)
	})
}

// Check reports drift between the spec and the lockfile without touching
// the vendor tree.
func (c *Client) Check() *CheckResult {
	return engine.Check(c.spec, c.lockfile)
}

// Spec returns the loaded spec.
func (c *Client) Spec() *config.Spec {
	return c.spec
}

// Lockfile returns the in-memory lockfile, including any merges from the
// last Install or Update.
func (c *Client) Lockfile() *lock.Lockfile {
	return c.lockfile
}

func (c *Client) run(ctx context.Context, action func(*engine.Vendor) (*Result, error)) (*Result, error) {
	vendor := &engine.Vendor{
		Spec:   c.spec,
		Lock:   c.lockfile,
		Logger: c.logger,
		Open: func(dep config.Dependency) engine.Repository {
			return git.Open(c.cache.WorkdirFor(dep.URL), dep.URL)
		},
	}

	result, err := action(vendor)
	if err != nil {
		return nil, err
	}

	if len(result.Locked) > 0 {
		if err := lock.Save(c.lockPath, c.lockfile); err != nil {
			return result, fmt.Errorf("saving lockfile: %w", err)
		}
	}

	return result, nil
}

package engine

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"gitvend/internal/config"
	"gitvend/internal/lock"
)

// RepositoryOpener maps a dependency to its working-copy repository.
type RepositoryOpener func(dep config.Dependency) Repository

// Vendor fans one job out per dependency, joins them all, and merges the
// successful lock entries into the shared lockfile. A failed dependency is
// logged and skipped; it never aborts its siblings.
type Vendor struct {
	Spec   *config.Spec
	Lock   *lock.Lockfile
	Open   RepositoryOpener
	Logger *log.Logger
}

// Install vendors every dependency at its pinned (or declared) reference.
func (v *Vendor) Install(ctx context.Context) (*Result, error) {
	return v.run(ctx, true)
}

// Update re-resolves every dependency against its remote, ignoring the lock.
func (v *Vendor) Update(ctx context.Context) (*Result, error) {
	return v.run(ctx, false)
}

type outcome struct {
	url    string
	locked lock.LockedDependency
	err    error
}

func (v *Vendor) run(ctx context.Context, usePrior bool) (*Result, error) {
	if err := recreateVendorDir(v.Spec.Vendor); err != nil {
		return nil, err
	}

	// Snapshot the dependency list; jobs read the spec but never mutate it.
	deps := make([]config.Dependency, len(v.Spec.Deps))
	copy(deps, v.Spec.Deps)

	results := make(chan outcome, len(deps))
	var wg sync.WaitGroup

	for _, dep := range deps {
		wg.Add(1)
		go func(dep config.Dependency) {
			defer wg.Done()

			job := &Job{
				Spec:   v.Spec,
				Dep:    dep,
				Repo:   v.Open(dep),
				Logger: v.logger(),
			}

			var locked lock.LockedDependency
			var err error
			if usePrior {
				job.Prior = v.Lock.Find(dep.URL)
				locked, err = job.Install(ctx, v.Spec.Vendor)
			} else {
				locked, err = job.Update(ctx, v.Spec.Vendor)
			}

			results <- outcome{url: dep.URL, locked: locked, err: err}
		}(dep)
	}

	wg.Wait()
	close(results)

	// All lockfile writes are funneled through this single loop, so Upsert
	// never runs concurrently.
	result := &Result{}
	for o := range results {
		if o.err != nil {
			v.logger().Error("vendoring failed", "url", o.url, "err", o.err)
			result.Failed = append(result.Failed, DependencyError{URL: o.url, Err: o.err})
			continue
		}
		v.Lock.Upsert(o.locked)
		result.Locked = append(result.Locked, o.locked)
	}

	return result, nil
}

func (v *Vendor) logger() *log.Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return log.Default()
}

// recreateVendorDir destroys and recreates the destination tree. A
// non-directory entry at the vendor path fails the whole run before any job
// is dispatched.
func recreateVendorDir(path string) error {
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		return fmt.Errorf("vendor path '%s' already exists, and it's not a directory", path)
	}

	if err == nil {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("cannot reset vendor folder: %w", err)
		}
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("cannot create vendor folder '%s': %w", path, err)
	}
	return nil
}

package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"gitvend/internal/config"
	"gitvend/internal/filter"
	"gitvend/internal/lock"
	"gitvend/internal/sandbox"
)

// Job vendors a single dependency. It drives the repository through the
// right VCS sequence, filters the working copy, copies eligible files into
// the vendor tree, and reports the concrete reference it ended up on.
type Job struct {
	Spec   *config.Spec
	Dep    config.Dependency
	Prior  *lock.LockedDependency // nil when the dependency has never been locked
	Repo   Repository
	Logger *log.Logger
}

// Install vendors the dependency at its pinned reference. When a prior lock
// entry exists its refname wins over the declared one, so installs are
// reproducible.
func (j *Job) Install(ctx context.Context, vendorRoot string) (lock.LockedDependency, error) {
	if err := j.Repo.Ensure(ctx); err != nil {
		return lock.LockedDependency{}, err
	}

	refname := j.Dep.Refname
	if j.Prior != nil {
		refname = j.Prior.Refname
	}

	j.logger().Info("installing", "url", j.Dep.URL, "refname", refname)
	if err := j.Repo.Checkout(ctx, refname); err != nil {
		return lock.LockedDependency{}, err
	}

	return j.vendor(ctx, vendorRoot)
}

// Update fetches the declared reference from the remote and hard-resets the
// working copy to it, ignoring any prior lock entry, then vendors the files.
func (j *Job) Update(ctx context.Context, vendorRoot string) (lock.LockedDependency, error) {
	if err := j.Repo.Ensure(ctx); err != nil {
		return lock.LockedDependency{}, err
	}

	j.logger().Info("updating", "url", j.Dep.URL, "refname", j.Dep.Refname)
	if err := j.Repo.Fetch(ctx, j.Dep.Refname); err != nil {
		return lock.LockedDependency{}, err
	}
	if err := j.Repo.Reset(ctx, j.Dep.Refname); err != nil {
		return lock.LockedDependency{}, err
	}

	return j.vendor(ctx, vendorRoot)
}

func (j *Job) vendor(ctx context.Context, vendorRoot string) (lock.LockedDependency, error) {
	if err := j.copyFiles(ctx, vendorRoot); err != nil {
		return lock.LockedDependency{}, err
	}

	refname, err := j.Repo.CurrentRefname(ctx)
	if err != nil {
		return lock.LockedDependency{}, err
	}

	locked := lock.LockedDependency{URL: j.Dep.URL, Refname: refname}
	j.logger().Info("locked", "url", locked.URL, "refname", locked.Refname)
	return locked, nil
}

func (j *Job) copyFiles(ctx context.Context, vendorRoot string) error {
	matcher := filter.NewMatcher(j.Spec.Filters, j.Dep.Filters)

	files, err := j.Repo.Files(ctx)
	if err != nil {
		return err
	}

	root := j.Repo.Root()
	for _, src := range files {
		rel, err := filepath.Rel(root, src)
		if err != nil {
			return fmt.Errorf("relativizing %s: %w", src, err)
		}
		rel = filepath.ToSlash(rel)

		switch decision := matcher.Decide(rel); decision {
		case filter.Ignored:
			j.logger().Warn("skipping file", "path", rel, "reason", decision.String())
			continue
		case filter.NotTarget, filter.WrongExtension:
			j.logger().Debug("skipping file", "path", rel, "reason", decision.String())
			continue
		}

		j.logger().Debug("copying file", "path", rel)
		if err := sandbox.SafeCopy(vendorRoot, filepath.FromSlash(rel), src); err != nil {
			return fmt.Errorf("copying %s: %w", rel, err)
		}
	}

	return nil
}

func (j *Job) logger() *log.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return log.Default()
}

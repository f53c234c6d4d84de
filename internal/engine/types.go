package engine

import (
	"context"

	"gitvend/internal/lock"
)

// Repository is the version-control cache boundary a dependency job drives.
// internal/git provides the real implementation; tests substitute fakes.
type Repository interface {
	// Ensure guarantees a usable local working copy exists (clones if absent).
	Ensure(ctx context.Context) error
	// Fetch updates remote-tracking state for refname.
	Fetch(ctx context.Context, refname string) error
	// Reset forcibly moves the working copy to refname.
	Reset(ctx context.Context, refname string) error
	// Checkout moves the working copy to refname.
	Checkout(ctx context.Context, refname string) error
	// CurrentRefname returns the concrete reference currently checked out.
	CurrentRefname(ctx context.Context) (string, error)
	// Files enumerates every file under the working copy as absolute paths.
	Files(ctx context.Context) ([]string, error)
	// Root returns the working-copy directory files are relative to.
	Root() string
}

// DependencyError is a per-dependency failure. It never aborts sibling
// dependencies; the orchestrator collects it and moves on.
type DependencyError struct {
	URL string
	Err error
}

func (e DependencyError) Error() string {
	return e.URL + ": " + e.Err.Error()
}

func (e DependencyError) Unwrap() error {
	return e.Err
}

// Result holds the outcome of one vendor run.
type Result struct {
	Locked []lock.LockedDependency
	Failed []DependencyError
}

// CheckResult holds the outcome of a spec/lock drift check.
type CheckResult struct {
	Clean    bool
	Missing  []string // spec deps with no lock entry
	Orphaned []string // lock entries no longer declared in the spec
}

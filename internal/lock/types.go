package lock

import (
	"sort"
	"strings"
	"time"

	"gitvend/internal/version"
)

// Lockfile represents the gitvend.lock file: the concrete references that
// were actually vendored, keyed by dependency URL.
type Lockfile struct {
	Version   string             `yaml:"version"`
	Deps      []LockedDependency `yaml:"deps"`
	UpdatedAt time.Time          `yaml:"updated_at"`
}

// LockedDependency records the resolved state of a single dependency. The
// refname here is always concrete (a commit hash), never a symbolic
// expression, so re-installing reproduces the same tree.
type LockedDependency struct {
	URL     string `yaml:"url"`
	Refname string `yaml:"refname"`
}

// New returns an empty lockfile stamped with the current tool version.
func New() *Lockfile {
	return &Lockfile{
		Version:   version.Version,
		UpdatedAt: time.Now().UTC(),
	}
}

// Upsert replaces the refname of an existing entry with the same URL
// (case-insensitive) or appends a new entry, and bumps UpdatedAt. Calling it
// repeatedly with the same URL never produces duplicates.
func (lf *Lockfile) Upsert(dep LockedDependency) {
	if found := lf.findMut(dep.URL); found != nil {
		found.Refname = dep.Refname
	} else {
		lf.Deps = append(lf.Deps, dep)
	}
	lf.UpdatedAt = time.Now().UTC()
}

// Find returns the entry for url (case-insensitive), or nil.
func (lf *Lockfile) Find(url string) *LockedDependency {
	if found := lf.findMut(url); found != nil {
		cp := *found
		return &cp
	}
	return nil
}

// Normalize sorts entries by URL and drops adjacent case-insensitive
// duplicates, keeping the first. Run after loading persisted state; the
// merge phase relies on Upsert instead.
func (lf *Lockfile) Normalize() {
	sort.SliceStable(lf.Deps, func(i, j int) bool {
		return lf.Deps[i].URL < lf.Deps[j].URL
	})

	deduped := lf.Deps[:0]
	for _, dep := range lf.Deps {
		if n := len(deduped); n > 0 && strings.EqualFold(deduped[n-1].URL, dep.URL) {
			continue
		}
		deduped = append(deduped, dep)
	}
	lf.Deps = deduped
}

func (lf *Lockfile) findMut(url string) *LockedDependency {
	for i := range lf.Deps {
		if strings.EqualFold(lf.Deps[i].URL, url) {
			return &lf.Deps[i]
		}
	}
	return nil
}

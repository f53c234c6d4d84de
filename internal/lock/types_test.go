package lock

import (
	"testing"
	"time"
)

func TestNewStampsVersionAndTimestamp(t *testing.T) {
	lf := New()

	if lf.Version == "" {
		t.Error("new lockfile should carry the tool version")
	}
	if len(lf.Deps) != 0 {
		t.Errorf("new lockfile should have no deps, got %d", len(lf.Deps))
	}
	if lf.UpdatedAt.IsZero() {
		t.Error("new lockfile should have a timestamp")
	}
}

func TestUpsertAppendsNewEntry(t *testing.T) {
	lf := New()
	lf.Upsert(LockedDependency{URL: "https://example.com/repo.git", Refname: "abc123"})

	if len(lf.Deps) != 1 {
		t.Fatalf("deps = %d, want 1", len(lf.Deps))
	}
	if lf.Deps[0].Refname != "abc123" {
		t.Errorf("refname = %q", lf.Deps[0].Refname)
	}
}

func TestUpsertIsIdempotent(t *testing.T) {
	lf := New()
	dep := LockedDependency{URL: "https://example.com/repo.git", Refname: "abc123"}

	lf.Upsert(dep)
	lf.Upsert(dep)

	if len(lf.Deps) != 1 {
		t.Fatalf("deps = %d, want 1 after repeated upsert", len(lf.Deps))
	}
}

func TestUpsertReplacesRefname(t *testing.T) {
	lf := New()
	lf.Upsert(LockedDependency{URL: "https://example.com/repo.git", Refname: "abc123"})
	lf.Upsert(LockedDependency{URL: "https://example.com/repo.git", Refname: "def456"})

	if len(lf.Deps) != 1 {
		t.Fatalf("deps = %d, want 1", len(lf.Deps))
	}
	if lf.Deps[0].Refname != "def456" {
		t.Errorf("refname = %q, want def456", lf.Deps[0].Refname)
	}
}

func TestUpsertMatchesURLCaseInsensitively(t *testing.T) {
	lf := New()
	lf.Upsert(LockedDependency{URL: "https://example.com/Repo.git", Refname: "abc123"})
	lf.Upsert(LockedDependency{URL: "https://example.com/repo.git", Refname: "def456"})

	if len(lf.Deps) != 1 {
		t.Fatalf("deps = %d, want 1", len(lf.Deps))
	}
	if lf.Deps[0].URL != "https://example.com/Repo.git" {
		t.Errorf("url = %q, original casing should be kept", lf.Deps[0].URL)
	}
}

func TestUpsertBumpsTimestamp(t *testing.T) {
	lf := New()
	lf.UpdatedAt = time.Time{}

	lf.Upsert(LockedDependency{URL: "https://example.com/repo.git", Refname: "abc123"})

	if lf.UpdatedAt.IsZero() {
		t.Error("Upsert should refresh UpdatedAt")
	}
}

func TestFind(t *testing.T) {
	lf := New()
	lf.Upsert(LockedDependency{URL: "https://example.com/repo.git", Refname: "abc123"})

	found := lf.Find("HTTPS://EXAMPLE.COM/REPO.GIT")
	if found == nil {
		t.Fatal("expected case-insensitive match")
	}
	if found.Refname != "abc123" {
		t.Errorf("refname = %q", found.Refname)
	}

	if lf.Find("https://example.com/other.git") != nil {
		t.Error("expected no match for unknown url")
	}
}

func TestFindReturnsCopy(t *testing.T) {
	lf := New()
	lf.Upsert(LockedDependency{URL: "https://example.com/repo.git", Refname: "abc123"})

	found := lf.Find("https://example.com/repo.git")
	found.Refname = "mutated"

	if lf.Deps[0].Refname != "abc123" {
		t.Error("Find must not expose internal state for mutation")
	}
}

func TestNormalizeSortsAndDedupes(t *testing.T) {
	lf := &Lockfile{
		Version: "dev",
		Deps: []LockedDependency{
			{URL: "https://example.com/zeta.git", Refname: "z1"},
			{URL: "https://example.com/alpha.git", Refname: "a1"},
			{URL: "https://example.com/ALPHA.git", Refname: "a2"},
		},
	}

	lf.Normalize()

	if len(lf.Deps) != 2 {
		t.Fatalf("deps = %d, want 2", len(lf.Deps))
	}
	if lf.Deps[0].URL != "https://example.com/ALPHA.git" && lf.Deps[0].URL != "https://example.com/alpha.git" {
		t.Errorf("deps[0] = %q, want an alpha entry first", lf.Deps[0].URL)
	}
	if lf.Deps[1].URL != "https://example.com/zeta.git" {
		t.Errorf("deps[1] = %q, want zeta last", lf.Deps[1].URL)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	lf := &Lockfile{
		Version: "dev",
		Deps: []LockedDependency{
			{URL: "b", Refname: "r2"},
			{URL: "a", Refname: "r1"},
		},
	}

	lf.Normalize()
	first := make([]LockedDependency, len(lf.Deps))
	copy(first, lf.Deps)

	lf.Normalize()
	if len(lf.Deps) != len(first) {
		t.Fatalf("second Normalize changed entry count: %d vs %d", len(lf.Deps), len(first))
	}
	for i := range first {
		if lf.Deps[i] != first[i] {
			t.Errorf("deps[%d] changed on second Normalize", i)
		}
	}
}

package config

// Spec represents the gitvend.yaml configuration file: the vendor destination,
// default filter patterns, and the list of dependencies to vendor.
type Spec struct {
	Version int    `yaml:"version"`
	Vendor  string `yaml:"vendor"`
	Filters `yaml:",inline"`
	Deps    []Dependency `yaml:"deps"`
}

// Dependency is a single external source tree, identified by its remote URL
// and a desired reference expression (branch, tag, or commit-ish).
// Dependency-level filters extend the spec-level defaults; they cannot
// remove them.
type Dependency struct {
	URL     string `yaml:"url"`
	Refname string `yaml:"refname"`
	Filters `yaml:",inline"`
}

// Filters holds the three pattern lists that decide copy-eligibility.
// Ignores and Targets are path prefixes relative to the working-copy root;
// Extensions are compared case-insensitively against the file extension.
type Filters struct {
	Ignores    []string `yaml:"ignores,omitempty"`
	Targets    []string `yaml:"targets,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`
}

// Merge appends the other filter lists onto f, skipping patterns already
// present. Merging is additive only: a later layer can never remove a
// pattern contributed by an earlier one.
func (f *Filters) Merge(other Filters) {
	f.Ignores = appendUnique(f.Ignores, other.Ignores)
	f.Targets = appendUnique(f.Targets, other.Targets)
	f.Extensions = appendUnique(f.Extensions, other.Extensions)
}

// IsEmpty reports whether no patterns are configured at all.
func (f *Filters) IsEmpty() bool {
	return len(f.Ignores) == 0 && len(f.Targets) == 0 && len(f.Extensions) == 0
}

// UpdateFrom takes the refname and filters from other, keeping the URL.
// Used when a dependency is re-declared for a URL that already exists.
func (d *Dependency) UpdateFrom(other Dependency) {
	d.Refname = other.Refname
	d.Filters = other.Filters
}

// FindDep returns the dependency with the given URL (case-insensitive),
// or nil if the spec does not declare it.
func (s *Spec) FindDep(url string) *Dependency {
	for i := range s.Deps {
		if equalFoldURL(s.Deps[i].URL, url) {
			return &s.Deps[i]
		}
	}
	return nil
}

func appendUnique(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, v := range dst {
		seen[v] = true
	}
	for _, v := range src {
		if !seen[v] {
			dst = append(dst, v)
			seen[v] = true
		}
	}
	return dst
}

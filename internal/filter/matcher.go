// Package filter implements the copy-eligibility predicates for vendored
// files. A path is copied when it is not ignored, matches a target prefix,
// and carries an allowed extension, evaluated in that order.
package filter

import (
	"path"
	"strings"

	"gitvend/internal/config"
)

// Decision classifies a single path, in the order the rules are evaluated.
type Decision int

const (
	// Copy means the path passed every rule and should be vendored.
	Copy Decision = iota
	// Ignored means an ignore pattern prefixes the path.
	Ignored
	// NotTarget means no target pattern prefixes the path.
	NotTarget
	// WrongExtension means the path has no extension or its extension
	// matches no configured pattern.
	WrongExtension
)

// String returns the trace label used when logging skipped files.
func (d Decision) String() string {
	switch d {
	case Copy:
		return "copy"
	case Ignored:
		return "ignored"
	case NotTarget:
		return "not target"
	case WrongExtension:
		return "ignored extension"
	default:
		return "unknown"
	}
}

// Matcher decides copy-eligibility against the union of one or more filter
// layers (spec-level defaults plus dependency-level additions). Layers only
// ever add patterns; none can remove another layer's pattern.
type Matcher struct {
	filters config.Filters
}

// NewMatcher concatenates the given filter layers into a single Matcher.
func NewMatcher(layers ...config.Filters) *Matcher {
	m := &Matcher{}
	for _, l := range layers {
		m.filters.Ignores = append(m.filters.Ignores, l.Ignores...)
		m.filters.Targets = append(m.filters.Targets, l.Targets...)
		m.filters.Extensions = append(m.filters.Extensions, l.Extensions...)
	}
	return m
}

// Decide runs rel through the rules in order: ignore short-circuits before
// targeting, targeting before extensions. rel must be slash-separated and
// relative to the working-copy root.
func (m *Matcher) Decide(rel string) Decision {
	if m.IsIgnored(rel) {
		return Ignored
	}
	if !m.IsTarget(rel) {
		return NotTarget
	}
	if !m.ExtensionAllowed(rel) {
		return WrongExtension
	}
	return Copy
}

// IsIgnored reports whether any ignore pattern is a path prefix of rel.
func (m *Matcher) IsIgnored(rel string) bool {
	return anyPathPrefix(m.filters.Ignores, rel)
}

// IsTarget reports whether any target pattern is a path prefix of rel.
// With no target patterns configured anywhere this is false for every path:
// nothing is selected until targets are configured explicitly.
func (m *Matcher) IsTarget(rel string) bool {
	return anyPathPrefix(m.filters.Targets, rel)
}

// ExtensionAllowed reports whether rel's extension matches any configured
// extension pattern, compared case-insensitively. Extensionless files are
// never allowed.
func (m *Matcher) ExtensionAllowed(rel string) bool {
	ext, ok := extensionOf(rel)
	if !ok {
		return false
	}
	for _, pattern := range m.filters.Extensions {
		if strings.EqualFold(pattern, ext) {
			return true
		}
	}
	return false
}

// anyPathPrefix matches component-wise: pattern "a" prefixes "a/x" but not
// "ab/x".
func anyPathPrefix(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		p := strings.TrimSuffix(pattern, "/")
		if p == "" {
			continue
		}
		if rel == p || strings.HasPrefix(rel, p+"/") {
			return true
		}
	}
	return false
}

// extensionOf returns the extension of rel without the dot. Dotfiles such as
// ".gitignore" and names without a dot have no extension.
func extensionOf(rel string) (string, bool) {
	base := path.Base(rel)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 || idx == len(base)-1 {
		return "", false
	}
	return base[idx+1:], true
}

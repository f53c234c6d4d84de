package filter

import (
	"testing"

	"gitvend/internal/config"
)

func TestIsTargetNoPatternsSelectsNothing(t *testing.T) {
	m := NewMatcher(config.Filters{}, config.Filters{})

	for _, rel := range []string{"a/x.proto", "x.proto", "deep/nested/path/file.go"} {
		if m.IsTarget(rel) {
			t.Errorf("IsTarget(%q) = true with no target patterns configured", rel)
		}
	}
}

func TestIgnoreWinsRegardlessOfOtherRules(t *testing.T) {
	m := NewMatcher(config.Filters{
		Ignores:    []string{"ignored"},
		Targets:    []string{"ignored"},
		Extensions: []string{"proto"},
	})

	if got := m.Decide("ignored/y.proto"); got != Ignored {
		t.Errorf("Decide = %v, want Ignored", got)
	}
}

func TestPathPrefixIsComponentWise(t *testing.T) {
	m := NewMatcher(config.Filters{Targets: []string{"a"}})

	tests := []struct {
		rel  string
		want bool
	}{
		{"a/x.proto", true},
		{"a", true},
		{"a/b/c.proto", true},
		{"ab/x.proto", false},
		{"b/a/x.proto", false},
	}
	for _, tt := range tests {
		if got := m.IsTarget(tt.rel); got != tt.want {
			t.Errorf("IsTarget(%q) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}

func TestTrailingSlashPatternNormalized(t *testing.T) {
	m := NewMatcher(config.Filters{Targets: []string{"src/"}})

	if !m.IsTarget("src/x.proto") {
		t.Error("pattern with trailing slash should still match")
	}
}

func TestExtensionMatchingCaseInsensitive(t *testing.T) {
	m := NewMatcher(config.Filters{Extensions: []string{"proto"}})

	tests := []struct {
		rel  string
		want bool
	}{
		{"a/x.proto", true},
		{"a/x.PROTO", true},
		{"a/x.Proto", true},
		{"a/x.txt", false},
		{"a/x", false},          // extensionless
		{"a/.gitignore", false}, // dotfile has no extension
		{"a/x.", false},
	}
	for _, tt := range tests {
		if got := m.ExtensionAllowed(tt.rel); got != tt.want {
			t.Errorf("ExtensionAllowed(%q) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}

func TestLayersAreUnioned(t *testing.T) {
	spec := config.Filters{Targets: []string{"a"}, Extensions: []string{"proto"}}
	dep := config.Filters{Targets: []string{"b"}, Extensions: []string{"yaml"}}
	m := NewMatcher(spec, dep)

	for _, rel := range []string{"a/x.proto", "b/x.proto", "a/x.yaml", "b/x.yaml"} {
		if got := m.Decide(rel); got != Copy {
			t.Errorf("Decide(%q) = %v, want Copy", rel, got)
		}
	}
}

func TestDecideEvaluationOrder(t *testing.T) {
	m := NewMatcher(config.Filters{
		Ignores:    []string{"ignored"},
		Targets:    []string{"a"},
		Extensions: []string{"proto"},
	})

	tests := []struct {
		rel  string
		want Decision
	}{
		{"a/x.proto", Copy},
		{"a/x.txt", WrongExtension},
		{"ignored/y.proto", Ignored}, // ignore checked before target
		{"other/x.proto", NotTarget},
		{"a/noext", WrongExtension},
	}
	for _, tt := range tests {
		if got := m.Decide(tt.rel); got != tt.want {
			t.Errorf("Decide(%q) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}

func TestDecisionString(t *testing.T) {
	tests := []struct {
		d    Decision
		want string
	}{
		{Copy, "copy"},
		{Ignored, "ignored"},
		{NotTarget, "not target"},
		{WrongExtension, "ignored extension"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Decision(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

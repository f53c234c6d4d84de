package cmd

import (
	"path/filepath"
	"testing"
)

func TestResolveLockfilePathDefaultsNextToSpec(t *testing.T) {
	lockfilePath = ""
	defer func() { lockfilePath = "" }()

	got := resolveLockfilePath(filepath.Join("some", "dir", "gitvend.yaml"))
	want := filepath.Join("some", "dir", "gitvend.lock")
	if got != want {
		t.Errorf("resolveLockfilePath = %q, want %q", got, want)
	}
}

func TestResolveLockfilePathHonorsFlag(t *testing.T) {
	lockfilePath = "custom.lock"
	defer func() { lockfilePath = "" }()

	if got := resolveLockfilePath("gitvend.yaml"); got != "custom.lock" {
		t.Errorf("resolveLockfilePath = %q, want custom.lock", got)
	}
}

func TestShortRef(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3f8c9abf2c1d4e5f", "3f8c9abf"},
		{"v1.2.0", "v1.2.0"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := shortRef(tt.in); got != tt.want {
			t.Errorf("shortRef(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package engine

import (
	"strings"

	"gitvend/internal/config"
	"gitvend/internal/lock"
)

// Check reports drift between the spec and the lockfile: dependencies that
// were never installed, and lock entries whose dependency was removed from
// the spec. URLs are compared case-insensitively.
func Check(spec *config.Spec, lf *lock.Lockfile) *CheckResult {
	result := &CheckResult{Clean: true}

	locked := make(map[string]bool, len(lf.Deps))
	for _, dep := range lf.Deps {
		locked[strings.ToLower(dep.URL)] = true
	}

	declared := make(map[string]bool, len(spec.Deps))
	for _, dep := range spec.Deps {
		declared[strings.ToLower(dep.URL)] = true
		if !locked[strings.ToLower(dep.URL)] {
			result.Missing = append(result.Missing, dep.URL)
			result.Clean = false
		}
	}

	for _, dep := range lf.Deps {
		if !declared[strings.ToLower(dep.URL)] {
			result.Orphaned = append(result.Orphaned, dep.URL)
			result.Clean = false
		}
	}

	return result
}

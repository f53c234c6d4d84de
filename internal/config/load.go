package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a gitvend.yaml spec file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec %s: %w", path, err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec %s: %w", path, err)
	}

	if errs := Validate(&spec); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &spec, nil
}

// Save writes a spec atomically using a temp file and rename.
func Save(path string, spec *Spec) error {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("marshaling spec: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing temp spec %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming temp spec to %s: %w", path, err)
	}

	return nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("spec validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Spec for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(spec *Spec) []string {
	var errs []string

	if spec.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d: only version 1 is supported", spec.Version))
	}

	if spec.Vendor == "" {
		errs = append(errs, "'vendor' is required: set the destination directory for vendored files")
	}

	urls := make(map[string]bool)
	for i, dep := range spec.Deps {
		prefix := fmt.Sprintf("dep[%d]", i)
		if dep.URL != "" {
			prefix = fmt.Sprintf("dep '%s'", dep.URL)
		}

		if dep.URL == "" {
			errs = append(errs, fmt.Sprintf("%s: 'url' is required", prefix))
		} else if key := strings.ToLower(dep.URL); urls[key] {
			errs = append(errs, fmt.Sprintf("%s: duplicate dependency url '%s'", prefix, dep.URL))
		} else {
			urls[key] = true
		}

		if dep.Refname == "" {
			errs = append(errs, fmt.Sprintf("%s: 'refname' is required: add 'refname: <branch-tag-or-commit>'", prefix))
		}
	}

	return errs
}

func equalFoldURL(a, b string) bool {
	return strings.EqualFold(a, b)
}

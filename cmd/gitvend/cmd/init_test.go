package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"gitvend/internal/config"
)

func TestInitTemplateIsValidSpec(t *testing.T) {
	var spec config.Spec
	if err := yaml.Unmarshal([]byte(initTemplate), &spec); err != nil {
		t.Fatalf("scaffold does not parse: %v", err)
	}

	if errs := config.Validate(&spec); len(errs) != 0 {
		t.Errorf("scaffold does not validate: %v", errs)
	}
	if spec.Vendor == "" {
		t.Error("scaffold should set a vendor directory")
	}
	if len(spec.Deps) == 0 {
		t.Error("scaffold should include an example dependency")
	}
}

func TestInitCreatesSpec(t *testing.T) {
	dir := t.TempDir()
	specPath = filepath.Join(dir, config.SpecFileName)
	defer func() { specPath = "" }()

	if err := initCmd.RunE(initCmd, nil); err != nil {
		t.Fatalf("init: %v", err)
	}

	data, err := os.ReadFile(specPath)
	if err != nil {
		t.Fatalf("spec not written: %v", err)
	}
	if !strings.Contains(string(data), "version: 1") {
		t.Error("scaffold missing version")
	}
}

func TestInitRefusesOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	specPath = filepath.Join(dir, config.SpecFileName)
	initForce = false
	defer func() { specPath = "" }()

	if err := os.WriteFile(specPath, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := initCmd.RunE(initCmd, nil); err == nil {
		t.Fatal("expected refusal to overwrite")
	}

	initForce = true
	defer func() { initForce = false }()
	if err := initCmd.RunE(initCmd, nil); err != nil {
		t.Fatalf("init --force: %v", err)
	}
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"gitvend/internal/config"
	"gitvend/pkg/gitvend"
)

// resolveSpecPath honors --spec when given, otherwise discovers gitvend.yaml
// upward from the working directory.
func resolveSpecPath() (string, error) {
	if specPath != "" {
		return specPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return config.Discover(cwd)
}

// resolveLockfilePath honors --lockfile when given, otherwise places the
// lockfile next to the spec.
func resolveLockfilePath(spec string) string {
	if lockfilePath != "" {
		return lockfilePath
	}
	return filepath.Join(filepath.Dir(spec), config.LockFileName)
}

// newClient wires up a gitvend client from the global flags.
func newClient() (*gitvend.Client, error) {
	spec, err := resolveSpecPath()
	if err != nil {
		return nil, err
	}

	return gitvend.New(gitvend.Options{
		SpecPath:     spec,
		LockfilePath: resolveLockfilePath(spec),
		CacheDir:     cacheDir,
		Logger:       newLogger(),
	})
}

// newLogger builds the CLI logger. --verbose enables the per-file trace,
// --quiet drops everything below error.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.ErrorLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           level,
	})
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

// Package version holds the build version shared by the CLI and the lockfile.
package version

// Version is overridden at build time via -ldflags. The lockfile records it
// so a lock can be traced back to the tool that wrote it.
var Version = "dev"

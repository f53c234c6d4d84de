package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitvend/internal/version"
)

// Build-time variables set via -ldflags.
var (
	commit = "none"
	date   = "unknown"
)

// Global flags.
var (
	specPath     string
	lockfilePath string
	cacheDir     string
	verbose      bool
	quiet        bool
)

var rootCmd = &cobra.Command{
	Use:   "gitvend",
	Short: "Reproducible vendoring of git source trees",
	Long: `gitvend copies files from external git repositories into a local vendor
directory, selecting only the paths and extensions you configure, and pins
the resolved reference of every dependency in a lockfile so installs are
reproducible.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gitvend %s\n", version.Version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&specPath, "spec", "", "path to spec file (default: discover gitvend.yaml upward from cwd)")
	rootCmd.PersistentFlags().StringVar(&lockfilePath, "lockfile", "", "path to lockfile (default: gitvend.lock next to the spec)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache", "", "working-copy cache directory (default: ~/.cache/gitvend)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "per-file trace output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "errors only")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitvend/internal/config"
)

var initForce bool

// initTemplate is the default gitvend.yaml scaffold.
const initTemplate = `# gitvend configuration
version: 1

# Destination directory. Recreated from scratch on every install/update.
vendor: vendor/

# Default filters, applied to every dependency. Dependency-level filters
# add to these; they cannot remove them.
# ignores:
#   - third_party
targets:
  - src
extensions:
  - proto

deps:
  - url: https://github.com/your-org/protos.git
    refname: main
    # targets:
    #   - api
    # extensions:
    #   - yaml
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a gitvend.yaml scaffold in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := specPath
		if path == "" {
			path = config.SpecFileName
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(initTemplate), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		info("Created %s.", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing spec file")
	rootCmd.AddCommand(initCmd)
}

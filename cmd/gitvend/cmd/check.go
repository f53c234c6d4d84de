package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report drift between the spec and the lockfile",
	Long: `Compares the dependencies declared in the spec against the lockfile
without touching the vendor tree. Reports dependencies that were never
installed and lock entries whose dependency was removed from the spec.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result := client.Check()
		if result.Clean {
			info("Spec and lockfile are in sync.")
			return nil
		}

		for _, url := range result.Missing {
			info("  missing from lock:  %s", url)
		}
		for _, url := range result.Orphaned {
			info("  orphaned in lock:   %s", url)
		}

		return fmt.Errorf("%d missing, %d orphaned", len(result.Missing), len(result.Orphaned))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

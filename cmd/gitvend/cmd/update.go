package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Re-resolve dependencies against their remotes and refresh the lockfile",
	Long: `Fetches each dependency's declared reference from its remote, hard-resets
the working copy to it, and vendors the matched files. Existing lockfile
entries are ignored; every successful dependency gets a freshly resolved
reference recorded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.Update(cmd.Context())
		if err != nil {
			return err
		}

		for _, locked := range result.Locked {
			info("  %s  %s", shortRef(locked.Refname), locked.URL)
		}
		for _, e := range result.Failed {
			errorf("%s: %s", e.URL, e.Err)
		}
		info("Update complete: %d vendored, %d failed.", len(result.Locked), len(result.Failed))

		if len(result.Failed) > 0 {
			return fmt.Errorf("%d dependencies failed", len(result.Failed))
		}
		return nil
	},
}

func shortRef(refname string) string {
	if len(refname) > 8 {
		return refname[:8]
	}
	return refname
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Vendor all dependencies at their locked references",
	Long: `Recreates the vendor directory and copies each dependency's matched files
into it. A dependency with a lockfile entry is checked out at the locked
reference; otherwise its declared reference is used and a new lock entry is
recorded. Dependencies are processed concurrently and one failure never
aborts the others.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.Install(cmd.Context())
		if err != nil {
			return err
		}

		for _, e := range result.Failed {
			errorf("%s: %s", e.URL, e.Err)
		}
		info("Install complete: %d vendored, %d failed.", len(result.Locked), len(result.Failed))

		if len(result.Failed) > 0 {
			return fmt.Errorf("%d dependencies failed", len(result.Failed))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}

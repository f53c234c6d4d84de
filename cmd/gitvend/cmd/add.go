package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitvend/internal/config"
)

var (
	addRefname    string
	addTargets    []string
	addIgnores    []string
	addExtensions []string
)

var addCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a dependency to the spec, or update an existing one",
	Long: `Appends a dependency to the spec file. If a dependency with the same URL
already exists, its refname and filters are replaced by the new values.
The lockfile is not touched; run 'gitvend install' or 'gitvend update'
afterwards to vendor the files.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveSpecPath()
		if err != nil {
			return err
		}

		spec, err := config.Load(path)
		if err != nil {
			return err
		}

		dep := config.Dependency{
			URL:     args[0],
			Refname: addRefname,
			Filters: config.Filters{
				Ignores:    addIgnores,
				Targets:    addTargets,
				Extensions: addExtensions,
			},
		}

		if existing := spec.FindDep(dep.URL); existing != nil {
			existing.UpdateFrom(dep)
			info("Updated dependency %s @ %s.", existing.URL, existing.Refname)
		} else {
			spec.Deps = append(spec.Deps, dep)
			info("Added dependency %s @ %s.", dep.URL, dep.Refname)
		}

		if errs := config.Validate(spec); len(errs) > 0 {
			return &config.ValidationError{Errors: errs}
		}

		if err := config.Save(path, spec); err != nil {
			return fmt.Errorf("saving spec: %w", err)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addRefname, "refname", "main", "branch, tag, or commit to vendor")
	addCmd.Flags().StringSliceVar(&addTargets, "target", nil, "additional target path prefix (repeatable)")
	addCmd.Flags().StringSliceVar(&addIgnores, "ignore", nil, "additional ignore path prefix (repeatable)")
	addCmd.Flags().StringSliceVar(&addExtensions, "extension", nil, "additional allowed extension (repeatable)")
	rootCmd.AddCommand(addCmd)
}

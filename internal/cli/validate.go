package cli

import (
	"fmt"
	"os"

	"github.com/pypack-labs/pypack/internal/manifest"
	"github.com/spf13/cobra"
)

var validateNoSchema bool

func init() {
	validateCmd.Flags().BoolVar(&validateNoSchema, "no-schema", false, "Skip JSON Schema checks, only enforce invariants")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <pyproject.toml>",
	Short: "Validate a package manifest",
	Long: `Validate parses the manifest, enforces its structural invariants
(identity fields, dependency specifier syntax, build requirements), and
checks the raw document against the pyproject JSON Schema. The exit status
is non-zero when the manifest is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out := cmd.OutOrStdout()

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading manifest %s: %w", path, err)
		}

		m, err := manifest.Parse(data)
		if err != nil {
			return err
		}
		if err := manifest.Validate(m); err != nil {
			return err
		}

		if !validateNoSchema {
			res, err := manifest.ValidateSchema(data)
			if err != nil {
				return err
			}
			if !res.Valid {
				for _, issue := range res.Issues {
					location := issue.Path
					if location == "" {
						location = "/"
					}
					fmt.Fprintf(out, "  ✗ %s: %s\n", location, issue.Message)
				}
				return fmt.Errorf("%s: %d schema violations", path, len(res.Issues))
			}
		}

		version := m.Project.Version
		if version == "" {
			version = "(dynamic)"
		}
		fmt.Fprintf(out, "✓ %s is a valid manifest (%s %s)\n", path, m.Project.Name, version)
		return nil
	},
}

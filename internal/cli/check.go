package cli

import (
	"fmt"

	"github.com/pypack-labs/pypack/internal/config"
	"github.com/pypack-labs/pypack/internal/inspect"
	"github.com/pypack-labs/pypack/internal/manifest"
	"github.com/spf13/cobra"
)

var checkPython string

func init() {
	checkCmd.Flags().StringVar(&checkPython, "python", "", "Interpreter version to check, e.g. 3.9 (default: config key check.python)")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <pyproject.toml>",
	Short: "Check a manifest's requires-python against an interpreter version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.ParseFile(args[0])
		if err != nil {
			return err
		}

		version := checkPython
		if version == "" {
			config.Load()
			version = config.Get("check.python")
		}
		if version == "" {
			return fmt.Errorf("no interpreter version given: pass --python or set `%s config set check.python <version>`", rootCmd.Use)
		}

		ok, err := inspect.CheckPython(m, version)
		if err != nil {
			return err
		}

		constraint := "(unconstrained)"
		if m.Project.RequiresPython != "" {
			constraint = m.Project.RequiresPython
		}
		if !ok {
			return fmt.Errorf("python %s does not satisfy requires-python %s", version, constraint)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ python %s satisfies requires-python %s\n", version, constraint)
		return nil
	},
}

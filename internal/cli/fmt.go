package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pypack-labs/pypack/internal/manifest"
)

var fmtWrite bool

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite the file in place instead of printing")
	rootCmd.AddCommand(fmtCmd)
}

var fmtCmd = &cobra.Command{
	Use:   "fmt <pyproject.toml>",
	Short: "Reprint a manifest in canonical form",
	Long: `Fmt parses the manifest and re-serializes it with a fixed table
order and sorted keys, so formatting is deterministic and diffs stay small.
Comments are not preserved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		m, err := manifest.ParseFile(path)
		if err != nil {
			return err
		}

		out, err := manifest.Marshal(m)
		if err != nil {
			return err
		}

		if fmtWrite {
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}
			if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

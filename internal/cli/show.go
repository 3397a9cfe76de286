package cli

import (
	"encoding/json"
	"fmt"

	"github.com/pypack-labs/pypack/internal/inspect"
	"github.com/pypack-labs/pypack/internal/manifest"
	"github.com/spf13/cobra"
)

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the parsed manifest as JSON")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <pyproject.toml>",
	Short: "Print a summary of a package manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.ParseFile(args[0])
		if err != nil {
			return err
		}

		if showJSON {
			out, err := json.MarshalIndent(m, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling manifest: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		inspect.Summarize(m).Print(cmd.OutOrStdout())
		return nil
	},
}

package cli

import (
	"strings"

	"github.com/pypack-labs/pypack/internal/inspect"
	"github.com/pypack-labs/pypack/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	depsExtras string
	depsBuild  bool
	depsAll    bool
)

func init() {
	depsCmd.Flags().StringVar(&depsExtras, "extras", "", "Comma-separated extras to include (e.g. io,viz)")
	depsCmd.Flags().BoolVar(&depsBuild, "build", false, "Include build-system requirements")
	depsCmd.Flags().BoolVar(&depsAll, "all", false, "Include every declared extra")
	rootCmd.AddCommand(depsCmd)
}

var depsCmd = &cobra.Command{
	Use:   "deps <pyproject.toml>",
	Short: "List the dependency groups of a manifest",
	Long: `Deps lists the manifest's requirement groups in declared order:
build requirements (with --build), runtime dependencies, and any requested
extras. Duplicate packages are flagged but never dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.ParseFile(args[0])
		if err != nil {
			return err
		}

		var extras []string
		if depsAll {
			extras = declaredExtras(m)
		} else if depsExtras != "" {
			for _, extra := range strings.Split(depsExtras, ",") {
				extras = append(extras, strings.TrimSpace(extra))
			}
		}

		view, err := inspect.BuildDependencyView(m, extras, depsBuild)
		if err != nil {
			return err
		}
		view.Print(cmd.OutOrStdout())
		return nil
	},
}

// declaredExtras returns the manifest's extra names in sorted order.
func declaredExtras(m *manifest.Manifest) []string {
	if m.Project == nil {
		return nil
	}
	return inspect.Summarize(m).Extras
}

package cli

import (
	"os"

	"github.com/pypack-labs/pypack/internal/branding"
	"github.com/pypack-labs/pypack/internal/config"
	"github.com/pypack-labs/pypack/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` reads declarative Python package manifests (pyproject.toml),
validates them, and reports on identity, build backends, dependency sets,
and packaging targets. It never builds packages itself.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Commands that print machine-readable output skip the banner.
		name := cmd.Name()
		if name == "version" || name == "fmt" {
			return
		}

		checkForUpdates()
	},
}

// checkForUpdates prints the non-blocking banner from the cached version
// check. Tests replace it so command runs never touch the user's home
// directory or the network; setting PYPACK_NO_UPDATE_CHECK suppresses the
// check entirely.
var checkForUpdates = func() {
	if os.Getenv(branding.EnvVar("NO_UPDATE_CHECK")) != "" {
		return
	}
	u := updater.New(buildVersion)
	u.CheckAndPrintBanner(os.Stderr, config.Dir())
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

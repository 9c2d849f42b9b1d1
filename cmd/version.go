package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/samdoesblogs/sitecfg/pkg/settings"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print sitecfg version",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), versionString())
		return nil
	},
}

func versionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)", settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, runtime.Version())
}

func init() { //nolint:gochecknoinits
	rootCmd.Version = settings.VersionInformation.BuildVersion
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

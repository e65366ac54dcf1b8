package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heymumford/ftoc-sub003/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print relnotes build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "relnotes %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.BuildDate)
		if version.IsDevBuild() {
			fmt.Fprintln(cmd.OutOrStdout(), "built from source without release metadata")
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

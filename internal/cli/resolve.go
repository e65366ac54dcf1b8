package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the release version resolved from the project manifest",
	Long: `Resolve and print the release version from the project manifest, without
touching git history. Useful for scripting tag names or sanity-checking the
manifest before a release.

Examples:
  relnotes resolve
  relnotes resolve --manifest app/pom.xml --artifact-id app`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&generateManifestFlag, "manifest", "", "Path to the project manifest (default pom.xml)")
	resolveCmd.Flags().StringVar(&generateArtifactFlag, "artifact-id", "", "Anchor version resolution to this artifact")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	version, err := resolveVersion(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}

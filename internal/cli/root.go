// Package cli implements the relnotes command structure. Each subcommand
// lives in its own file and registers itself with the root command in init().
package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/heymumford/ftoc-sub003/internal/errors"
	"github.com/heymumford/ftoc-sub003/internal/gitlog"
)

var (
	cfgFile   string
	repoFlag  string
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "relnotes",
	Short: "Generate a grouped changelog section from conventional commits",
	Long: `Relnotes extracts the release version from the project manifest and
generates a Keep a Changelog style section from the commits since the
previous release tag.

Commit subjects are classified by their conventional-commit type token
(feat, fix, improve/refactor/perf, docs, security); anything else, such as
merge or chore commits, is left out of the changelog.`,
	Example: `  relnotes generate                  # Changelog since the previous tag
  relnotes generate --since v1.1.0   # Explicit range start
  relnotes resolve                   # Print the manifest version only`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			gitlog.SetDebugLogger(log.Printf)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to project config file (default .relnotes/config.yml)")
	rootCmd.PersistentFlags().StringVar(&repoFlag, "repo", "", "Path to the git repository (default current directory)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
}

// Execute runs the root command. Errors are formatted for the terminal here;
// the caller maps them to an exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
	} else {
		errors.PrintSimpleError(err, errors.Runtime)
	}
	return err
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heymumford/ftoc-sub003/internal/config"
	"github.com/heymumford/ftoc-sub003/internal/errors"
)

var initForceFlag bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented project config to .relnotes/config.yml",
	Long: `Create the project configuration directory with a fully commented config
file so the available keys are discoverable. Existing config files are left
untouched unless --force is given.

Examples:
  relnotes init
  relnotes init --force`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForceFlag, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.ProjectConfigPath()

	if !initForceFlag {
		if _, err := os.Stat(path); err == nil {
			return errors.NewConfigError(
				fmt.Sprintf("config file %s already exists", path),
				"Edit the existing file directly",
				"Rerun with --force to overwrite it")
		}
	}

	if err := os.MkdirAll(config.ProjectConfigDir(), 0o755); err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "creating config directory")
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "writing config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

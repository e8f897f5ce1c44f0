package cmd

import (
	"fmt"
	"os"

	"github.com/acristoffers/backup-wrapper/pkg/wrapper"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [FILE]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Creates an example configuration file",
	Long: `Writes an example configuration to FILE, or to backup-wrapper.toml in the
    current folder. Pass it to the other commands with --config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath(args)
		if err != nil {
			return fmt.Errorf("could not get configuration path: %w", err)
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, not overriding", path)
		}

		if err := wrapper.WriteExampleConfig(path); err != nil {
			return fmt.Errorf("cannot write %s: %w", path, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}

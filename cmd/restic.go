package cmd

import (
	"github.com/acristoffers/backup-wrapper/pkg/wrapper"
	"github.com/spf13/cobra"
)

var resticCmd = &cobra.Command{
	Use:   "restic",
	Short: "Performs a backup using the restic tool",
	Long: `Performs a backup using the restic tool.

    backup snapshots the tagged directories:
      restic -p PASSWORD_FILE backup DIR...

    clean keeps 7 daily and 2 weekly snapshots and prunes the rest:
      restic -p PASSWORD_FILE forget --keep-daily 7 --keep-weekly 2 --prune

    The repository is taken from the environment (RESTIC_REPOSITORY).
    `,
	Args: cobra.NoArgs,
	RunE: requireMode(wrapper.Restic),
}

func resticInvocation(cmd *cobra.Command, mode wrapper.Mode, config wrapper.Config) (wrapper.Invocation, error) {
	inv := wrapper.Invocation{Engine: wrapper.Restic, Mode: mode}
	required := requiredOptions{}

	if mode.NeedsPaths() {
		inv.Root = required.get(cmd, "root", config.Root)
	}
	inv.PasswordFile = required.get(cmd, "password-file", config.Restic.PasswordFile)

	return inv, required.err()
}

func init() {
	RootCmd.AddCommand(resticCmd)
	resticCmd.PersistentFlags().StringP("root", "r", "", "Set root directory for backup")
	resticCmd.PersistentFlags().StringP("password-file", "p", "", "Password file for restic repository")
	addModeCommands(resticCmd, wrapper.Restic, resticInvocation)
}

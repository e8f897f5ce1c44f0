package cmd

import (
	"github.com/acristoffers/backup-wrapper/pkg/wrapper"
	"github.com/spf13/cobra"
)

var duplicityCmd = &cobra.Command{
	Use:   "duplicity",
	Short: "Performs a backup using the duplicity tool",
	Long: `Performs a backup using the duplicity tool.

    Everything under --root is excluded except the tagged directories, which
    are passed as --include filters:
      duplicity full -v4 --archive-dir /var/backups/duplicity --use-agent \
        --encrypt-sign-key KEY --include DIR... --exclude '**' ROOT TARGET

    clean keeps the two most recent full backup chains:
      duplicity remove-all-but-n-full 2 TARGET
    `,
	Args: cobra.NoArgs,
	RunE: requireMode(wrapper.Duplicity),
}

func duplicityInvocation(cmd *cobra.Command, mode wrapper.Mode, config wrapper.Config) (wrapper.Invocation, error) {
	inv := wrapper.Invocation{Engine: wrapper.Duplicity, Mode: mode}
	required := requiredOptions{}

	if mode.NeedsPaths() {
		inv.Root = required.get(cmd, "root", config.Root)
	}
	inv.Target = required.get(cmd, "target", config.Duplicity.Target)
	if mode.NeedsPaths() {
		inv.Key = required.get(cmd, "key", config.Duplicity.Key)
	}

	if err := required.err(); err != nil {
		return inv, err
	}

	archiveDir, err := option(cmd, "archive-dir", config.Duplicity.ArchiveDir)
	if err != nil {
		return inv, err
	}
	inv.ArchiveDir = archiveDir

	return inv, nil
}

func init() {
	RootCmd.AddCommand(duplicityCmd)
	duplicityCmd.PersistentFlags().StringP("root", "r", "", "Set root directory for backup")
	duplicityCmd.PersistentFlags().StringP("target", "t", "", "Set duplicity backup target URL")
	duplicityCmd.PersistentFlags().StringP("key", "k", "", "Encryption key fingerprint")
	duplicityCmd.PersistentFlags().String("archive-dir", wrapper.DefaultArchiveDir, "Directory of the duplicity metadata cache")
	addModeCommands(duplicityCmd, wrapper.Duplicity, duplicityInvocation)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/acristoffers/backup-wrapper/pkg/wrapper"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "backup-wrapper",
	Short: "Backs up the directories tagged with an extended attribute",
	Long: `backup-wrapper selects what to back up by looking for an extended attribute.

    Tag the directories you want in your backups, then let backup-wrapper call
    duplicity or restic with exactly those directories. Everything that is not
    tagged is left out. Directories are searched up to two levels below the
    root.

    For example, to back up two home folders with restic:
      setfattr -n user.backup -v 1 /home/alice
      backup-wrapper tag /home/bob/Documents
      backup-wrapper list -r /home
      backup-wrapper restic -r /home -p /etc/restic/password backup
    `,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringP("level", "l", wrapper.DefaultLevel, "Attribute value a directory must have to be selected")
	RootCmd.PersistentFlags().StringP("attribute", "a", wrapper.DefaultAttribute, "Extended attribute holding the level")
	RootCmd.PersistentFlags().StringP("config", "c", "", "TOML file with default values for the flags")
	RootCmd.PersistentFlags().BoolP("dry-run", "n", false, "Print the command instead of running it")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every entry that could not be inspected")
}

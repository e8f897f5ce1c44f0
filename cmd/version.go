package cmd

import (
	"fmt"

	"github.com/acristoffers/backup-wrapper/pkg/wrapper"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows version and exits",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Version %s\n", wrapper.Version())
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

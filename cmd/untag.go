package cmd

import (
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/acristoffers/backup-wrapper/pkg/wrapper"
	"github.com/spf13/cobra"
)

var untagCmd = &cobra.Command{
	Use:   "untag DIRECTORY...",
	Args:  cobra.MinimumNArgs(1),
	Short: "Excludes directories from the backup",
	Long:  `Removes the backup attribute from each DIRECTORY, whatever its level.`,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		suggestions := []string{}

		config, err := loadConfig(cmd)
		if err != nil {
			return suggestions, cobra.ShellCompDirectiveNoFileComp
		}

		req, err := scanRequest(cmd, config, ".")
		if err != nil {
			return suggestions, cobra.ShellCompDirectiveNoFileComp
		}

		opts := wrapper.ScanOptions{
			Attrs:  attrs,
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		}
		for _, path := range wrapper.FindPaths(req, opts) {
			if path != "." && strings.HasPrefix(path, toComplete) && !slices.Contains(args, path) {
				suggestions = append(suggestions, path)
			}
		}

		return suggestions, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		attribute, err := option(cmd, "attribute", config.Attribute)
		if err != nil {
			return err
		}

		return eachDirectory(cmd, args, func(path string) error {
			return attrs.Remove(path, attribute)
		})
	},
}

func init() {
	RootCmd.AddCommand(untagCmd)
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/acristoffers/backup-wrapper/pkg/wrapper"
	"github.com/spf13/cobra"
)

// Reads, writes and removes the attribute. Replaced in tests, since not every
// filesystem supports user attributes.
type attrStore interface {
	wrapper.AttrReader
	Set(path string, name string, value []byte) error
	Remove(path string, name string) error
}

var attrs attrStore = wrapper.Xattrs{}

var tagCmd = &cobra.Command{
	Use:   "tag DIRECTORY...",
	Args:  cobra.MinimumNArgs(1),
	Short: "Marks directories to be included in the backup",
	Long: `Sets the backup attribute of each DIRECTORY to --level.

    It is the same as running
      setfattr -n user.backup -v 1 DIRECTORY

    Only directories at most two levels below the backup root are considered
    when backing up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		req, err := scanRequest(cmd, config, "")
		if err != nil {
			return err
		}

		return eachDirectory(cmd, args, func(path string) error {
			return attrs.Set(path, req.Attribute, []byte(req.Value))
		})
	},
}

func init() {
	RootCmd.AddCommand(tagCmd)
}

// Applies fn to each argument that is a directory. Failures are reported and
// skipped, and make the command fail once every argument was tried.
func eachDirectory(cmd *cobra.Command, args []string, fn func(path string) error) error {
	failed := 0

	for _, arg := range args {
		path, err := filepath.Abs(arg)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Skipping %s: Error getting path: %s.\n", arg, err)
			failed++
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Skipping %s: %s.\n", path, err)
			failed++
			continue
		} else if !info.IsDir() {
			fmt.Fprintf(cmd.ErrOrStderr(), "Skipping %s: Not a directory.\n", path)
			failed++
			continue
		}

		if err := fn(path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Skipping %s: %s.\n", path, err)
			failed++
			continue
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d directories could not be changed", failed, len(args))
	}

	return nil
}

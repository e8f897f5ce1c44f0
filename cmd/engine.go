package cmd

import (
	"fmt"

	"github.com/acristoffers/backup-wrapper/pkg/wrapper"
	"github.com/spf13/cobra"
)

// Replaced in tests, since a successful exec never returns.
var execCommand = wrapper.Exec

// Creates one subcommand per mode the engine supports. The mode is fixed when
// the command is created, so nothing downstream ever parses a mode name.
func addModeCommands(parent *cobra.Command, engine wrapper.Engine, invocation invocationFunc) {
	for _, mode := range engine.Modes() {
		parent.AddCommand(&cobra.Command{
			Use:   mode.String(),
			Short: mode.Description(),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runEngine(cmd, engine, mode, invocation)
			},
		})
	}
}

// Reads the engine specific flags into an Invocation, along with the root to
// scan. Missing values are reported as an error before anything else happens.
type invocationFunc func(cmd *cobra.Command, mode wrapper.Mode, config wrapper.Config) (wrapper.Invocation, error)

func runEngine(cmd *cobra.Command, engine wrapper.Engine, mode wrapper.Mode, invocation invocationFunc) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	inv, err := invocation(cmd, mode, config)
	if err != nil {
		return err
	}

	if mode.NeedsPaths() {
		req, err := scanRequest(cmd, config, inv.Root)
		if err != nil {
			return err
		}

		inv.Paths = findPaths(cmd, req, nil)
	}

	command, err := wrapper.Build(inv)
	if err != nil {
		return err
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), command.String())
		return nil
	}

	return execCommand(command)
}

// The engine commands only group the modes.
func requireMode(engine wrapper.Engine) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		names := []string{}
		for _, mode := range engine.Modes() {
			names = append(names, mode.String())
		}
		return fmt.Errorf("a mode is required, one of %v; see --help", names)
	}
}

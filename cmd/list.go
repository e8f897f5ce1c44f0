package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the list of directories to be included in the backup",
	Long: `Show the list of directories to be included in the backup.

    Directories are printed one per line, as soon as they are found, in the
    same order they are passed to the backup tool.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asTable, err := cmd.Flags().GetBool("table")
		if err != nil {
			return fmt.Errorf("could not parse options: %w", err)
		}

		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		required := requiredOptions{}
		root := required.get(cmd, "root", config.Root)
		if err := required.err(); err != nil {
			return err
		}

		req, err := scanRequest(cmd, config, root)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if !asTable {
			findPaths(cmd, req, func(path string) {
				fmt.Fprintln(out, path)
			})
			return nil
		}

		paths := findPaths(cmd, req, nil)

		renderer := lipgloss.NewRenderer(out)
		if file, ok := out.(*os.File); !ok || !term.IsTerminal(int(file.Fd())) {
			renderer.SetColorProfile(termenv.Ascii)
		}

		title := fmt.Sprintf("%s = %s under %s", req.Attribute, req.Value, req.Root)
		fmt.Fprintln(out, renderPathsTable(renderer, title, paths))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("root", "r", "", "Set root directory for search")
	listCmd.Flags().Bool("table", false, "Render the directories as a table")
}

func renderPathsTable(renderer *lipgloss.Renderer, title string, paths []string) string {
	headerStyle := renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"})

	titleStyle := renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "247"})

	borderStyle := renderer.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "240"})

	rows := make([][]string, 0, len(paths))
	for i, path := range paths {
		rows = append(rows, []string{strconv.Itoa(i + 1), path})
	}

	t := table.New().
		Headers("#", "Path").
		Rows(rows...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return renderer.NewStyle()
		})

	return strings.Join([]string{titleStyle.Render(title), t.Render()}, "\n")
}

package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the browse command for the interactive tree viewer.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		name    string
		backend string
	)

	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse a tree interactively",
		Long: `Browse opens an interactive viewer for a tree.

Keys:
  ↑/k, ↓/j   move the cursor
  →/l, ⏎     expand the selected node
  ←/h        collapse the selected node
  q, esc     quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.loadTree(cmd.Context(), args, name, backend)
			if err != nil {
				return err
			}

			model := newBrowseModel(root)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "load the named tree from the store")
	cmd.Flags().StringVar(&backend, "backend", "", "store backend: file (default), memory, null, redis, mongo")

	return cmd
}

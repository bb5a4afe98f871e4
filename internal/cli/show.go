package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arbor/pkg/render"
	"github.com/matzehuels/arbor/pkg/tree"
	"github.com/matzehuels/arbor/pkg/treeio"
)

// showOpts holds the command-line flags for the show command.
type showOpts struct {
	name     string // stored tree name, used instead of a file argument
	backend  string // store backend override
	path     string // subtree path to show instead of the whole tree
	detailed bool   // include content values in the outline
}

// showCommand creates the show command for printing a tree outline.
func (c *CLI) showCommand() *cobra.Command {
	var opts showOpts

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print a tree as a text outline",
		Long: `Show prints a tree as an indented outline with box-drawing connectors.

The tree comes from a JSON file argument, or from the store when --name
is given. With --path, only the named subtree is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.loadTree(cmd.Context(), args, opts.name, opts.backend)
			if err != nil {
				return err
			}
			if opts.path != "" {
				sub := root.FindPath(opts.path)
				if sub == nil {
					return fmt.Errorf("no node at path %q", opts.path)
				}
				root = sub
			}
			fmt.Print(render.Outline(root, render.Options{Detailed: opts.detailed}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "load the named tree from the store")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "store backend: file (default), memory, null, redis, mongo")
	cmd.Flags().StringVarP(&opts.path, "path", "p", "", "show only the subtree at this path")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include content values")

	return cmd
}

// loadTree resolves the tree input shared by several commands: a file
// argument, or a stored tree when name is set.
func (c *CLI) loadTree(ctx context.Context, args []string, name, backend string) (*tree.Node, error) {
	if name != "" {
		s, err := c.newStore(ctx, backend)
		if err != nil {
			return nil, err
		}
		defer s.Close()

		entry, err := s.Load(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", name, err)
		}
		return entry.Build()
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("either a file argument or --name is required")
	}
	return treeio.ImportFile(args[0])
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/treeio"
)

// storeCommand creates the store command group for tree persistence.
func (c *CLI) storeCommand() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Save, load, list, and delete stored trees",
	}
	cmd.PersistentFlags().StringVar(&backend, "backend", "", "store backend: file (default), memory, null, redis, mongo")

	cmd.AddCommand(c.storeSaveCommand(&backend))
	cmd.AddCommand(c.storeLoadCommand(&backend))
	cmd.AddCommand(c.storeListCommand(&backend))
	cmd.AddCommand(c.storeDeleteCommand(&backend))

	return cmd
}

func (c *CLI) storeSaveCommand(backend *string) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Save a tree file to the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))

			root, err := treeio.ImportFile(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = root.Name()
			}
			if err := errors.ValidateEntryName(name); err != nil {
				return err
			}

			s, err := c.newStore(ctx, *backend)
			if err != nil {
				return err
			}
			defer s.Close()

			entry, err := s.Save(ctx, name, root)
			if err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Saved %d nodes as %q", len(entry.Records), name))
			printDetail("id: %s", entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "entry name (default: root node name)")
	return cmd
}

func (c *CLI) storeLoadCommand(backend *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Load a stored tree and write it to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))

			s, err := c.newStore(ctx, *backend)
			if err != nil {
				return err
			}
			defer s.Close()

			entry, err := s.Load(ctx, args[0])
			if err != nil {
				return fmt.Errorf("loading %q: %w", args[0], err)
			}
			root, err := entry.Build()
			if err != nil {
				return err
			}

			if output == "" {
				output = args[0] + ".json"
			}
			if err := treeio.ExportFile(root, output); err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Loaded %d nodes from %q", root.Size(), args[0]))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <name>.json)")
	return cmd
}

func (c *CLI) storeListCommand(backend *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := c.newStore(ctx, *backend)
			if err != nil {
				return err
			}
			defer s.Close()

			infos, err := s.List(ctx)
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				printInfo("no stored trees")
				return nil
			}

			for _, info := range infos {
				fmt.Printf("%s %s %s\n",
					StyleValue.Render(info.Name),
					StyleNumber.Render(fmt.Sprintf("%d nodes", info.Nodes)),
					StyleDim.Render(info.UpdatedAt.Format("2006-01-02 15:04")))
			}
			return nil
		},
	}
}

func (c *CLI) storeDeleteCommand(backend *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := c.newStore(ctx, *backend)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(ctx, args[0]); err != nil {
				return err
			}
			printSuccess("deleted %q", args[0])
			return nil
		},
	}
}

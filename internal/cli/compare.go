package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arbor/pkg/tree"
)

// compareCommand creates the compare command for ordering two nodes of a tree.
func (c *CLI) compareCommand() *cobra.Command {
	var (
		name      string
		backend   string
		policyStr string
	)

	cmd := &cobra.Command{
		Use:   "compare [file] <path-a> <path-b>",
		Short: "Compare the positions of two nodes in a tree",
		Long: `Compare orders two nodes of the same tree under a comparison policy.

Paths are relative to the root, with slash-separated name elements and
optional [i] index elements. Policies:

  name               lexicographic by node name
  preorder           depth-first visiting order (default)
  breadth            level, then position within the level
  direct             only ancestor/descendant pairs are comparable
  direct-or-sibling  ancestor/descendant pairs and siblings`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fileArgs []string
			pathA, pathB := args[0], args[1]
			if len(args) == 3 {
				fileArgs, pathA, pathB = args[:1], args[1], args[2]
			}

			root, err := c.loadTree(cmd.Context(), fileArgs, name, backend)
			if err != nil {
				return err
			}

			policy, err := tree.ParsePolicy(policyStr)
			if err != nil {
				return err
			}

			a := root.FindPath(pathA)
			if a == nil {
				return fmt.Errorf("no node at path %q", pathA)
			}
			b := root.FindPath(pathB)
			if b == nil {
				return fmt.Errorf("no node at path %q", pathB)
			}

			ord, ok, err := a.Compare(b, policy)
			if err != nil {
				return err
			}

			switch {
			case !ok:
				printWarning("%s and %s are not comparable under policy %s",
					StyleHighlight.Render(a.Path()), StyleHighlight.Render(b.Path()), policy)
			case ord < 0:
				printSuccess("%s comes before %s", StyleHighlight.Render(a.Path()), StyleHighlight.Render(b.Path()))
			case ord > 0:
				printSuccess("%s comes after %s", StyleHighlight.Render(a.Path()), StyleHighlight.Render(b.Path()))
			default:
				printSuccess("%s and %s are the same node", StyleHighlight.Render(a.Path()), StyleHighlight.Render(b.Path()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "load the named tree from the store")
	cmd.Flags().StringVar(&backend, "backend", "", "store backend: file (default), memory, null, redis, mongo")
	cmd.Flags().StringVar(&policyStr, "policy", "preorder", "comparison policy")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCommand creates the stats command for printing tree metrics.
func (c *CLI) statsCommand() *cobra.Command {
	var (
		name    string
		backend string
	)

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Print size, height, and breadth of a tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.loadTree(cmd.Context(), args, name, backend)
			if err != nil {
				return err
			}

			leaves := 0
			maxDegree := 0
			for n := range root.All() {
				if n.IsLeaf() {
					leaves++
				}
				if d := n.OutDegree(); d > maxDegree {
					maxDegree = d
				}
			}

			fmt.Println(StyleTitle.Render(root.Name()))
			printKeyValue("nodes", StyleNumber.Render(fmt.Sprint(root.Size())))
			printKeyValue("height", StyleNumber.Render(fmt.Sprint(root.Height())))
			printKeyValue("breadth", StyleNumber.Render(fmt.Sprint(root.Breadth())))
			printKeyValue("leaves", StyleNumber.Render(fmt.Sprint(leaves)))
			printKeyValue("max degree", StyleNumber.Render(fmt.Sprint(maxDegree)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "load the named tree from the store")
	cmd.Flags().StringVar(&backend, "backend", "", "store backend: file (default), memory, null, redis, mongo")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arbor/pkg/treeio"
)

// convertCommand creates the convert command for switching between the
// nested and flat JSON layouts.
func (c *CLI) convertCommand() *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a tree file between nested and flat JSON",
		Long: `Convert reads a tree file and writes it in another layout.

Formats are detected from the file extensions (.flat.json selects the flat
record layout, .json the nested one) and can be forced with --from/--to.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			from, err := resolveFormat(fromStr, args[0])
			if err != nil {
				return err
			}
			to, err := resolveFormat(toStr, args[1])
			if err != nil {
				return err
			}

			root, err := treeio.ImportFileFormat(args[0], from)
			if err != nil {
				return err
			}
			if err := treeio.ExportFileFormat(root, args[1], to); err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Converted %d nodes (%s to %s)", root.Size(), from, to))
			printFile(args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "input format: nested or flat (default: from extension)")
	cmd.Flags().StringVar(&toStr, "to", "", "output format: nested or flat (default: from extension)")

	return cmd
}

// resolveFormat picks a format from an explicit flag value, falling back to
// extension detection on path.
func resolveFormat(flag, path string) (treeio.Format, error) {
	if flag == "" {
		return treeio.DetectFormat(path), nil
	}
	return treeio.ParseFormat(flag)
}

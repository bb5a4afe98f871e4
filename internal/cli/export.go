package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	name     string // stored tree name, used instead of a file argument
	backend  string // store backend override
	output   string // output file path
	format   string // output format: dot, svg, png
	detailed bool   // include content and subtree size in labels
}

// exportCommand creates the export command for rendering diagrams.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Render a tree as a DOT, SVG, or PNG diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			root, err := c.loadTree(cmd.Context(), args, opts.name, opts.backend)
			if err != nil {
				return err
			}

			output := opts.output
			if output == "" {
				output = defaultOutput(args, opts.name, opts.format)
			}
			if err := errors.ValidateOutputPath(output); err != nil {
				return err
			}

			dot := render.ToDOT(root, render.Options{Detailed: opts.detailed})

			var data []byte
			switch opts.format {
			case formatDOT:
				data = []byte(dot)
			case formatSVG:
				if data, err = render.RenderSVG(dot); err != nil {
					return err
				}
			case formatPNG:
				if data, err = render.RenderPNG(dot); err != nil {
					return err
				}
			default:
				return errors.New(errors.ErrCodeInvalidFormat,
					"unknown export format %q (want dot, svg, or png)", opts.format)
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Rendered %d nodes to %s", root.Size(), strings.ToUpper(opts.format)))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "load the named tree from the store")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "store backend: file (default), memory, null, redis, mongo")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include content and subtree size in labels")

	return cmd
}

// defaultOutput derives an output path from the input file or stored name.
func defaultOutput(args []string, name, format string) string {
	base := name
	if len(args) > 0 {
		base = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		base = strings.TrimSuffix(base, ".flat")
	}
	if base == "" {
		base = "tree"
	}
	return base + "." + format
}

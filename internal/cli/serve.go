package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/arbor/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen  string
		backend string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve stored trees over an HTTP API",
		Long: `Serve starts an HTTP server exposing stored trees:

  GET    /v1/trees                      list stored trees
  GET    /v1/trees/{name}               fetch a tree (flat records)
  PUT    /v1/trees/{name}               store a tree
  DELETE /v1/trees/{name}               delete a tree
  GET    /v1/trees/{name}/nodes/{path}  fetch a single subtree`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if listen == "" {
				listen = c.Config.Server.Listen
			}

			s, err := c.newStore(ctx, backend)
			if err != nil {
				return err
			}
			defer s.Close()

			srv := server.New(s, c.Logger)
			c.Logger.Info("serving", "addr", listen)
			return srv.ListenAndServe(ctx, listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default from config, localhost:8080)")
	cmd.Flags().StringVar(&backend, "backend", "", "store backend: file (default), memory, null, redis, mongo")

	return cmd
}

// Package cli implements the arbor command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/arbor/pkg/buildinfo"
	"github.com/matzehuels/arbor/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "arbor"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and configuration
// loaded from the config file (or defaults when none exists).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: LoadConfigOrDefault(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "arbor",
		Short:        "Arbor manipulates trees of named nodes",
		Long:         `Arbor is a CLI tool for building, inspecting, comparing, and visualizing trees of named nodes, with persistence across file, Redis, and MongoDB backends.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Make the CLI logger available to commands via context
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	// Register all subcommands
	root.AddCommand(c.showCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Store Factory
// =============================================================================

// newStore creates the storage backend selected by flag or config.
// An empty backend falls back to the configured default.
func (c *CLI) newStore(ctx context.Context, backend string) (store.Store, error) {
	s, err := c.newBackend(ctx, backend)
	if err != nil {
		return nil, err
	}
	return store.WithHooks(s), nil
}

func (c *CLI) newBackend(ctx context.Context, backend string) (store.Store, error) {
	if backend == "" {
		backend = c.Config.Store.Backend
	}
	switch backend {
	case "file":
		dir := c.Config.Store.Dir
		if dir == "" {
			var err error
			if dir, err = dataDir(); err != nil {
				return nil, err
			}
		}
		return store.NewFileStore(dir)
	case "memory":
		return store.NewMemoryStore(), nil
	case "null":
		return store.NewNullStore(), nil
	case "redis":
		return store.NewRedisStore(ctx, c.Config.Store.RedisAddr)
	case "mongo":
		return store.NewMongoStore(ctx, c.Config.Store.MongoURI, c.Config.Store.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown store backend %q (want file, memory, null, redis, or mongo)", backend)
	}
}

// =============================================================================
// Paths
// =============================================================================

// dataDir returns the data directory using XDG standard (~/.local/share/arbor/).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/arbor/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

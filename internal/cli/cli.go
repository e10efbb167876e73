// Package cli implements the strata command-line interface.
//
// This package provides commands for computing layered graph layouts,
// rendering them as DOT or SVG, serving the layout API over HTTP, and
// managing the layout cache. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute node coordinates for a graph JSON file
//   - render: Generate DOT, SVG, or JSON output from a graph
//   - serve: Run the HTTP layout API
//   - cache: Manage the local layout cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/strata/pkg/buildinfo"
	"github.com/matzehuels/strata/pkg/cache"
	"github.com/matzehuels/strata/pkg/config"
	"github.com/matzehuels/strata/pkg/layout"
)

// appName is the application name used for directories and display.
const appName = "strata"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Strata computes layered graph layouts",
		Long:         `Strata is a CLI tool for computing layered (Sugiyama-style) layouts of directed graphs, assigning every node a rank and pixel coordinates suitable for rendering.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a layout runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*layout.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return layout.NewRunner(store, nil, c.Logger), nil
}

// newCache returns the local file cache, or a null cache when caching
// is disabled or the cache directory is unavailable.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir := cacheDir()
	if dir == "" {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the local layout cache directory.
func cacheDir() string {
	return config.Default().Cache.Dir
}

// openCacheBackend constructs the cache selected by the config, used by
// the serve command. The file backend is the default.
func openCacheBackend(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cfg.Addr, cfg.Pass, cfg.DB)
	default:
		return cache.NewFileCache(cfg.Dir)
	}
}

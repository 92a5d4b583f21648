// Package cli implements the collectorsed command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/collectorsed/collectorsed/pkg/buildinfo"
	"github.com/collectorsed/collectorsed/pkg/cache"
	"github.com/collectorsed/collectorsed/pkg/pipeline"
	"github.com/collectorsed/collectorsed/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "collectorsed"

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

	// mongoURI enables the MongoDB run archive when set (via --mongo).
	mongoURI string
	// redisAddr switches the result cache to Redis when set (via --redis).
	redisAddr string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Collectorsed simulates seafloor sediment under a collector vehicle",
		Long:         `Collectorsed is a CLI tool for simulating the sediment plume of a seafloor collector vehicle over a one-dimensional section: each collector pass cuts the bed, returns part of the cut as settled sediment, and redistributes the rest across neighboring cells.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.mongoURI, "mongo", "", "MongoDB URI for the run archive (archiving disabled when empty)")
	root.PersistentFlags().StringVar(&c.redisAddr, "redis", "", "Redis address for the result cache (file cache when empty)")

	// Register all subcommands
	root.AddCommand(c.runCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.archiveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	st, err := c.newStore(ctx)
	if err != nil {
		_ = cch.Close()
		return nil, err
	}
	return pipeline.NewRunner(cch, st, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if c.redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisOptions{Addr: c.redisAddr})
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newStore opens the run archive, or returns nil when archiving is disabled.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	if c.mongoURI == "" {
		return nil, nil
	}
	return store.NewMongoStore(ctx, store.MongoOptions{URI: c.mongoURI})
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/collectorsed/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatJSON}
	}
	return strings.Split(s, ",")
}

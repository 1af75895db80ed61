// Package cli implements the boggen command-line interface.
//
// This package provides commands for generating constrained word boards,
// replaying known boards, compiling word lists into dictionary graphs,
// playing boards interactively, serving the HTTP API, and managing the
// local result cache. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Roll dice until a board satisfies the given constraints
//   - replay: Solve a known board and print its word list
//   - dice: List the built-in dice catalogs
//   - dict: Compile and inspect dictionary files
//   - play: Play a board interactively in the terminal
//   - serve: Run the board generation HTTP API
//   - cache: Manage the local result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/tilesmith/boggen/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tilesmith/boggen/pkg/buildinfo"
	"github.com/tilesmith/boggen/pkg/cache"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "boggen"

	// dictFileName is the default compiled dictionary file name.
	dictFileName = "words.dwg"
)

// =============================================================================
// Entry Point
// =============================================================================

// Execute runs the boggen CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI under an externally managed context, typically
// one cancelled on SIGINT/SIGTERM by the caller.
func ExecuteContext(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "boggen",
		Short:        "Boggen generates constrained word-game boards",
		Long:         `Boggen rolls letter dice and searches the resulting grids against a compiled dictionary graph, repeating until a board satisfies the requested word count, score, and longest-word constraints.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newReplayCmd())
	root.AddCommand(newDiceCmd())
	root.AddCommand(newDictCmd())
	root.AddCommand(newPlayCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCLICache builds the cache used by CLI commands. Falls back to a null
// cache when disabled or when the cache directory cannot be resolved.
func newCLICache(ctx context.Context, cfg *Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if cfg.RedisAddr != "" {
		return cache.NewRedisCache(ctx, cfg.RedisAddr)
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory, honoring the config override and
// the XDG standard (~/.cache/boggen/).
func cacheDir(cfg *Config) (string, error) {
	if cfg != nil && cfg.CacheDir != "" {
		return cfg.CacheDir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// dataDir returns the data directory used for compiled dictionaries,
// honoring the XDG standard (~/.local/share/boggen/).
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

// defaultDictPath resolves the dictionary file for commands that need one:
// the config override first, then the data directory default.
func defaultDictPath(cfg *Config) (string, error) {
	if cfg != nil && cfg.Dictionary != "" {
		return cfg.Dictionary, nil
	}
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dictFileName), nil
}

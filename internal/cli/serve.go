package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tilesmith/boggen/internal/server"
	"github.com/tilesmith/boggen/pkg/generate"
	"github.com/tilesmith/boggen/pkg/solve"
)

// newServeCmd creates the serve command.
func newServeCmd() *cobra.Command {
	var (
		addr     string
		dictPath string
		noCache  bool
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the board generation HTTP API",
		Long: `Serve exposes board generation over HTTP.

Endpoints:
  GET  /healthz           liveness probe
  GET  /v1/dice           list the built-in dice catalogs
  POST /v1/boards         generate a constrained board
  POST /v1/boards/replay  solve a known board

Explicitly seeded generation requests are cached; set redis_addr in the
config file to share the cache across instances, otherwise results land in
the local file cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if addr == "" {
				addr = cfg.ListenAddr
			}
			if addr == "" {
				addr = ":8080"
			}

			dict, path, err := loadDict(dictPath)
			if err != nil {
				return err
			}
			logger.Debug("loaded dictionary", "path", path, "words", dict.WordCount())

			store, err := newCLICache(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			gen := generate.New(dict, solve.DefaultScores, logger)
			srv := server.New(gen, server.Options{
				Cache:    store,
				Logger:   logger,
				CacheTTL: ttl,
			})

			httpSrv := &http.Server{
				Addr:              addr,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", addr)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpSrv.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default: config, then :8080)")
	cmd.Flags().StringVar(&dictPath, "dict", "", "dictionary file (default: config, then data dir)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")
	cmd.Flags().DurationVar(&ttl, "cache-ttl", 0, "cache entry lifetime (default 24h)")

	return cmd
}

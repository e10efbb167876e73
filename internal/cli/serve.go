package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/strata/internal/api"
	"github.com/matzehuels/strata/pkg/config"
	"github.com/matzehuels/strata/pkg/layout"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// stop signal arrives.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command for running the HTTP layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout API",
		Long: `Run the HTTP layout API.

The server exposes POST /v1/layout for computing layouts and GET /healthz
for liveness checks. Settings are read from a TOML config file when one
is present; flags override it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", appName+".toml", "path to config file")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled or
// the listener fails.
func (c *CLI) runServe(ctx context.Context, cfg config.Config) error {
	store, err := openCacheBackend(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("open cache backend %q: %w", cfg.Cache.Backend, err)
	}

	runner := layout.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.NewServer(runner, c.Logger).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", cfg.Server.Addr, "cache", cfg.Cache.Backend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

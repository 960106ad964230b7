package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/pocketcasino/internal/api"
	"github.com/mcoot/pocketcasino/internal/factory"
)

func newServeCmd() *cobra.Command {
	var (
		host        string
		port        int
		allowRemote bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the casino as a local JSON API",
		Long: `Serve the engine over HTTP under /api/v1 with a server-sent event stream
at /api/v1/events. Only loopback clients are accepted unless
--allow-remote is set.

Progress is saved after every change and flushed on shutdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverCfg := api.DefaultServerConfig()
			serverCfg.Host = conf.Server.Host
			serverCfg.Port = conf.Server.Port
			if cmd.Flags().Changed("host") {
				serverCfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				serverCfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cmd.OutOrStdout(), serverCfg, allowRemote)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen host (default from config)")
	cmd.Flags().IntVar(&port, "port", 0, "Listen port, 0 picks a free one (default from config)")
	cmd.Flags().BoolVar(&allowRemote, "allow-remote", false, "Accept requests from non-loopback addresses")
	return cmd
}

// runServer serves until ctx is cancelled or the listener fails
func runServer(ctx context.Context, out io.Writer, serverCfg api.ServerConfig, allowRemote bool) error {
	app, err := factory.New(ctx, factory.ConfigFrom(conf, logger))
	if err != nil {
		return fmt.Errorf("open casino: %w", err)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		Session:     app.Session,
		Hub:         app.Hub,
		AllowRemote: allowRemote,
	})
	server := api.NewServer(router, serverCfg, logger)
	if err := server.Listen(); err != nil {
		app.Hub.Close()
		return errors.Join(err, app.Close(context.Background()))
	}
	fmt.Fprintf(out, "Casino API listening on http://%s\n", server.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve()
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	// Event streams only end when the hub closes, so close it before
	// waiting for in-flight requests.
	app.Hub.Close()
	shutdownErr := server.Shutdown(context.Background())
	closeErr := app.Close(context.Background())
	if closeErr != nil {
		logger.Error("failed to close casino", slog.String("error", closeErr.Error()))
	}
	return errors.Join(serveErr, shutdownErr, closeErr)
}

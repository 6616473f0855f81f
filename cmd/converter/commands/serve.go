package commands

import (
	"context"
	"errors"
	"net"
	nhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"go-currency-converter/http"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API, the rate chart and metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := log.With(a.logger, "component", "http")
			handler := http.NewServer(
				a.exchange,
				a.interest,
				a.cfg.ChartTopN,
				promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}),
				logger,
			)

			server := &nhttp.Server{
				Addr:              net.JoinHostPort("", a.cfg.Port),
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			}

			errs := make(chan error, 1)
			go func() {
				level.Info(logger).Log("msg", "listening", "addr", server.Addr)
				errs <- server.ListenAndServe()
			}()

			select {
			case err := <-errs:
				return err
			case <-ctx.Done():
			}

			level.Info(logger).Log("msg", "shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errs; !errors.Is(err, nhttp.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	return cmd
}

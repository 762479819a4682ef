package commands

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"agendas-mcp/internal/httpapi"

	"github.com/pkg/browser"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	serveAddr string
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard aggregates as a JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = cfg.HTTPAddr
		}

		ctx, stop := signalContext()
		defer stop()

		go func() {
			_ = store.Load(ctx)
		}()

		srv := &http.Server{
			Addr: addr,
			Handler: httpapi.New(&httpapi.Config{
				Store:          store,
				Metrics:        dashboardMetrics,
				MetricsHandler: promhttp.Handler(),
			}),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return err
		}
		url := "http://" + browseHost(ln.Addr().String())
		log.Info().Str("addr", ln.Addr().String()).Msg("HTTP API listening")

		if serveOpen {
			if err := browser.OpenURL(url + "/api/dashboard"); err != nil {
				log.Warn().Err(err).Msg("Failed to open browser")
			}
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Serve(ln)
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			log.Info().Msg("Shutting down HTTP API")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

// browseHost replaces wildcard listen hosts with localhost.
func browseHost(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "::" || strings.HasPrefix(host, "0.0.0.0") {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default HTTP_ADDR or :8080)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the dashboard endpoint in the default browser")
	rootCmd.AddCommand(serveCmd)
}

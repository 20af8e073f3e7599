package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/axelarnetwork/polls/app"
	"github.com/axelarnetwork/polls/x/poll/client/rest"
)

// RouteMetrics serves prometheus metrics when telemetry is enabled
const RouteMetrics = "/metrics"

// NewServeCmd returns the command that serves the REST API until interrupted
func NewServeCmd(srvCtx *serverContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API of the poll module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, srvCtx)
		},
	}
}

func serve(ctx context.Context, srvCtx *serverContext) error {
	a, err := srvCtx.openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	router, err := newRouter(a, srvCtx.config)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              srvCtx.config.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: srvCtx.config.ShutdownTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		srvCtx.logger.Info("serving REST API", "addr", srv.Addr, "telemetry", srvCtx.config.Telemetry)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		srvCtx.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), srvCtx.config.ShutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newRouter(a *app.App, conf app.Config) (*mux.Router, error) {
	r := mux.NewRouter()
	rest.RegisterRoutes(a, r)

	if !conf.Telemetry {
		return r, nil
	}

	if _, err := telemetry.New(telemetry.Config{
		ServiceName:             app.Name,
		Enabled:                 true,
		EnableHostnameLabel:     false,
		EnableServiceLabel:      true,
		PrometheusRetentionTime: 60,
		GlobalLabels:            [][]string{{"chain_id", conf.ChainID}},
	}); err != nil {
		return nil, err
	}

	r.Handle(RouteMetrics, promhttp.Handler()).Methods(http.MethodGet)

	return r, nil
}

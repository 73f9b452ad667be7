package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/buildinfo"
	knn "github.com/AeronFaust/CISC-7700X-HW-2/internal/config"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/logging"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/metrics"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/predict"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/server"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/setup"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/shutdown"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintf(
		os.Stdout,
		"%s: %s, %s\n",
		buildinfo.Info.Name(),
		buildinfo.Info.Time(),
		buildinfo.Info.Tag(),
	)

	if err := serve(); err != nil {
		logging.FromContext(context.Background()).Fatal(err)
	}
}

func serve() error {
	ctx, done := shutdown.New()
	defer done()
	return run(ctx)
}

func run(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	config := knn.Config{}
	env, err := setup.Setup(ctx, &config)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	defer func() {
		if err := env.Close(ctx); err != nil {
			logger.Errorf("env.Close: %v", err)
		}
	}()

	store := env.Store()
	classifier, err := env.ProvideClassifier()(store)
	if err != nil {
		return fmt.Errorf("classifier provider function error: %w", err)
	}

	exporter, err := metrics.NewExporter()
	if err != nil {
		return fmt.Errorf("metrics.NewExporter: %w", err)
	}

	var recorder predict.Recorder
	if j := env.Journal(); j != nil {
		recorder = j
	}
	predictHandler, err := predict.NewHandler(&config.Predict, classifier, config.Predictor.K, recorder)
	if err != nil {
		return fmt.Errorf("predict.NewHandler: %w", err)
	}

	ready := func() bool { return store.Len() > 0 }
	mux := http.NewServeMux()
	mux.Handle("/predict", predictHandler)
	mux.Handle("/health", server.HandleHealth(ctx, ready))

	srv, err := server.New(config.SrvAddr, config.MaxConns)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}
	metricsSrv, err := server.New(config.MetricsAddr, 0)
	if err != nil {
		closeServers(ctx, srv)
		return fmt.Errorf("server.New: %w", err)
	}
	var grpcSrv *server.Server
	if config.GRPCAddr != "" {
		if grpcSrv, err = server.New(config.GRPCAddr, config.MaxConns); err != nil {
			closeServers(ctx, srv, metricsSrv)
			return fmt.Errorf("server.New: %w", err)
		}
	}
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", exporter)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("serving predictions on %s", srv.Addr())
		return srv.ServeHTTPHandler(ctx, mux)
	})
	g.Go(func() error {
		logger.Infof("serving metrics on %s", metricsSrv.Addr())
		return metricsSrv.ServeHTTPHandler(ctx, metricsMux)
	})

	if grpcSrv != nil {
		healthSrv := health.NewServer()
		status := healthpb.HealthCheckResponse_NOT_SERVING
		if ready() {
			status = healthpb.HealthCheckResponse_SERVING
		}
		healthSrv.SetServingStatus("", status)
		s := grpc.NewServer()
		healthpb.RegisterHealthServer(s, healthSrv)
		g.Go(func() error {
			logger.Infof("serving grpc health on %s", grpcSrv.Addr())
			return grpcSrv.ServeGRPC(ctx, s)
		})
	}

	return g.Wait()
}

func closeServers(ctx context.Context, servers ...*server.Server) {
	for _, s := range servers {
		if err := s.Close(); err != nil {
			logging.FromContext(ctx).Errorf("closing listener %s: %v", s.Addr(), err)
		}
	}
}

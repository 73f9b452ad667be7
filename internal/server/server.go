package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/logging"
	"golang.org/x/net/netutil"
	"google.golang.org/grpc"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	addr     string
	listener net.Listener
}

// New listens on addr. maxConns above zero caps the number of simultaneously
// accepted connections.
func New(addr string, maxConns int) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create listener on %s: %w", addr, err)
	}
	if maxConns > 0 {
		listener = netutil.LimitListener(listener, maxConns)
	}

	return &Server{
		addr:     addr,
		listener: listener,
	}, nil
}

func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Close releases the listener of a server that will not be served.
func (s *Server) Close() error {
	return s.listener.Close()
}

func (s *Server) ServeHTTP(ctx context.Context, srv *http.Server) error {
	logger := logging.FromContext(ctx)
	errCh := make(chan error, 1)
	go func() {
		<-ctx.Done()

		logger.Debugf("server.Serve: context closed")
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()

		logger.Debugf("server.Serve: shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			select {
			case errCh <- err:
			default:
			}
		}
	}()

	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	logger.Debugf("server.Serve: serving stopped")

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to shutdown: %w", err)
	default:
		return nil
	}
}

func (s *Server) ServeHTTPHandler(ctx context.Context, handler http.Handler) error {
	return s.ServeHTTP(ctx, &http.Server{
		Handler: handler,
	})
}

func (s *Server) ServeGRPC(ctx context.Context, srv *grpc.Server) error {
	logger := logging.FromContext(ctx)
	logger.Debugf("server: grpc listening on %s", s.addr)
	go func() {
		<-ctx.Done()
		logger.Debugf("server: grpc context closed, stopping")
		srv.GracefulStop()
	}()

	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("failed to serve grpc: %w", err)
	}

	logger.Debugf("server: grpc serving stopped")
	return nil
}

// HandleHealth reports 200 while ctx is alive and the store holds data.
func HandleHealth(ctx context.Context, ready func() bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-ctx.Done():
			http.Error(w, `{"status": "shutting down"}`, http.StatusServiceUnavailable)
			return
		default:
		}
		if ready != nil && !ready() {
			http.Error(w, `{"status": "no training data"}`, http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprint(w, `{"status": "ok"}`)
	})
}

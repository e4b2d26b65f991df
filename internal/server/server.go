package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-drip-watch/internal/config"
	"github.com/MKhiriev/go-drip-watch/internal/handler"
	"github.com/MKhiriev/go-drip-watch/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer binds the listeners of every configured transport. Binding
// happens here so address errors are reported before RunServer.
func NewServer(handlers *handler.Handlers, cfg *config.CompanionConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	return newServer(handlers, cfg, logger)
}

func newServer(handlers *handler.Handlers, cfg *config.CompanionConfig, logger *logger.Logger) (*server, error) {
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		h, err := newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, cfg.RequestTimeout, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = h
	}

	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		g, err := newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger)
		if err != nil {
			if servers.httpServer != nil {
				servers.httpServer.listener.Close()
			}
			return nil, err
		}
		servers.gRPCServer = g
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}
	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run serves until ctx is done and then shuts every server down.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errors.New("no servers to run")
	}

	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.listener.Addr().String()).Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", s.gRPCServer.gRPCNetListener.Addr().String()).Msg("Launching GRPC server")
		go s.gRPCServer.RunServer()
	}

	<-ctx.Done()
	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

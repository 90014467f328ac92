// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"time"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/handler"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds the graceful HTTP shutdown.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	// launch all created servers
	if s.httpServer != nil {
		g.Go(s.httpServer.run)
	}
	if s.gRPCServer != nil {
		g.Go(s.gRPCServer.run)
	}

	// stop everything on cancellation or when one transport fails
	g.Go(func() error {
		<-gctx.Done()
		s.shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		s.httpServer.shutdown(ctx)
	}
	if s.gRPCServer != nil {
		s.gRPCServer.shutdown()
	}
}

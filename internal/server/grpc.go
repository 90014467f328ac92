// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-report-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-report-keeper/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	server  *grpc.Server
	address string

	// listener is set by tests; nil means listen on address.
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) run() error {
	ln := g.listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", g.address); err != nil {
			return fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
		}
	}

	g.logger.Info().Str("address", ln.Addr().String()).Msg("Launching GRPC server")
	if err := g.server.Serve(ln); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.server.GracefulStop()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-report-keeper/internal/handler/http"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/metrics"
	"github.com/MKhiriev/go-report-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. The gRPC
// handler only serves health checks, so it needs the database pinger rather
// than the services.
func NewHandlers(services *service.Services, pinger grpc.Pinger, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, m, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, grpc.DefaultPingInterval, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

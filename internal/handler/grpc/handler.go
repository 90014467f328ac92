// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service of the report
// keeper. The serving status follows a periodic database ping.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health-checked service name besides the overall "".
const ServiceName = "reportkeeper.ReportService"

// DefaultPingInterval is used when the handler is created with a
// non-positive interval.
const DefaultPingInterval = 15 * time.Second

// Pinger is satisfied by *sql.DB and by store.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It owns a [health.Server] and keeps its status in sync with the database:
// SERVING while pings succeed, NOT_SERVING otherwise. A handler instance is
// created once at startup and shared by the gRPC server.
type Handler struct {
	health   *health.Server
	pinger   Pinger
	interval time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Until the first ping completes every
// service reports NOT_SERVING.
func NewHandler(pinger Pinger, interval time.Duration, logger *logger.Logger) *Handler {
	if interval <= 0 {
		interval = DefaultPingInterval
	}

	h := &Handler{
		health:   health.NewServer(),
		pinger:   pinger,
		interval: interval,
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Run pings the database immediately and then every interval until ctx is
// done. On exit every service is switched to NOT_SERVING for good.
func (h *Handler) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	defer h.health.Shutdown()

	for {
		h.Check(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Check pings the database once and updates the serving status.
func (h *Handler) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.PingContext(pingCtx); err != nil {
		h.logger.Warn().Err(err).Str("func", "grpc.Handler.Check").Msg("database ping failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/metrics"
	"github.com/MKhiriev/go-report-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// metrics is optional; a nil value disables the metrics middleware and
	// the /metrics endpoint.
	metrics *metrics.Metrics

	cfg config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		cfg:      cfg,
		logger:   logger,
	}
}

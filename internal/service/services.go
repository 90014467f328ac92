// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/metrics"
	"github.com/MKhiriev/go-report-keeper/internal/store"
	"github.com/MKhiriev/go-report-keeper/models"
)

type Services struct {
	AuthService    AuthService
	ReportService  ReportService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. The report service is
// decorated as metrics(validation(core)), so rejected requests are counted
// too.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	reportService := NewReportService(storages, m, logger)
	reportService = NewReportValidationService().Wrap(reportService)
	reportService = NewReportMetricsService(m).Wrap(reportService)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ReportService:  reportService,
		AppInfoService: appInfoService,
	}, nil
}

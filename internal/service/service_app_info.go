// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version unless the binary was built with an
// explicit version, which then wins.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := build.BuildVersion()
	if version == "" || version == models.BuildInfoNotAvailable {
		version = cfg.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.AppInfo{
			Version:     version,
			BuildDate:   build.BuildDate(),
			BuildCommit: build.BuildCommit(),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}

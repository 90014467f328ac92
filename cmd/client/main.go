// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-report-keeper/internal/adapter"
	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log := logger.NewClientLogger("report-keeper-client")

	newAdapter := func(cfg config.Adapter) (adapter.ReportAdapter, error) {
		return adapter.NewHTTPReportAdapter(cfg, log)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	root := newRootCmd(newAdapter, buildInfo, log)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/handler"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/metrics"
	"github.com/MKhiriev/go-report-keeper/internal/server"
	"github.com/MKhiriev/go-report-keeper/internal/service"
	"github.com/MKhiriev/go-report-keeper/internal/store"
	"github.com/MKhiriev/go-report-keeper/internal/workers"
	"github.com/MKhiriev/go-report-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("report-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = run(ctx, cfg, buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

// run wires the application and blocks until ctx is cancelled or a
// transport fails. Background workers are stopped before it returns.
func run(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	m := metrics.New()
	if err = m.RegisterDB(storages.DB.DB, "report_keeper"); err != nil {
		return fmt.Errorf("error registering database metrics: %w", err)
	}

	services, err := service.NewServices(storages, *cfg, buildInfo, m, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, storages.DB, cfg.Server, m, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	background := []workers.Worker{workers.NewOrphanCleaner(storages, cfg.Workers, m, log)}
	if handlers.GRPC != nil {
		background = append(background, handlers.GRPC)
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Go(func() {
		workers.NewWorkers(background...).Run(workersCtx)
	})
	defer func() {
		stopWorkers()
		wg.Wait()
	}()

	return srv.RunServer(ctx)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-report-keeper/internal/adapter"
	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/models"
	"github.com/spf13/cobra"
)

// tokenEnv holds the bearer token between invocations, e.g.
// export REPORT_KEEPER_TOKEN=$(report-keeper login --email ... --quiet).
const tokenEnv = "REPORT_KEEPER_TOKEN"

type adapterFactory func(cfg config.Adapter) (adapter.ReportAdapter, error)

// cli is the state shared by all subcommands of one invocation.
type cli struct {
	newAdapter adapterFactory
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger

	address  string
	timeout  time.Duration
	token    string
	logLevel string

	adapter adapter.ReportAdapter
}

func newRootCmd(newAdapter adapterFactory, buildInfo models.AppBuildInfo, log *logger.Logger) *cobra.Command {
	c := &cli{newAdapter: newAdapter, buildInfo: buildInfo, logger: log}

	root := &cobra.Command{
		Use:   "report-keeper",
		Short: "Command-line client of the report-keeper server",
		Long: "report-keeper uploads report files to a report-keeper server\n" +
			"and tracks them through UPLOADED, PROCESSING and COMPLETED.",
		Version:           buildInfo.BuildVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.connect,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		buildInfo.BuildVersion(), buildInfo.BuildDate(), buildInfo.BuildCommit()))

	f := root.PersistentFlags()
	f.StringVar(&c.address, "address", "", "server address (env ADAPTER_ADDRESS)")
	f.DurationVar(&c.timeout, "timeout", 0, "request timeout (env ADAPTER_REQUEST_TIMEOUT)")
	f.StringVar(&c.token, "token", os.Getenv(tokenEnv), "bearer token (env "+tokenEnv+")")
	f.StringVar(&c.logLevel, "log-level", "warn", "client log level")

	root.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.listCmd(),
		c.getCmd(),
		c.uploadCmd(),
		c.statusCmd(),
		c.deleteCmd(),
		c.downloadCmd(),
		c.statsCmd(),
		c.versionCmd(),
	)

	return root
}

// connect resolves the adapter settings and builds the adapter before any
// subcommand runs.
func (c *cli) connect(_ *cobra.Command, _ []string) error {
	if err := logger.SetLevel(c.logLevel); err != nil {
		return err
	}

	cfg, err := config.GetAdapterConfig(config.Adapter{HTTPAddress: c.address, RequestTimeout: c.timeout})
	if err != nil {
		return fmt.Errorf("error getting adapter configs: %w", err)
	}

	c.adapter, err = c.newAdapter(cfg)
	if err != nil {
		return fmt.Errorf("error creating adapter: %w", err)
	}
	if c.token != "" {
		c.adapter.SetToken(c.token)
	}

	c.logger.Debug().
		Str("func", "cli.connect").
		Str("address", cfg.HTTPAddress).
		Bool("authenticated", c.token != "").
		Msg("adapter ready")

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-report-keeper/models"
	"github.com/spf13/cobra"
)

func (c *cli) listCmd() *cobra.Command {
	var flags struct {
		status string
		limit  uint64
		offset uint64
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := models.ReportFilter{Limit: flags.limit, Offset: flags.offset}
			if flags.status != "" {
				status, err := models.ParseReportStatus(flags.status)
				if err != nil {
					return err
				}
				filter.Status = &status
			}

			reports, err := c.adapter.ListReports(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printReportTable(cmd.OutOrStdout(), reports)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.status, "status", "", "only reports in this status")
	f.Uint64Var(&flags.limit, "limit", 0, "page size, 0 for all")
	f.Uint64Var(&flags.offset, "offset", 0, "reports to skip, needs --limit")

	return cmd
}

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseReportID(args[0])
			if err != nil {
				return err
			}

			report, err := c.adapter.GetReport(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
}

func (c *cli) uploadCmd() *cobra.Command {
	var flags struct {
		name       string
		reportType string
		date       string
	}

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a report file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.CreateReportRequest{
				Name:     flags.name,
				Type:     flags.reportType,
				FileName: filepath.Base(args[0]),
			}
			if req.Name == "" {
				req.Name = strings.TrimSuffix(req.FileName, filepath.Ext(req.FileName))
			}
			if flags.date == "" {
				now := time.Now()
				req.ReportDate = models.NewDate(now.Year(), now.Month(), now.Day())
			} else {
				date, err := models.ParseDate(flags.date)
				if err != nil {
					return err
				}
				req.ReportDate = date
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open report file: %w", err)
			}
			defer file.Close()
			req.Content = file

			report, err := c.adapter.UploadReport(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded report #%d (%s)\n", report.ID, report.Status)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.name, "name", "", "report name, defaults to the file name")
	f.StringVar(&flags.reportType, "type", "", "report type (required)")
	f.StringVar(&flags.date, "date", "", "report date as yyyy-mm-dd, defaults to today")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (c *cli) statusCmd() *cobra.Command {
	var summary string

	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a report to the next status",
		Long:  "Move a report along UPLOADED -> PROCESSING -> COMPLETED.\nSteps cannot be skipped or undone.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseReportID(args[0])
			if err != nil {
				return err
			}
			status, err := models.ParseReportStatus(args[1])
			if err != nil {
				return err
			}

			req := models.UpdateStatusRequest{ReportID: id, Status: status}
			if cmd.Flags().Changed("summary") {
				req.Summary = &summary
			}

			report, err := c.adapter.UpdateReportStatus(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report #%d is now %s\n", report.ID, report.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&summary, "summary", "", "processing summary to store with the update")

	return cmd
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a report and its file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseReportID(args[0])
			if err != nil {
				return err
			}

			if err = c.adapter.DeleteReport(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted report #%d\n", id)
			return nil
		},
	}
}

func (c *cli) downloadCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Download a report file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			id, err := parseReportID(args[0])
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = c.adapter.DownloadReport(cmd.Context(), id, cmd.OutOrStdout())
				return err
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer func() {
				if closeErr := file.Close(); err == nil {
					err = closeErr
				}
			}()

			n, err := c.adapter.DownloadReport(cmd.Context(), id, file)
			if err != nil {
				_ = os.Remove(output)
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved %d bytes to %s\n", n, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file, stdout when empty or -")

	return cmd
}

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count your reports per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.adapter.ReportStats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, status := range models.AllReportStatuses() {
				fmt.Fprintf(out, "%-11s %d\n", status, stats[status])
			}
			return nil
		},
	}
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server-version",
		Short: "Show client and server build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := c.adapter.Version(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Client: %s (%s, %s)\n", c.buildInfo.BuildVersion(), c.buildInfo.BuildDate(), c.buildInfo.BuildCommit())
			fmt.Fprintf(out, "Server: %s", info.Version)
			if info.BuildDate != "" || info.BuildCommit != "" {
				fmt.Fprintf(out, " (%s, %s)", info.BuildDate, info.BuildCommit)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}

func parseReportID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid report id %q", raw)
	}
	return id, nil
}

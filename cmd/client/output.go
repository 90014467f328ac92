// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MKhiriev/go-report-keeper/models"
)

func printReportTable(out io.Writer, reports []models.Report) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(out, "No reports.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tDATE\tSTATUS\tCREATED")
	for _, r := range reports {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.Type, r.ReportDate, r.Status, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

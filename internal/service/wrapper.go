// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// ReportServiceWrapper defines middleware composition for ReportService.
// Implementations wrap an existing ReportService to add behavior such as
// validating or metrics.
//
// It lives outside interfaces.go so the generated mocks do not import this
// package.
type ReportServiceWrapper interface {
	Wrap(ReportService) ReportService // returns a decorated ReportService applying additional behavior
}

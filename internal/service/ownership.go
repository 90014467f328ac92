// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-report-keeper/models"

// assertOwnership fails unless callerID owns report. It runs right after a
// report is located and before any of its fields leave the service or get
// changed. The error carries nothing about the report or its owner.
func assertOwnership(report models.Report, callerID int64) error {
	if report.UserID != callerID {
		return ErrUnauthorizedAccessToDifferentUserData
	}

	return nil
}

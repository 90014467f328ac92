// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidReportID    = errors.New("invalid report ID")
	ErrEmptyName          = errors.New("report name is required")
	ErrNameTooLong        = errors.New("report name must not exceed 255 characters")
	ErrEmptyType          = errors.New("report type is required")
	ErrTypeTooLong        = errors.New("report type must not exceed 100 characters")
	ErrEmptyReportDate    = errors.New("report date is required")
	ErrEmptyFileName      = errors.New("file name is required")
	ErrNoContent          = errors.New("file content is required")
	ErrInvalidStatus      = errors.New("invalid report status")
	ErrInvalidLimit       = errors.New("limit must not exceed 1000")
	ErrInvalidEmail       = errors.New("email must be valid")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong    = errors.New("password must not exceed 72 bytes")
	ErrSummaryTooLong     = errors.New("summary must not exceed 10000 characters")
	ErrOffsetWithoutLimit = errors.New("offset requires a limit")
)

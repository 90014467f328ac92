// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-report-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the owner of a report or request.
	FieldUserID = "user_id"

	// FieldReportID targets the id of an existing report.
	FieldReportID = "report_id"

	// FieldName targets the report name.
	FieldName = "name"

	// FieldType targets the caller-defined report type.
	FieldType = "type"

	// FieldReportDate targets the calendar date of a report.
	FieldReportDate = "report_date"

	// FieldFile targets the uploaded file name and content.
	FieldFile = "file"

	// FieldStatus targets a requested or filtered status.
	FieldStatus = "status"

	// FieldSummary targets the summary sent with a status update.
	FieldSummary = "summary"

	// FieldPaging targets limit and offset of a listing.
	FieldPaging = "paging"

	// FieldEmail targets the login email of a user.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password of a user.
	FieldPassword = "password"
)

const (
	maxNameLength    = 255
	maxTypeLength    = 100
	maxSummaryLength = 10000
	maxListLimit     = 1000

	minPasswordLength = 6
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

// ReportValidator validates the inputs of the report and auth services:
// CreateReportRequest, UpdateStatusRequest, ReportFilter and User.
type ReportValidator struct{}

// NewReportValidator constructs a ReportValidator and returns it as a Validator.
func NewReportValidator() Validator {
	return &ReportValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. When fields is empty every field of the type is
// checked.
func (v *ReportValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateReportRequest:
		return v.validateCreateReportRequest(ctx, value, fields...)
	case *models.CreateReportRequest:
		return v.validateCreateReportRequest(ctx, *value, fields...)
	case models.UpdateStatusRequest:
		return v.validateUpdateStatusRequest(ctx, value, fields...)
	case *models.UpdateStatusRequest:
		return v.validateUpdateStatusRequest(ctx, *value, fields...)
	case models.ReportFilter:
		return v.validateReportFilter(ctx, value, fields...)
	case *models.ReportFilter:
		return v.validateReportFilter(ctx, *value, fields...)
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ReportValidator) validateCreateReportRequest(_ context.Context, request models.CreateReportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldType, FieldReportDate, FieldFile}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if strings.TrimSpace(request.Name) == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(request.Name) > maxNameLength {
				return ErrNameTooLong
			}
		case FieldType:
			if strings.TrimSpace(request.Type) == "" {
				return ErrEmptyType
			}
			if utf8.RuneCountInString(request.Type) > maxTypeLength {
				return ErrTypeTooLong
			}
		case FieldReportDate:
			if request.ReportDate.IsZero() {
				return ErrEmptyReportDate
			}
		case FieldFile:
			if strings.TrimSpace(request.FileName) == "" {
				return ErrEmptyFileName
			}
			if request.Content == nil {
				return ErrNoContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdateStatusRequest only checks that the status is a known one.
// Whether the transition is allowed depends on the stored report and is
// decided by the service.
func (v *ReportValidator) validateUpdateStatusRequest(_ context.Context, request models.UpdateStatusRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReportID, FieldUserID, FieldStatus, FieldSummary}
	}

	for _, f := range fields {
		switch f {
		case FieldReportID:
			if request.ReportID <= 0 {
				return ErrInvalidReportID
			}
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldStatus:
			if !request.Status.IsValid() {
				return ErrInvalidStatus
			}
		case FieldSummary:
			if request.Summary != nil && utf8.RuneCountInString(*request.Summary) > maxSummaryLength {
				return ErrSummaryTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ReportValidator) validateReportFilter(_ context.Context, filter models.ReportFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldStatus, FieldPaging}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if filter.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldStatus:
			if filter.Status != nil && !filter.Status.IsValid() {
				return ErrInvalidStatus
			}
		case FieldPaging:
			if filter.Limit > maxListLimit {
				return ErrInvalidLimit
			}
			if filter.Offset > 0 && filter.Limit == 0 {
				return ErrOffsetWithoutLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ReportValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(user.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
			if len(user.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isEmail accepts a bare address only: display names and angle brackets
// are rejected.
func isEmail(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	return addr.Address == s && addr.Name == ""
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-report-keeper/internal/service"
	"github.com/MKhiriev/go-report-keeper/internal/store"
	"github.com/MKhiriev/go-report-keeper/internal/validators"
	"github.com/MKhiriev/go-report-keeper/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatusTable is matched top to bottom, so the most specific errors come
// first: a validation failure wraps both service.ErrInvalidDataProvided and
// the validators sentinel that names the offending field.
var errorStatusTable = []errorStatus{
	{validators.ErrInvalidUserID, http.StatusBadRequest},
	{validators.ErrInvalidReportID, http.StatusBadRequest},
	{validators.ErrEmptyName, http.StatusBadRequest},
	{validators.ErrNameTooLong, http.StatusBadRequest},
	{validators.ErrEmptyType, http.StatusBadRequest},
	{validators.ErrTypeTooLong, http.StatusBadRequest},
	{validators.ErrEmptyReportDate, http.StatusBadRequest},
	{validators.ErrEmptyFileName, http.StatusBadRequest},
	{validators.ErrNoContent, http.StatusBadRequest},
	{validators.ErrInvalidStatus, http.StatusBadRequest},
	{validators.ErrInvalidLimit, http.StatusBadRequest},
	{validators.ErrOffsetWithoutLimit, http.StatusBadRequest},
	{validators.ErrInvalidEmail, http.StatusBadRequest},
	{validators.ErrPasswordTooShort, http.StatusBadRequest},
	{validators.ErrPasswordTooLong, http.StatusBadRequest},
	{validators.ErrSummaryTooLong, http.StatusBadRequest},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidReportID, http.StatusBadRequest},
	{ErrInvalidQueryParam, http.StatusBadRequest},
	{ErrInvalidMultipartForm, http.StatusBadRequest},
	{ErrMissingFile, http.StatusBadRequest},
	{ErrInvalidReportDate, http.StatusBadRequest},
	{models.ErrUnknownReportStatus, http.StatusBadRequest},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},
	{errNoUserInContext, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrUserAlreadyExists, http.StatusConflict},
	{service.ErrReportNotFound, http.StatusNotFound},
	{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusForbidden},
	{service.ErrInvalidStatusTransition, http.StatusBadRequest},
	{service.ErrArtifactStorageFailure, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrReportNotFound, http.StatusNotFound},
}

// statusFromError returns the HTTP status for err together with the table
// entry that matched it. The entry is nil for unknown errors, which map to
// 500 Internal Server Error.
func statusFromError(err error) (int, error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, nil
	}

	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			return entry.status, entry.target
		}
	}
	return http.StatusInternalServerError, nil
}

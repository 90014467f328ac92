package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-report-keeper/internal/service"
	"github.com/MKhiriev/go-report-keeper/internal/store"
	"github.com/MKhiriev/go-report-keeper/internal/validators"
	"github.com/MKhiriev/go-report-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTarget error
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("locate: %w", service.ErrReportNotFound),
			wantStatus: http.StatusNotFound,
			wantTarget: service.ErrReportNotFound,
		},
		{
			name:       "other owner",
			err:        service.ErrUnauthorizedAccessToDifferentUserData,
			wantStatus: http.StatusForbidden,
			wantTarget: service.ErrUnauthorizedAccessToDifferentUserData,
		},
		{
			name:       "invalid transition",
			err:        fmt.Errorf("%w: PROCESSING -> PROCESSING", service.ErrInvalidStatusTransition),
			wantStatus: http.StatusBadRequest,
			wantTarget: service.ErrInvalidStatusTransition,
		},
		{
			name:       "storage failure",
			err:        fmt.Errorf("%w: %w", service.ErrArtifactStorageFailure, store.ErrArtifactNotFound),
			wantStatus: http.StatusInternalServerError,
			wantTarget: service.ErrArtifactStorageFailure,
		},
		{
			name:       "validators sentinel wins over the generic one",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrTypeTooLong),
			wantStatus: http.StatusBadRequest,
			wantTarget: validators.ErrTypeTooLong,
		},
		{
			name:       "bare invalid data",
			err:        service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantTarget: service.ErrInvalidDataProvided,
		},
		{
			name:       "unknown status",
			err:        fmt.Errorf("%w: %q", models.ErrUnknownReportStatus, "ARCHIVED"),
			wantStatus: http.StatusBadRequest,
			wantTarget: models.ErrUnknownReportStatus,
		},
		{
			name:       "duplicate email",
			err:        service.ErrUserAlreadyExists,
			wantStatus: http.StatusConflict,
			wantTarget: service.ErrUserAlreadyExists,
		},
		{
			name:       "invalid token",
			err:        service.ErrTokenIsExpiredOrInvalid,
			wantStatus: http.StatusUnauthorized,
			wantTarget: service.ErrTokenIsExpiredOrInvalid,
		},
		{
			name:       "body too large",
			err:        fmt.Errorf("%w: %w", ErrInvalidMultipartForm, &http.MaxBytesError{Limit: 10}),
			wantStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name:       "unknown error",
			err:        errors.New("something else"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, target := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantTarget, target)
		})
	}
}

func TestErrorStatusTable_ValidatorsBeforeGeneric(t *testing.T) {
	generic := -1
	for i, entry := range errorStatusTable {
		if entry.target == service.ErrInvalidDataProvided {
			generic = i
		}
	}
	assert.Positive(t, generic)

	for i, entry := range errorStatusTable {
		if i > generic {
			for _, name := range []error{validators.ErrEmptyName, validators.ErrInvalidEmail, validators.ErrInvalidLimit} {
				assert.NotEqual(t, name, entry.target)
			}
		}
	}
}

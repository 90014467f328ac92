// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-report-keeper/models"
)

func ptr[T any](v T) *T { return &v }

func validCreateReportRequest() models.CreateReportRequest {
	return models.CreateReportRequest{
		UserID:     1,
		Name:       "Blood test",
		Type:       "LAB",
		ReportDate: models.NewDate(2024, 1, 15),
		FileName:   "scan.pdf",
		Content:    strings.NewReader("%PDF"),
	}
}

func TestNewReportValidator(t *testing.T) {
	require.NotNil(t, NewReportValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewReportValidator()
	ctx := context.Background()

	req := validCreateReportRequest()
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))

	upd := models.UpdateStatusRequest{ReportID: 1, UserID: 1, Status: models.StatusProcessing}
	assert.NoError(t, v.Validate(ctx, upd))
	assert.NoError(t, v.Validate(ctx, &upd))

	filter := models.ReportFilter{UserID: 1}
	assert.NoError(t, v.Validate(ctx, filter))
	assert.NoError(t, v.Validate(ctx, &filter))

	user := models.User{Email: "a@b.io", Password: "secret1"}
	assert.NoError(t, v.Validate(ctx, user))
	assert.NoError(t, v.Validate(ctx, &user))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, req, "nope"), ErrUnknownField)
}

func TestValidate_CreateReportRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.CreateReportRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.CreateReportRequest) {}},
		{name: "no user", mutate: func(r *models.CreateReportRequest) { r.UserID = 0 }, wantErr: ErrInvalidUserID},
		{name: "blank name", mutate: func(r *models.CreateReportRequest) { r.Name = "  " }, wantErr: ErrEmptyName},
		{name: "long name", mutate: func(r *models.CreateReportRequest) { r.Name = strings.Repeat("я", 256) }, wantErr: ErrNameTooLong},
		{name: "name at limit", mutate: func(r *models.CreateReportRequest) { r.Name = strings.Repeat("я", 255) }},
		{name: "blank type", mutate: func(r *models.CreateReportRequest) { r.Type = "" }, wantErr: ErrEmptyType},
		{name: "long type", mutate: func(r *models.CreateReportRequest) { r.Type = strings.Repeat("x", 101) }, wantErr: ErrTypeTooLong},
		{name: "no date", mutate: func(r *models.CreateReportRequest) { r.ReportDate = models.Date{} }, wantErr: ErrEmptyReportDate},
		{name: "no file name", mutate: func(r *models.CreateReportRequest) { r.FileName = "" }, wantErr: ErrEmptyFileName},
		{name: "no content", mutate: func(r *models.CreateReportRequest) { r.Content = nil }, wantErr: ErrNoContent},
	}

	v := NewReportValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateReportRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_CreateReportRequest_FieldScoping(t *testing.T) {
	v := NewReportValidator()
	req := validCreateReportRequest()
	req.Name = ""

	assert.NoError(t, v.Validate(context.Background(), req, FieldUserID, FieldType))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldName), ErrEmptyName)
}

func TestValidate_UpdateStatusRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UpdateStatusRequest
		wantErr error
	}{
		{
			name: "valid without summary",
			req:  models.UpdateStatusRequest{ReportID: 1, UserID: 2, Status: models.StatusCompleted},
		},
		{
			name: "valid with summary",
			req:  models.UpdateStatusRequest{ReportID: 1, UserID: 2, Status: models.StatusCompleted, Summary: ptr("Normal")},
		},
		{
			name:    "no report id",
			req:     models.UpdateStatusRequest{UserID: 2, Status: models.StatusCompleted},
			wantErr: ErrInvalidReportID,
		},
		{
			name:    "no user id",
			req:     models.UpdateStatusRequest{ReportID: 1, Status: models.StatusCompleted},
			wantErr: ErrInvalidUserID,
		},
		{
			name:    "empty status",
			req:     models.UpdateStatusRequest{ReportID: 1, UserID: 2},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "unknown status",
			req:     models.UpdateStatusRequest{ReportID: 1, UserID: 2, Status: "ARCHIVED"},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "huge summary",
			req:     models.UpdateStatusRequest{ReportID: 1, UserID: 2, Status: models.StatusCompleted, Summary: ptr(strings.Repeat("s", 10001))},
			wantErr: ErrSummaryTooLong,
		},
	}

	v := NewReportValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ReportFilter(t *testing.T) {
	unknown := models.ReportStatus("DONE")

	tests := []struct {
		name    string
		filter  models.ReportFilter
		wantErr error
	}{
		{name: "owner only", filter: models.ReportFilter{UserID: 1}},
		{name: "with status and paging", filter: models.ReportFilter{UserID: 1, Status: ptr(models.StatusUploaded), Limit: 10, Offset: 20}},
		{name: "no owner", filter: models.ReportFilter{}, wantErr: ErrInvalidUserID},
		{name: "unknown status", filter: models.ReportFilter{UserID: 1, Status: &unknown}, wantErr: ErrInvalidStatus},
		{name: "limit too big", filter: models.ReportFilter{UserID: 1, Limit: 1001}, wantErr: ErrInvalidLimit},
		{name: "offset without limit", filter: models.ReportFilter{UserID: 1, Offset: 5}, wantErr: ErrOffsetWithoutLimit},
	}

	v := NewReportValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.filter)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_User(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		wantErr error
	}{
		{name: "valid", user: models.User{Email: "jane@example.com", Password: "123456"}},
		{name: "empty email", user: models.User{Password: "123456"}, wantErr: ErrInvalidEmail},
		{name: "no at sign", user: models.User{Email: "jane.example.com", Password: "123456"}, wantErr: ErrInvalidEmail},
		{name: "display name", user: models.User{Email: "Jane <jane@example.com>", Password: "123456"}, wantErr: ErrInvalidEmail},
		{name: "padded", user: models.User{Email: " jane@example.com", Password: "123456"}, wantErr: ErrInvalidEmail},
		{name: "short password", user: models.User{Email: "jane@example.com", Password: "12345"}, wantErr: ErrPasswordTooShort},
		{name: "long password", user: models.User{Email: "jane@example.com", Password: strings.Repeat("p", 73)}, wantErr: ErrPasswordTooLong},
	}

	v := NewReportValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.user)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_User_EmailOnly(t *testing.T) {
	v := NewReportValidator()
	assert.NoError(t, v.Validate(context.Background(), models.User{Email: "x@y.z"}, FieldEmail))
}

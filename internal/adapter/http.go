// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/utils"
	"github.com/MKhiriev/go-report-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	registerPath     = "/api/auth/register"
	loginPath        = "/api/auth/login"
	reportsPath      = "/api/reports"
	reportStatsPath  = "/api/reports/stats"
	reportPath       = "/api/reports/{id}"
	reportFilePath   = "/api/reports/{id}/file"
	reportStatusPath = "/api/reports/{id}/status"
	versionPath      = "/api/version/"

	// maxErrorBody caps how much of a failed download is read for the message.
	maxErrorBody = 64 << 10
)

type httpReportAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// envelope mirrors [models.APIResponse] with a typed payload.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// NewHTTPReportAdapter constructs the HTTP implementation of [ReportAdapter].
// cfg.HTTPAddress may omit the scheme, in which case http is assumed.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPReportAdapter(cfg config.Adapter, logger *logger.Logger) (ReportAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpReportAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ReportAdapter]. The token is whitespace-trimmed.
func (h *httpReportAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
	h.client.SetToken(h.token)
}

// Token implements [ReportAdapter].
func (h *httpReportAdapter) Token() string {
	return h.token
}

// Register implements [ReportAdapter]. It POSTs the credentials to
// /api/auth/register and keeps the issued token.
func (h *httpReportAdapter) Register(ctx context.Context, user models.User) (models.AuthResponse, error) {
	auth, err := h.authenticate(ctx, registerPath, user)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register: %w", err)
	}
	return auth, nil
}

// Login implements [ReportAdapter]. It POSTs the credentials to
// /api/auth/login and keeps the issued token.
func (h *httpReportAdapter) Login(ctx context.Context, user models.User) (models.AuthResponse, error) {
	auth, err := h.authenticate(ctx, loginPath, user)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login: %w", err)
	}
	return auth, nil
}

// authenticate reads the token from the response body and falls back to the
// Authorization header when the body carries none.
func (h *httpReportAdapter) authenticate(ctx context.Context, path string, user models.User) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Email: user.Email, Password: user.Password}).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("request: %w", err)
	}

	auth, err := decodeData[models.AuthResponse](resp)
	if err != nil {
		return models.AuthResponse{}, err
	}

	if auth.Token == "" {
		if auth.Token, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return models.AuthResponse{}, fmt.Errorf("parse bearer token: %w", err)
		}
	}
	if auth.UserID == 0 {
		if auth.UserID, err = utils.ParseUserIDFromJWT(auth.Token); err != nil {
			return models.AuthResponse{}, fmt.Errorf("parse user id: %w", err)
		}
	}
	if auth.Type == "" {
		auth.Type = models.TokenType
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// ListReports implements [ReportAdapter].
func (h *httpReportAdapter) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	query := map[string]string{}
	if filter.Status != nil {
		query["status"] = filter.Status.String()
	}
	if filter.Limit > 0 {
		query["limit"] = strconv.FormatUint(filter.Limit, 10)
	}
	if filter.Offset > 0 {
		query["offset"] = strconv.FormatUint(filter.Offset, 10)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(reportsPath)
	if err != nil {
		return nil, fmt.Errorf("list reports request: %w", err)
	}

	reports, err := decodeData[[]models.Report](resp)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	if reports == nil {
		reports = []models.Report{}
	}
	return reports, nil
}

// GetReport implements [ReportAdapter].
func (h *httpReportAdapter) GetReport(ctx context.Context, reportID int64) (models.Report, error) {
	resp, err := h.reportRequest(ctx, reportID).Get(reportPath)
	if err != nil {
		return models.Report{}, fmt.Errorf("get report request: %w", err)
	}

	report, err := decodeData[models.Report](resp)
	if err != nil {
		return models.Report{}, fmt.Errorf("get report: %w", err)
	}
	return report, nil
}

// UploadReport implements [ReportAdapter]. req.UserID is ignored.
func (h *httpReportAdapter) UploadReport(ctx context.Context, req models.CreateReportRequest) (models.Report, error) {
	form := map[string]string{
		"name": req.Name,
		"type": req.Type,
	}
	if !req.ReportDate.IsZero() {
		form["report_date"] = req.ReportDate.String()
	}

	h.logger.Debug().
		Str("func", "httpReportAdapter.UploadReport").
		Str("file_name", req.FileName).
		Msg("uploading report")

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetFileReader("file", req.FileName, req.Content).
		Post(reportsPath)
	if err != nil {
		return models.Report{}, fmt.Errorf("upload report request: %w", err)
	}

	report, err := decodeData[models.Report](resp)
	if err != nil {
		return models.Report{}, fmt.Errorf("upload report: %w", err)
	}
	return report, nil
}

// UpdateReportStatus implements [ReportAdapter]. req.UserID is ignored.
func (h *httpReportAdapter) UpdateReportStatus(ctx context.Context, req models.UpdateStatusRequest) (models.Report, error) {
	resp, err := h.reportRequest(ctx, req.ReportID).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Patch(reportStatusPath)
	if err != nil {
		return models.Report{}, fmt.Errorf("update report status request: %w", err)
	}

	report, err := decodeData[models.Report](resp)
	if err != nil {
		return models.Report{}, fmt.Errorf("update report status: %w", err)
	}
	return report, nil
}

// DeleteReport implements [ReportAdapter].
func (h *httpReportAdapter) DeleteReport(ctx context.Context, reportID int64) error {
	resp, err := h.reportRequest(ctx, reportID).Delete(reportPath)
	if err != nil {
		return fmt.Errorf("delete report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}

// DownloadReport implements [ReportAdapter]. The body is streamed, never
// buffered whole.
func (h *httpReportAdapter) DownloadReport(ctx context.Context, reportID int64, dst io.Writer) (int64, error) {
	resp, err := h.reportRequest(ctx, reportID).
		SetHeader("Accept", "*/*").
		SetDoNotParseResponse(true).
		Get(reportFilePath)
	if err != nil {
		return 0, fmt.Errorf("download report request: %w", err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		return 0, fmt.Errorf("download report: %w", mapStatusError(resp.StatusCode(), raw))
	}

	n, err := io.Copy(dst, body)
	if err != nil {
		return n, fmt.Errorf("download report: copy body: %w", err)
	}

	h.logger.Debug().
		Str("func", "httpReportAdapter.DownloadReport").
		Int64("report_id", reportID).
		Int64("bytes", n).
		Msg("report downloaded")

	return n, nil
}

// ReportStats implements [ReportAdapter].
func (h *httpReportAdapter) ReportStats(ctx context.Context) (models.ReportStats, error) {
	resp, err := h.client.R().SetContext(ctx).Get(reportStatsPath)
	if err != nil {
		return nil, fmt.Errorf("report stats request: %w", err)
	}

	stats, err := decodeData[models.ReportStats](resp)
	if err != nil {
		return nil, fmt.Errorf("report stats: %w", err)
	}
	return stats, nil
}

// Version implements [ReportAdapter]. It needs no token.
func (h *httpReportAdapter) Version(ctx context.Context) (models.AppInfo, error) {
	resp, err := h.client.R().SetContext(ctx).Get(versionPath)
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("version request: %w", err)
	}

	info, err := decodeData[models.AppInfo](resp)
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("version: %w", err)
	}
	return info, nil
}

func (h *httpReportAdapter) reportRequest(ctx context.Context, reportID int64) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(reportID, 10))
}

// decodeData maps error statuses and unwraps the payload of a 2xx envelope.
func decodeData[T any](resp *resty.Response) (T, error) {
	var env envelope[T]
	if err := mapHTTPError(resp); err != nil {
		return env.Data, err
	}

	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return env.Data, fmt.Errorf("%w: decode envelope: %w", ErrUnexpectedResponse, err)
	}
	if !env.Success {
		return env.Data, fmt.Errorf("%w: %s", ErrUnexpectedResponse, env.Message)
	}
	return env.Data, nil
}

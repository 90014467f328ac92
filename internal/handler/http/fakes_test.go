package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/service"
	"github.com/MKhiriev/go-report-keeper/internal/utils"
	"github.com/MKhiriev/go-report-keeper/models"
	"github.com/stretchr/testify/require"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockReportService implements service.ReportService. Unset functions
// panic, which chi's Recoverer turns into 500.
type mockReportService struct {
	createFn       func(ctx context.Context, req models.CreateReportRequest) (models.Report, error)
	listFn         func(ctx context.Context, filter models.ReportFilter) ([]models.Report, error)
	statsFn        func(ctx context.Context, userID int64) (models.ReportStats, error)
	getFn          func(ctx context.Context, reportID, userID int64) (models.Report, error)
	openFn         func(ctx context.Context, reportID, userID int64) (models.Artifact, error)
	updateStatusFn func(ctx context.Context, req models.UpdateStatusRequest) (models.Report, error)
	deleteFn       func(ctx context.Context, reportID, userID int64) error
}

func (m *mockReportService) CreateReport(ctx context.Context, req models.CreateReportRequest) (models.Report, error) {
	return m.createFn(ctx, req)
}

func (m *mockReportService) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	return m.listFn(ctx, filter)
}

func (m *mockReportService) ReportStats(ctx context.Context, userID int64) (models.ReportStats, error) {
	return m.statsFn(ctx, userID)
}

func (m *mockReportService) GetReport(ctx context.Context, reportID, userID int64) (models.Report, error) {
	return m.getFn(ctx, reportID, userID)
}

func (m *mockReportService) OpenReportArtifact(ctx context.Context, reportID, userID int64) (models.Artifact, error) {
	return m.openFn(ctx, reportID, userID)
}

func (m *mockReportService) UpdateReportStatus(ctx context.Context, req models.UpdateStatusRequest) (models.Report, error) {
	return m.updateStatusFn(ctx, req)
}

func (m *mockReportService) DeleteReport(ctx context.Context, reportID, userID int64) error {
	return m.deleteFn(ctx, reportID, userID)
}

// mockAppInfoService implements service.AppInfoService.
type mockAppInfoService struct {
	info models.AppInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.info.Version
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	return m.info
}

// tokenFor is a ParseToken stub that only accepts the tokens in the map.
func tokenFor(tokens map[string]int64) func(context.Context, string) (models.Token, error) {
	return func(_ context.Context, tokenString string) (models.Token, error) {
		userID, ok := tokens[tokenString]
		if !ok {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{UserID: userID, SignedString: tokenString}, nil
	}
}

// newTestHandler builds a Handler over the given services with a nop logger
// and no metrics.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{info: models.AppInfo{Version: "test-version"}}
	}
	return NewHandler(svcs, config.Server{}, nil, logger.Nop())
}

// decodeEnvelope decodes the JSON envelope and, when data is non-nil,
// its data field into data.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) models.APIResponse {
	t.Helper()

	var raw struct {
		models.APIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw), "body: %s", rec.Body.String())

	if data != nil {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return raw.APIResponse
}

// withUser returns ctx carrying userID as the authenticated caller.
func withUser(ctx context.Context, userID int64) context.Context {
	return utils.WithUserID(ctx, userID)
}

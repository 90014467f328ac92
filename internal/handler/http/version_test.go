package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-report-keeper/internal/service"
	"github.com/MKhiriev/go-report-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name string
		info models.AppInfo
	}{
		{
			name: "full build info",
			info: models.AppInfo{Version: "1.2.3", BuildDate: "2026-01-02", BuildCommit: "abc123"},
		},
		{
			name: "version only",
			info: models.AppInfo{Version: "v2.0.0-beta+build.42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{AppInfoService: &mockAppInfoService{info: tt.info}})

			rec := httptest.NewRecorder()
			h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var got models.AppInfo
			resp := decodeEnvelope(t, rec, &got)
			assert.True(t, resp.Success)
			assert.Equal(t, tt.info, got)
		})
	}
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	h := newTestHandler(&service.Services{
		AppInfoService: &mockAppInfoService{info: models.AppInfo{Version: "3.0.0"}},
	})

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.AppInfo
	decodeEnvelope(t, rec, &got)
	assert.Equal(t, "3.0.0", got.Version)
}

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRequest creates a test request whose context carries a logger writing
// to buf, the same way withTraceID does.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func decodeLogEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output: %s", buf.String())
	return entry
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		handlerStatus int
		body          string
		wantLevel     string
		wantStatus    float64
		wantSize      float64
	}{
		{
			name:          "GET 200",
			method:        http.MethodGet,
			path:          "/api/reports",
			handlerStatus: http.StatusOK,
			body:          "OK",
			wantLevel:     "info",
			wantStatus:    200,
			wantSize:      2,
		},
		{
			name:          "POST 201",
			method:        http.MethodPost,
			path:          "/api/reports",
			handlerStatus: http.StatusCreated,
			body:          "Created",
			wantLevel:     "info",
			wantStatus:    201,
			wantSize:      7,
		},
		{
			name:          "client error stays at info",
			method:        http.MethodGet,
			path:          "/api/reports/7",
			handlerStatus: http.StatusNotFound,
			wantLevel:     "info",
			wantStatus:    404,
		},
		{
			name:          "server error is logged as error",
			method:        http.MethodDelete,
			path:          "/api/reports/7",
			handlerStatus: http.StatusInternalServerError,
			body:          "boom",
			wantLevel:     "error",
			wantStatus:    500,
			wantSize:      4,
		},
		{
			name:          "query string kept in uri",
			method:        http.MethodGet,
			path:          "/api/reports?status=UPLOADED&limit=10",
			handlerStatus: http.StatusOK,
			wantLevel:     "info",
			wantStatus:    200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)

			entry := decodeLogEntry(t, &logBuf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["uri"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var logBuf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/test", &logBuf))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(http.StatusOK), decodeLogEntry(t, &logBuf)["status"])
}

func TestWithLogging_RoutePattern(t *testing.T) {
	var logBuf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := zerolog.New(&logBuf)
			next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
		})
	})
	router.Use(h.withLogging)
	router.Get("/api/reports/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/reports/42", nil))

	entry := decodeLogEntry(t, &logBuf)
	assert.Equal(t, "/api/reports/{id}", entry["route"])
	assert.Equal(t, float64(1024), entry["size"])
}

func TestWithLogging_DurationAccuracy(t *testing.T) {
	delay := 50 * time.Millisecond
	var logBuf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		w.WriteHeader(http.StatusOK)
	})

	start := time.Now()
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/slow", &logBuf))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, delay)
	duration, ok := decodeLogEntry(t, &logBuf)["duration"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, duration, float64(delay.Milliseconds()))
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler exploded")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &logBuf))
	})
}

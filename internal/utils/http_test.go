package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "object", data: map[string]string{"status": "UPLOADED"}, status: http.StatusOK, wantBody: `{"status":"UPLOADED"}`},
		{name: "created", data: struct {
			ID int64 `json:"id"`
		}{ID: 7}, status: http.StatusCreated, wantBody: `{"id":7}`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: `null`},
		{name: "empty slice", data: []int{}, status: http.StatusOK, wantBody: `[]`},
		{name: "html is not escaped", data: map[string]string{"name": "R&D <q3>"}, status: http.StatusOK, wantBody: `{"name":"R&D <q3>"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, rec.Body.Len(), n)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWriteJSON_EncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	type payload struct {
		Name    string  `json:"name"`
		Summary *string `json:"summary"`
	}
	summary := "checked"
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, payload{Name: "q3", Summary: &summary}, http.StatusOK)
	require.NoError(t, err)

	var got payload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Summary)
	assert.Equal(t, "checked", *got.Summary)
}

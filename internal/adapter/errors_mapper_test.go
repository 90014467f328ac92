package adapter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStatusError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"success":false,"message":"name is empty"}`, wantErr: ErrBadRequest, wantMsg: "name is empty"},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized, wantMsg: "Unauthorized"},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, body: "404 page not found\n", wantErr: ErrNotFound, wantMsg: "404 page not found"},
		{name: "conflict", status: http.StatusConflict, wantErr: ErrConflict},
		{name: "too large", status: http.StatusRequestEntityTooLarge, wantErr: ErrPayloadTooLarge},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "unmapped", status: http.StatusBadGateway, body: "upstream down", wantErr: ErrUnexpectedResponse, wantMsg: "http 502: upstream down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapStatusError(tt.status, []byte(tt.body))
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestMapStatusError_Success(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNoContent} {
		assert.NoError(t, mapStatusError(status, nil))
	}
}

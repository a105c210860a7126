package dto

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSuccess(t *testing.T) {
	resp := NewSuccess(map[string]int{"total": 3}).WithRequestID("req-1")

	assert.Equal(t, "req-1", resp.RequestID)
	assert.WithinDuration(t, time.Now(), resp.Timestamp, time.Second)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":{"total":3}`)
}

func TestErrorResponse_Builders(t *testing.T) {
	tests := []struct {
		name        string
		details     map[string]string
		wantDetails map[string]string
	}{
		{
			name:        "upstream error name",
			details:     map[string]string{"name": "HTTPError"},
			wantDetails: map[string]string{"name": "HTTPError"},
		},
		{name: "empty details dropped", details: map[string]string{}},
		{name: "nil details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewError(ErrCodeUpstream, "upstream failed").
				WithDetails(tt.details).
				WithRequestID("req-2")

			assert.Equal(t, ErrCodeUpstream, resp.Error)
			assert.Equal(t, "upstream failed", resp.Message)
			assert.Equal(t, "req-2", resp.RequestID)
			assert.Equal(t, tt.wantDetails, resp.Details)
			assert.WithinDuration(t, time.Now(), resp.Timestamp, time.Second)
		})
	}
}

func TestErrorResponse_OmitsEmptyFields(t *testing.T) {
	raw, err := json.Marshal(NewError(ErrCodeNotFound, ""))
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, `"error":"not_found"`)
	assert.NotContains(t, body, "details")
	assert.NotContains(t, body, "request_id")
	assert.NotContains(t, body, "message")
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusForbidden, ErrCodeForbidden},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusBadGateway, ErrCodeUpstream},
		{http.StatusServiceUnavailable, ErrCodeUpstream},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusTeapot, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, ErrCodeFromStatus(tt.status))
		})
	}
}

package riskapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		body     []byte
		expected string
	}{
		{
			name:     "body becomes message",
			code:     http.StatusUnprocessableEntity,
			body:     []byte("unknown risk function: exposure\n"),
			expected: "unknown risk function: exposure (status 422)",
		},
		{
			name:     "empty body falls back to status text",
			code:     http.StatusForbidden,
			body:     nil,
			expected: "Forbidden (status 403)",
		},
		{
			name:     "whitespace body falls back to status text",
			code:     http.StatusBadGateway,
			body:     []byte("  \n"),
			expected: "Bad Gateway (status 502)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewHTTPError(tt.code, tt.body)
			assert.Equal(t, tt.expected, err.Error())
			assert.Equal(t, tt.code, err.Code)
		})
	}
}

func TestIsHTTPStatus(t *testing.T) {
	err := fmt.Errorf("running analysis: %w", NewHTTPError(http.StatusNotFound, []byte("no such resource")))

	assert.True(t, IsHTTPStatus(err, http.StatusNotFound))
	assert.False(t, IsHTTPStatus(err, http.StatusForbidden))
	assert.False(t, IsHTTPStatus(errors.New("plain"), http.StatusNotFound))

	code, ok := StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, code)

	_, ok = StatusCode(errors.New("plain"))
	assert.False(t, ok)
}

func TestRetryError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &RetryError{Method: http.MethodPost, Path: "/api/v1/risk", Attempts: 6, Err: cause}

	assert.True(t, IsRetryExhausted(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsRetryExhausted(cause))
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/api/v1/risk")
	assert.Contains(t, err.Error(), "6")
}

package riskapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrInvalidScheme         = errors.New("invalid scheme (http or https expected)")
	ErrUnknownFormat         = errors.New("unknown format")
	ErrInvalidRequestFormat  = errors.New("invalid request format")
	ErrInvalidResponseFormat = errors.New("invalid response format")
	ErrHostRequired          = errors.New("host is required")
	ErrConfigRequired        = errors.New("config is required")
	ErrNoDecoder             = errors.New("no decoder registered for response content type")
)

// HTTPError represents a non-success status answered by the RiskAPI server.
// It is never retried: the server spoke, the exchange is final.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError builds an HTTPError from a status code and the response body.
// An empty body falls back to the standard reason phrase for the status.
func NewHTTPError(code int, body []byte) *HTTPError {
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(code)
	}

	return &HTTPError{Code: code, Message: msg}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Code)
}

// RetryError is the terminal failure raised when every attempt of the retry
// budget ended in a transient network fault.
type RetryError struct {
	Method   string
	Path     string
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *RetryError) Error() string {
	return fmt.Sprintf("%s %s failed after %d attempts: %v", e.Method, e.Path, e.Attempts, e.Err)
}

// Unwrap returns the last transient fault observed.
func (e *RetryError) Unwrap() error {
	return e.Err
}

// IsHTTPStatus checks whether err is an HTTPError with the given status code.
func IsHTTPStatus(err error, code int) bool {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.Code == code
	}

	return false
}

// StatusCode extracts the HTTP status from err, if it carries one.
func StatusCode(err error) (int, bool) {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.Code, true
	}

	return 0, false
}

// IsRetryExhausted checks whether err is a RetryError.
func IsRetryExhausted(err error) bool {
	retryErr := &RetryError{}

	return errors.As(err, &retryErr)
}

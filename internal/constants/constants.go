package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for a single HTTP exchange.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry behavior.
const (
	// DefaultRetryAttempts is the default transient-fault attempt budget.
	DefaultRetryAttempts = 6

	// BackoffBaseDelay is the backoff unit: the wait before retry attempt k
	// is BackoffBaseDelay << k.
	BackoffBaseDelay = 100 * time.Millisecond

	// MaxBackoffDelay caps a single backoff sleep.
	MaxBackoffDelay = 30 * time.Second
)

// Pagination.
const (
	// ProductsPageSize is the page size used when listing the full product
	// catalog.
	ProductsPageSize = 20000
)

// API path layout.
const (
	// APIBase is the leading path segment of every endpoint.
	APIBase = "api"

	// APIVersion is the API version path segment.
	APIVersion = "v1"
)

// File permissions.
const (
	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

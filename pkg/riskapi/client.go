package riskapi

import (
	"context"
	"time"
)

// StaticsClient provides access to the dataset lookup endpoints.
type StaticsClient interface {
	// Products returns the available products, optionally narrowed to those
	// whose code or description starts with search. A limit of 0 fetches the
	// whole listing page by page.
	Products(ctx context.Context, search string, limit int) ([]interface{}, error)
	// Product returns one product's statics and historical scenarios.
	Product(ctx context.Context, code string) (interface{}, error)
	// StressTestScenarios returns the available stress test scenarios.
	StressTestScenarios(ctx context.Context) (interface{}, error)
	// LiquidityRiskScenarios returns the available liquidity risk scenarios.
	LiquidityRiskScenarios(ctx context.Context) (interface{}, error)
	// PortfolioInfo returns static information about the given portfolio.
	PortfolioInfo(ctx context.Context, portfolio *Portfolio, fields []string) (*AnalysisResult, error)
	// DataInfo returns static information about the latest loaded dataset.
	DataInfo(ctx context.Context) (interface{}, error)
}

// RiskAnalysisClient provides the risk measure and decomposition endpoints.
type RiskAnalysisClient interface {
	Risk(ctx context.Context, portfolio *Portfolio, opts *RiskOptions) (*AnalysisResult, error)
	RiskDecomposition(ctx context.Context, portfolio *Portfolio, percentile float64, opts *DecompositionOptions) (*AnalysisResult, error)
	RelativeRiskDecomposition(ctx context.Context, portfolio, benchmark *Portfolio, percentile float64, opts *DecompositionOptions) (*AnalysisResult, error)
	MultiLevelRiskDecomposition(ctx context.Context, portfolio *Portfolio, percentile float64, opts *DecompositionOptions) (*AnalysisResult, error)
	RelativeMultiLevelRiskDecomposition(ctx context.Context, portfolio, benchmark *Portfolio, percentile float64, opts *DecompositionOptions) (*AnalysisResult, error)
}

// StressTestClient provides the stress test scenario endpoints.
type StressTestClient interface {
	StressTest(ctx context.Context, portfolio *Portfolio, codes []string) (*AnalysisResult, error)
	StressTestDecomposition(ctx context.Context, portfolio *Portfolio, codes []string) (*AnalysisResult, error)
	RelativeStressTestDecomposition(ctx context.Context, portfolio, benchmark *Portfolio, codes []string) (*AnalysisResult, error)
	MultiLevelStressTestDecomposition(ctx context.Context, portfolio *Portfolio, codes []string) (*AnalysisResult, error)
	RelativeMultiLevelStressTestDecomposition(ctx context.Context, portfolio, benchmark *Portfolio, codes []string) (*AnalysisResult, error)
}

// LiquidityRiskClient provides the liquidity risk scenario endpoints.
type LiquidityRiskClient interface {
	LiquidityRisk(ctx context.Context, portfolio *Portfolio) (*AnalysisResult, error)
	LiquidityRiskDecomposition(ctx context.Context, portfolio *Portfolio) (*AnalysisResult, error)
	MultiLevelLiquidityRiskDecomposition(ctx context.Context, portfolio *Portfolio) (*AnalysisResult, error)
}

// PricingClient provides the standalone pricing endpoints.
type PricingClient interface {
	// AussieBondFuturesNPV computes the NPV for an Aussie bond futures.
	AussieBondFuturesNPV(ctx context.Context, code string, price float64) (interface{}, error)
}

// SystemClient provides service metadata endpoints.
type SystemClient interface {
	// SystemInfo returns the server dashboard payload.
	SystemInfo(ctx context.Context) (interface{}, error)
	// Resources returns the resource catalog advertised by the server.
	Resources(ctx context.Context) (interface{}, error)
}

// Client groups every remote RiskAPI operation. All methods are thin
// marshaling wrappers over the shared transport: parameters in, decoded
// server payload out, classified errors on failure.
type Client interface {
	StaticsClient
	RiskAnalysisClient
	StressTestClient
	LiquidityRiskClient
	PricingClient
	SystemClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a riskapi.Client.
//
// # Credentials
//
// Username/Password are attached to every request as a static basic-auth
// header. There is no token exchange or refresh: authentication beyond
// attaching credentials is out of scope for this library.
//
// # Wire formats
//
// RequestFormat selects how outgoing parameter structures are serialized
// (and advertised via Content-Type); ResponseFormat is advertised via the
// Accept header, with */* appended so the server may still answer with
// whatever it prefers. The transport self-detects the response codec from
// the Content-Type header regardless of what was requested.
//
// # Retries
//
// RetryMax is the total attempt budget for transient network faults
// (default 6). HTTP status errors are never retried.
type Config struct {
	// Host is the server address, optionally with a ":port" suffix.
	Host string
	// Customer is the optional tenant path segment prefixed to API paths.
	Customer string
	// Username and Password are static basic-auth credentials. Empty
	// username sends unauthenticated requests.
	Username string
	Password string
	// Scheme is "https" (default) or "http".
	Scheme string

	// DisableKeepAlive requests a fresh connection per exchange.
	DisableKeepAlive bool
	// RequestFormat and ResponseFormat name wire formats from
	// FormatNames(); both default to "json".
	RequestFormat  string
	ResponseFormat string
	// RequestGzip compresses outgoing bodies; ResponseGzip advertises
	// Accept-Encoding gzip.
	RequestGzip  bool
	ResponseGzip bool

	// RetryMax is the transient-fault attempt budget. 0 means the default.
	RetryMax int
	// HTTPTimeout bounds each individual exchange. 0 means the default.
	HTTPTimeout time.Duration
	// Debug enables request/response logging when a Logger is set.
	Debug bool
	// Logger is an optional structured logger used by the transport.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// SkipResourceDiscovery skips the eager system/resources fetch at
	// construction.
	SkipResourceDiscovery bool
}

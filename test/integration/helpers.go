//go:build integration
// +build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/statpro-io/riskapi-client/pkg/riskapi"
	"github.com/statpro-io/riskapi-client/pkg/riskclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Host     string
	Customer string
	Username string
	Password string
	Insecure bool
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Host:     os.Getenv("RISKAPI_HOST"),
		Customer: os.Getenv("RISKAPI_CUSTOMER"),
		Username: os.Getenv("RISKAPI_USER"),
		Password: os.Getenv("RISKAPI_PASSWORD"),
		Insecure: os.Getenv("RISKAPI_INSECURE") == "true",
		Verbose:  os.Getenv("RISKAPI_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when no server is configured
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.Host == "" {
		t.Skip("Skipping integration test: RISKAPI_HOST not set")
	}
}

// NewTestClient builds a client against the configured server
func (c *TestConfig) NewTestClient(ctx context.Context, t *testing.T) riskapi.Client {
	t.Helper()

	scheme := "https"
	if c.Insecure {
		scheme = "http"
	}

	client, err := riskclient.New(ctx, &riskapi.Config{
		Host:     c.Host,
		Customer: c.Customer,
		Username: c.Username,
		Password: c.Password,
		Scheme:   scheme,
		Debug:    c.Verbose,
	})
	if err != nil {
		t.Fatalf("Failed to create RiskAPI client: %v", err)
	}

	return client
}

// NewTestPortfolio builds the small portfolio shared by the workflow tests
func NewTestPortfolio() *riskapi.Portfolio {
	portfolio := riskapi.NewPortfolio("EUR")
	portfolio.Add("US0003041052",
		riskapi.WithQuantity(13000),
		riskapi.WithAttributes("America", "Financial"),
	)
	portfolio.Add("US000324AA15",
		riskapi.WithQuantity(10000),
		riskapi.WithAttributes("America", "Financial"),
		riskapi.WithPriceFactor(0.01),
	)

	return portfolio
}

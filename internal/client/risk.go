package client

import (
	"context"
	"fmt"

	"github.com/statpro-io/riskapi-client/pkg/riskapi"
)

// Risk implements riskapi.RiskAnalysisClient.Risk: compute the requested
// risk functions on the portfolio for each combination of frequencies,
// horizons, percentiles, and lookback days.
func (c *Client) Risk(ctx context.Context, portfolio *riskapi.Portfolio, opts *riskapi.RiskOptions) (*riskapi.AnalysisResult, error) {
	if opts == nil {
		opts = &riskapi.RiskOptions{}
	}

	functions := opts.Functions
	if functions == nil {
		functions = riskapi.RiskFunctions
	}

	lookbackDays := opts.LookbackDays
	if lookbackDays == nil {
		lookbackDays = []int{riskapi.DefaultLookbackDays}
	}

	horizons := opts.Horizons
	if horizons == nil {
		horizons = []int{riskapi.DefaultHorizon}
	}

	frequencies := opts.Frequencies
	if frequencies == nil {
		frequencies = []int{riskapi.DefaultFrequency}
	}

	result, err := c.postAnalysis(ctx, "risk", map[string]interface{}{
		"portfolio":         portfolio.Encode(),
		"functions":         functions,
		"percentiles":       opts.Percentiles,
		"lookback_days":     lookbackDays,
		"horizons":          horizons,
		"frequencies":       frequencies,
		"exponential_decay": opts.ExponentialDecay,
	})
	if err != nil {
		return nil, fmt.Errorf("computing risk: %w", err)
	}

	return result, nil
}

// decompositionParams builds the shared parameter structure of the
// decomposition endpoints, applying the documented defaults.
func decompositionParams(portfolio *riskapi.Portfolio, percentile float64, opts *riskapi.DecompositionOptions) map[string]interface{} {
	if opts == nil {
		opts = &riskapi.DecompositionOptions{}
	}

	functions := opts.Functions
	if functions == nil {
		functions = riskapi.DecomposableRiskFunctions
	}

	lookbackDays := opts.LookbackDays
	if lookbackDays == 0 {
		lookbackDays = riskapi.DefaultLookbackDays
	}

	horizon := opts.Horizon
	if horizon == 0 {
		horizon = riskapi.DefaultHorizon
	}

	frequency := opts.Frequency
	if frequency == 0 {
		frequency = riskapi.DefaultFrequency
	}

	return map[string]interface{}{
		"portfolio":     portfolio.Encode(),
		"functions":     functions,
		"percentile":    percentile,
		"lookback_days": lookbackDays,
		"horizon":       horizon,
		"frequency":     frequency,
		"fields":        opts.Fields,
	}
}

// RiskDecomposition implements riskapi.RiskAnalysisClient.RiskDecomposition,
// using the attribute lists from the portfolio holdings.
func (c *Client) RiskDecomposition(ctx context.Context, portfolio *riskapi.Portfolio, percentile float64, opts *riskapi.DecompositionOptions) (*riskapi.AnalysisResult, error) {
	result, err := c.postAnalysis(ctx, "risk/decomposition", decompositionParams(portfolio, percentile, opts))
	if err != nil {
		return nil, fmt.Errorf("computing risk decomposition: %w", err)
	}

	return result, nil
}

// RelativeRiskDecomposition implements
// riskapi.RiskAnalysisClient.RelativeRiskDecomposition: decomposition of the
// portfolio relative to the benchmark.
func (c *Client) RelativeRiskDecomposition(ctx context.Context, portfolio, benchmark *riskapi.Portfolio, percentile float64, opts *riskapi.DecompositionOptions) (*riskapi.AnalysisResult, error) {
	params := decompositionParams(portfolio, percentile, opts)
	params["benchmark"] = benchmark.Encode()

	result, err := c.postAnalysis(ctx, "risk/decomposition/relative", params)
	if err != nil {
		return nil, fmt.Errorf("computing relative risk decomposition: %w", err)
	}

	return result, nil
}

// MultiLevelRiskDecomposition implements
// riskapi.RiskAnalysisClient.MultiLevelRiskDecomposition: a hierarchy of
// risk figures according to the asset attributes.
func (c *Client) MultiLevelRiskDecomposition(ctx context.Context, portfolio *riskapi.Portfolio, percentile float64, opts *riskapi.DecompositionOptions) (*riskapi.AnalysisResult, error) {
	result, err := c.postAnalysis(ctx, "risk/multi-level-decomposition", decompositionParams(portfolio, percentile, opts))
	if err != nil {
		return nil, fmt.Errorf("computing multi-level risk decomposition: %w", err)
	}

	return result, nil
}

// RelativeMultiLevelRiskDecomposition implements
// riskapi.RiskAnalysisClient.RelativeMultiLevelRiskDecomposition.
func (c *Client) RelativeMultiLevelRiskDecomposition(ctx context.Context, portfolio, benchmark *riskapi.Portfolio, percentile float64, opts *riskapi.DecompositionOptions) (*riskapi.AnalysisResult, error) {
	params := decompositionParams(portfolio, percentile, opts)
	params["benchmark"] = benchmark.Encode()

	result, err := c.postAnalysis(ctx, "risk/multi-level-decomposition/relative", params)
	if err != nil {
		return nil, fmt.Errorf("computing relative multi-level risk decomposition: %w", err)
	}

	return result, nil
}

package client

import (
	"context"
	"fmt"

	"github.com/statpro-io/riskapi-client/pkg/riskapi"
)

// stressParams builds the parameter structure shared by the stress test
// endpoints. nil codes means every available scenario.
func stressParams(portfolio *riskapi.Portfolio, codes []string) map[string]interface{} {
	return map[string]interface{}{
		"portfolio":         portfolio.Encode(),
		"stress_test_codes": codes,
	}
}

// StressTest implements riskapi.StressTestClient.StressTest: the cash loss
// or gain obtained by applying each requested scenario to the portfolio.
func (c *Client) StressTest(ctx context.Context, portfolio *riskapi.Portfolio, codes []string) (*riskapi.AnalysisResult, error) {
	result, err := c.postAnalysis(ctx, "stress-test", stressParams(portfolio, codes))
	if err != nil {
		return nil, fmt.Errorf("computing stress test: %w", err)
	}

	return result, nil
}

// StressTestDecomposition implements
// riskapi.StressTestClient.StressTestDecomposition.
func (c *Client) StressTestDecomposition(ctx context.Context, portfolio *riskapi.Portfolio, codes []string) (*riskapi.AnalysisResult, error) {
	result, err := c.postAnalysis(ctx, "stress-test/decomposition", stressParams(portfolio, codes))
	if err != nil {
		return nil, fmt.Errorf("computing stress test decomposition: %w", err)
	}

	return result, nil
}

// RelativeStressTestDecomposition implements
// riskapi.StressTestClient.RelativeStressTestDecomposition.
func (c *Client) RelativeStressTestDecomposition(ctx context.Context, portfolio, benchmark *riskapi.Portfolio, codes []string) (*riskapi.AnalysisResult, error) {
	params := stressParams(portfolio, codes)
	params["benchmark"] = benchmark.Encode()

	result, err := c.postAnalysis(ctx, "stress-test/decomposition/relative", params)
	if err != nil {
		return nil, fmt.Errorf("computing relative stress test decomposition: %w", err)
	}

	return result, nil
}

// MultiLevelStressTestDecomposition implements
// riskapi.StressTestClient.MultiLevelStressTestDecomposition.
func (c *Client) MultiLevelStressTestDecomposition(ctx context.Context, portfolio *riskapi.Portfolio, codes []string) (*riskapi.AnalysisResult, error) {
	result, err := c.postAnalysis(ctx, "stress-test/multi-level-decomposition", stressParams(portfolio, codes))
	if err != nil {
		return nil, fmt.Errorf("computing multi-level stress test decomposition: %w", err)
	}

	return result, nil
}

// RelativeMultiLevelStressTestDecomposition implements
// riskapi.StressTestClient.RelativeMultiLevelStressTestDecomposition.
func (c *Client) RelativeMultiLevelStressTestDecomposition(ctx context.Context, portfolio, benchmark *riskapi.Portfolio, codes []string) (*riskapi.AnalysisResult, error) {
	params := stressParams(portfolio, codes)
	params["benchmark"] = benchmark.Encode()

	result, err := c.postAnalysis(ctx, "stress-test/multi-level-decomposition/relative", params)
	if err != nil {
		return nil, fmt.Errorf("computing relative multi-level stress test decomposition: %w", err)
	}

	return result, nil
}

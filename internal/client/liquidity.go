package client

import (
	"context"
	"fmt"

	"github.com/statpro-io/riskapi-client/pkg/riskapi"
)

// LiquidityRisk implements riskapi.LiquidityRiskClient.LiquidityRisk: the
// cash loss or gain obtained by applying each available liquidity scenario
// to the portfolio.
func (c *Client) LiquidityRisk(ctx context.Context, portfolio *riskapi.Portfolio) (*riskapi.AnalysisResult, error) {
	result, err := c.postAnalysis(ctx, "liquidity-risk", map[string]interface{}{
		"portfolio": portfolio.Encode(),
	})
	if err != nil {
		return nil, fmt.Errorf("computing liquidity risk: %w", err)
	}

	return result, nil
}

// LiquidityRiskDecomposition implements
// riskapi.LiquidityRiskClient.LiquidityRiskDecomposition.
func (c *Client) LiquidityRiskDecomposition(ctx context.Context, portfolio *riskapi.Portfolio) (*riskapi.AnalysisResult, error) {
	result, err := c.postAnalysis(ctx, "liquidity-risk/decomposition", map[string]interface{}{
		"portfolio": portfolio.Encode(),
	})
	if err != nil {
		return nil, fmt.Errorf("computing liquidity risk decomposition: %w", err)
	}

	return result, nil
}

// MultiLevelLiquidityRiskDecomposition implements
// riskapi.LiquidityRiskClient.MultiLevelLiquidityRiskDecomposition.
func (c *Client) MultiLevelLiquidityRiskDecomposition(ctx context.Context, portfolio *riskapi.Portfolio) (*riskapi.AnalysisResult, error) {
	result, err := c.postAnalysis(ctx, "liquidity-risk/multi-level-decomposition", map[string]interface{}{
		"portfolio": portfolio.Encode(),
	})
	if err != nil {
		return nil, fmt.Errorf("computing multi-level liquidity risk decomposition: %w", err)
	}

	return result, nil
}

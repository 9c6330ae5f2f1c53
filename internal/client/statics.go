package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/statpro-io/riskapi-client/internal/constants"
	"github.com/statpro-io/riskapi-client/pkg/riskapi"
)

// Products implements riskapi.StaticsClient.Products. With a positive limit
// it issues one bounded request; otherwise it walks the whole listing with
// the catalog page size.
func (c *Client) Products(ctx context.Context, search string, limit int) ([]interface{}, error) {
	params := url.Values{}
	if search != "" {
		params.Set("query", search)
	}

	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))

		resp, err := c.httpClient.Get(ctx, c.url("statics/products"), params, c.headers())
		if err != nil {
			return nil, fmt.Errorf("listing products: %w", err)
		}

		var page riskapi.PagedResponse

		err = resp.Decode(&page)
		if err != nil {
			return nil, fmt.Errorf("parsing products list: %w", err)
		}

		return page.Data, nil
	}

	results, err := c.httpClient.FetchPaginated(ctx,
		c.url("statics/products"), constants.ProductsPageSize, params, c.headers())
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	return results, nil
}

// Product implements riskapi.StaticsClient.Product.
func (c *Client) Product(ctx context.Context, code string) (interface{}, error) {
	value, err := c.getValue(ctx, "statics/products/"+url.PathEscape(code), nil)
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}

	return value, nil
}

// StressTestScenarios implements riskapi.StaticsClient.StressTestScenarios.
func (c *Client) StressTestScenarios(ctx context.Context) (interface{}, error) {
	value, err := c.getValue(ctx, "statics/stress-test", nil)
	if err != nil {
		return nil, fmt.Errorf("listing stress test scenarios: %w", err)
	}

	return value, nil
}

// LiquidityRiskScenarios implements riskapi.StaticsClient.LiquidityRiskScenarios.
func (c *Client) LiquidityRiskScenarios(ctx context.Context) (interface{}, error) {
	value, err := c.getValue(ctx, "statics/liquidity-risk", nil)
	if err != nil {
		return nil, fmt.Errorf("listing liquidity risk scenarios: %w", err)
	}

	return value, nil
}

// PortfolioInfo implements riskapi.StaticsClient.PortfolioInfo.
func (c *Client) PortfolioInfo(ctx context.Context, portfolio *riskapi.Portfolio, fields []string) (*riskapi.AnalysisResult, error) {
	result, err := c.postAnalysis(ctx, "statics/portfolio-info", map[string]interface{}{
		"portfolio": portfolio.Encode(),
		"fields":    fields,
	})
	if err != nil {
		return nil, fmt.Errorf("getting portfolio info: %w", err)
	}

	return result, nil
}

// DataInfo implements riskapi.StaticsClient.DataInfo.
func (c *Client) DataInfo(ctx context.Context) (interface{}, error) {
	value, err := c.getValue(ctx, "statics/data-info", nil)
	if err != nil {
		return nil, fmt.Errorf("getting data info: %w", err)
	}

	return value, nil
}

package client

import (
	"context"
	"fmt"
)

// AussieBondFuturesNPV implements riskapi.PricingClient.AussieBondFuturesNPV.
func (c *Client) AussieBondFuturesNPV(ctx context.Context, code string, price float64) (interface{}, error) {
	value, err := c.postValue(ctx, "aussie-bond-futures-npv", map[string]interface{}{
		"code":  code,
		"price": price,
	})
	if err != nil {
		return nil, fmt.Errorf("computing aussie bond futures npv: %w", err)
	}

	return value, nil
}

// SystemInfo implements riskapi.SystemClient.SystemInfo.
func (c *Client) SystemInfo(ctx context.Context) (interface{}, error) {
	value, err := c.getValue(ctx, "system/dashboard", nil)
	if err != nil {
		return nil, fmt.Errorf("getting system info: %w", err)
	}

	return value, nil
}

// Resources implements riskapi.SystemClient.Resources.
func (c *Client) Resources(ctx context.Context) (interface{}, error) {
	value, err := c.getValue(ctx, "system/resources", nil)
	if err != nil {
		return nil, fmt.Errorf("getting resources: %w", err)
	}

	return value, nil
}

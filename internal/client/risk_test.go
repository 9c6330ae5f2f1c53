package client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statpro-io/riskapi-client/pkg/riskapi"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Risk(t *testing.T) {
	t.Parallel()
	t.Run("defaults fill unset options", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t)
		server.responses["/api/v1/risk"] = `{"errors":[],"results":[{"var":60851.91,"percentile":0.99}]}`

		riskClient := newTestClient(t, server)

		result, err := riskClient.Risk(context.Background(), newTestPortfolio(), &riskapi.RiskOptions{
			Percentiles: []float64{0.99},
		})
		require.NoError(t, err)
		require.NotNil(t, result)

		body := decodeJSONBody(t, server.last(t).Body)
		assert.Equal(t, []interface{}{0.99}, body["percentiles"])
		assert.Len(t, body["functions"], len(riskapi.RiskFunctions))
		assert.Equal(t, []interface{}{float64(730)}, body["lookback_days"])
		assert.Equal(t, []interface{}{float64(1)}, body["horizons"])
		assert.Equal(t, []interface{}{float64(1)}, body["frequencies"])
		assert.Nil(t, body["exponential_decay"])
	})

	t.Run("explicit options are sent as-is", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t)
		server.responses["/api/v1/risk"] = `{"errors":[],"results":[]}`

		riskClient := newTestClient(t, server)

		decay := 0.97

		_, err := riskClient.Risk(context.Background(), newTestPortfolio(), &riskapi.RiskOptions{
			Percentiles:      []float64{0.95, 0.99},
			Functions:        []string{"var", "volatility"},
			LookbackDays:     []int{365},
			Horizons:         []int{1, 10},
			Frequencies:      []int{5},
			ExponentialDecay: &decay,
		})
		require.NoError(t, err)

		body := decodeJSONBody(t, server.last(t).Body)
		assert.Equal(t, []interface{}{"var", "volatility"}, body["functions"])
		assert.Equal(t, []interface{}{float64(365)}, body["lookback_days"])
		assert.Equal(t, []interface{}{float64(1), float64(10)}, body["horizons"])
		assert.Equal(t, []interface{}{float64(5)}, body["frequencies"])
		assert.Equal(t, 0.97, body["exponential_decay"])
	})

	t.Run("coverage errors pass through", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t)
		server.responses["/api/v1/risk"] = `{"errors":[[2,"uncovered","Client code not found: 'XXX'",["XXX",null]]],"results":[]}`

		riskClient := newTestClient(t, server)

		result, err := riskClient.Risk(context.Background(), newTestPortfolio(), nil)
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "uncovered", result.Errors[0][1])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RiskDecomposition(t *testing.T) {
	t.Parallel()
	t.Run("defaults to decomposable functions", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t)
		server.responses["/api/v1/risk/decomposition"] = `{"errors":[],"results":{}}`

		riskClient := newTestClient(t, server)

		_, err := riskClient.RiskDecomposition(context.Background(), newTestPortfolio(), 0.99, nil)
		require.NoError(t, err)

		body := decodeJSONBody(t, server.last(t).Body)
		assert.Equal(t, 0.99, body["percentile"])
		assert.Len(t, body["functions"], len(riskapi.DecomposableRiskFunctions))
		assert.Equal(t, float64(730), body["lookback_days"])
		assert.Equal(t, float64(1), body["horizon"])
		assert.Equal(t, float64(1), body["frequency"])
	})

	t.Run("relative variant carries the benchmark", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t)
		server.responses["/api/v1/risk/decomposition/relative"] = `{"errors":[],"results":{}}`

		riskClient := newTestClient(t, server)

		benchmark := riskapi.NewPortfolio("USD")
		benchmark.Add("BENCH1")

		_, err := riskClient.RelativeRiskDecomposition(context.Background(), newTestPortfolio(), benchmark, 0.95, nil)
		require.NoError(t, err)

		body := decodeJSONBody(t, server.last(t).Body)
		require.Contains(t, body, "benchmark")

		wire, ok := body["benchmark"].([]interface{})
		require.True(t, ok)

		header, ok := wire[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "USD", header["currency"])
	})

	t.Run("multi-level endpoints", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t)
		server.responses["/api/v1/risk/multi-level-decomposition"] = `{"errors":[],"results":{}}`
		server.responses["/api/v1/risk/multi-level-decomposition/relative"] = `{"errors":[],"results":{}}`

		riskClient := newTestClient(t, server)

		_, err := riskClient.MultiLevelRiskDecomposition(context.Background(), newTestPortfolio(), 0.99, nil)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/risk/multi-level-decomposition", server.last(t).Path)

		_, err = riskClient.RelativeMultiLevelRiskDecomposition(context.Background(),
			newTestPortfolio(), riskapi.NewPortfolio("USD"), 0.99, nil)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/risk/multi-level-decomposition/relative", server.last(t).Path)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_StressAndLiquidity(t *testing.T) {
	t.Parallel()
	t.Run("stress test sends scenario codes", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t)
		server.responses["/api/v1/stress-test"] = `{"errors":[],"results":{}}`

		riskClient := newTestClient(t, server)

		_, err := riskClient.StressTest(context.Background(), newTestPortfolio(), []string{"oil_shock"})
		require.NoError(t, err)

		body := decodeJSONBody(t, server.last(t).Body)
		assert.Equal(t, []interface{}{"oil_shock"}, body["stress_test_codes"])
	})

	t.Run("nil codes request every scenario", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t)
		server.responses["/api/v1/stress-test"] = `{"errors":[],"results":{}}`

		riskClient := newTestClient(t, server)

		_, err := riskClient.StressTest(context.Background(), newTestPortfolio(), nil)
		require.NoError(t, err)

		body := decodeJSONBody(t, server.last(t).Body)
		assert.Nil(t, body["stress_test_codes"])
	})

	t.Run("stress decomposition paths", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t)
		server.responses["/api/v1/stress-test/decomposition"] = `{"errors":[],"results":{}}`
		server.responses["/api/v1/stress-test/decomposition/relative"] = `{"errors":[],"results":{}}`
		server.responses["/api/v1/stress-test/multi-level-decomposition"] = `{"errors":[],"results":{}}`
		server.responses["/api/v1/stress-test/multi-level-decomposition/relative"] = `{"errors":[],"results":{}}`

		riskClient := newTestClient(t, server)
		portfolio := newTestPortfolio()
		benchmark := riskapi.NewPortfolio("USD")

		_, err := riskClient.StressTestDecomposition(context.Background(), portfolio, nil)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/stress-test/decomposition", server.last(t).Path)

		_, err = riskClient.RelativeStressTestDecomposition(context.Background(), portfolio, benchmark, nil)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/stress-test/decomposition/relative", server.last(t).Path)

		_, err = riskClient.MultiLevelStressTestDecomposition(context.Background(), portfolio, nil)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/stress-test/multi-level-decomposition", server.last(t).Path)

		_, err = riskClient.RelativeMultiLevelStressTestDecomposition(context.Background(), portfolio, benchmark, nil)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/stress-test/multi-level-decomposition/relative", server.last(t).Path)
	})

	t.Run("liquidity risk endpoints", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t)
		server.responses["/api/v1/liquidity-risk"] = `{"errors":[],"results":{}}`
		server.responses["/api/v1/liquidity-risk/decomposition"] = `{"errors":[],"results":{}}`
		server.responses["/api/v1/liquidity-risk/multi-level-decomposition"] = `{"errors":[],"results":{}}`

		riskClient := newTestClient(t, server)
		portfolio := newTestPortfolio()

		_, err := riskClient.LiquidityRisk(context.Background(), portfolio)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/liquidity-risk", server.last(t).Path)

		_, err = riskClient.LiquidityRiskDecomposition(context.Background(), portfolio)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/liquidity-risk/decomposition", server.last(t).Path)

		_, err = riskClient.MultiLevelLiquidityRiskDecomposition(context.Background(), portfolio)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/liquidity-risk/multi-level-decomposition", server.last(t).Path)
	})

	t.Run("aussie bond futures npv", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t)
		server.responses["/api/v1/aussie-bond-futures-npv"] = `{"npv":98.72}`

		riskClient := newTestClient(t, server)

		value, err := riskClient.AussieBondFuturesNPV(context.Background(), "AUS-2027", 101.5)
		require.NoError(t, err)

		decoded, ok := value.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 98.72, decoded["npv"])

		body := decodeJSONBody(t, server.last(t).Body)
		assert.Equal(t, "AUS-2027", body["code"])
		assert.Equal(t, 101.5, body["price"])
	})
}

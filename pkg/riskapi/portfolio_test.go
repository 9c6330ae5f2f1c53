package riskapi_test

import (
	"path/filepath"
	"testing"

	"github.com/statpro-io/riskapi-client/pkg/riskapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolding_Encode(t *testing.T) {
	t.Parallel()
	t.Run("defaults become nulls", func(t *testing.T) {
		t.Parallel()

		portfolio := riskapi.NewPortfolio("EUR")
		holding := portfolio.Add("US0003041052")

		row := holding.Encode()
		require.Len(t, row, 7)
		assert.Equal(t, "US0003041052", row[0])
		assert.Nil(t, row[1])
		assert.InDelta(t, 1.0, row[2], 0)
		assert.Nil(t, row[3])
		assert.Equal(t, []string{}, row[4])
		assert.Nil(t, row[5])
		assert.Nil(t, row[6])
	})

	t.Run("options land in their positions", func(t *testing.T) {
		t.Parallel()

		portfolio := riskapi.NewPortfolio("EUR")
		holding := portfolio.Add("US000324AA15",
			riskapi.WithPrice(101.5),
			riskapi.WithQuantity(10000),
			riskapi.WithCurrencyExchangeValue(1.1),
			riskapi.WithAttributes("Corporate", "Financial"),
			riskapi.WithCurrency("USD"),
			riskapi.WithPriceFactor(0.01),
		)

		row := holding.Encode()
		require.Len(t, row, 7)
		assert.InDelta(t, 101.5, *row[1].(*float64), 0)
		assert.InDelta(t, 10000.0, row[2], 0)
		assert.InDelta(t, 1.1, *row[3].(*float64), 0)
		assert.Equal(t, []string{"Corporate", "Financial"}, row[4])
		assert.Equal(t, "USD", row[5])
		assert.InDelta(t, 0.01, *row[6].(*float64), 0)
	})
}

func TestPortfolio_Encode(t *testing.T) {
	t.Parallel()

	portfolio := riskapi.NewPortfolio("EUR")
	portfolio.Add("US0003041052", riskapi.WithQuantity(13000))
	portfolio.Add("US000324AA15", riskapi.WithQuantity(10000))

	wire := portfolio.Encode()
	require.Len(t, wire, 2)

	header, ok := wire[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "EUR", header["currency"])
	assert.Equal(t, riskapi.PortfolioTypeQuantities, header["type"])
	assert.Nil(t, header["outstanding"])

	holdings, ok := wire[1].([]interface{})
	require.True(t, ok)
	require.Len(t, holdings, 2)
	assert.Equal(t, "US0003041052", holdings[0].([]interface{})[0])
}

func TestPortfolio_DumpAndLoad(t *testing.T) {
	t.Parallel()

	outstanding := 2500000.0
	portfolio := riskapi.NewPortfolio("GBP")
	portfolio.Type = riskapi.PortfolioTypeWeights
	portfolio.Outstanding = &outstanding
	portfolio.CoveragePriority = []string{"equity", "fixed_income"}
	portfolio.Add("DE0005557508",
		riskapi.WithQuantity(0.4),
		riskapi.WithAttributes("Telecom"),
		riskapi.WithCurrency("EUR"),
	)
	portfolio.Add("GB0002374006", riskapi.WithQuantity(0.6), riskapi.WithPrice(18.2))

	fileName := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, portfolio.Dump(fileName))

	loaded, err := riskapi.LoadPortfolio(fileName)
	require.NoError(t, err)

	assert.Equal(t, "GBP", loaded.Currency)
	assert.Equal(t, riskapi.PortfolioTypeWeights, loaded.Type)
	require.NotNil(t, loaded.Outstanding)
	assert.InDelta(t, outstanding, *loaded.Outstanding, 0)
	assert.Equal(t, []string{"equity", "fixed_income"}, loaded.CoveragePriority)

	require.Len(t, loaded.Holdings, 2)
	first := loaded.Holdings[0]
	assert.Equal(t, "DE0005557508", first.Code)
	assert.InDelta(t, 0.4, first.Quantity, 0)
	assert.Equal(t, []string{"Telecom"}, first.Attributes)
	assert.Equal(t, "EUR", first.Currency)
	assert.Nil(t, first.Price)

	second := loaded.Holdings[1]
	require.NotNil(t, second.Price)
	assert.InDelta(t, 18.2, *second.Price, 0)
}

func TestLoadPortfolio_Malformed(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "missing.json")

	_, err := riskapi.LoadPortfolio(fileName)
	require.Error(t, err)
}

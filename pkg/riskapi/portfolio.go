package riskapi

import (
	"encoding/json"
	"fmt"
	"os"
)

// Portfolio types accepted by the server.
const (
	PortfolioTypeQuantities = "quantities"
	PortfolioTypeWeights    = "weights"
)

// Holding is one position inside a Portfolio. Zero-value optional fields are
// transmitted as nulls; the server applies its own defaults.
type Holding struct {
	Code                  string
	Price                 *float64
	Quantity              float64
	CurrencyExchangeValue *float64
	Attributes            []string
	Currency              string
	PriceFactor           *float64
}

// Encode returns the positional array the server expects for a holding.
func (h *Holding) Encode() []interface{} {
	attributes := h.Attributes
	if attributes == nil {
		attributes = []string{}
	}

	return []interface{}{
		h.Code,
		h.Price,
		h.Quantity,
		h.CurrencyExchangeValue,
		attributes,
		nullableString(h.Currency),
		h.PriceFactor,
	}
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}

	return s
}

// HoldingOption customizes a holding added via Portfolio.Add.
type HoldingOption func(*Holding)

// WithPrice sets an explicit price, overriding the server's reference price.
func WithPrice(price float64) HoldingOption {
	return func(h *Holding) { h.Price = &price }
}

// WithQuantity sets the held quantity (default 1).
func WithQuantity(quantity float64) HoldingOption {
	return func(h *Holding) { h.Quantity = quantity }
}

// WithCurrencyExchangeValue fixes the exchange rate used for the holding.
func WithCurrencyExchangeValue(value float64) HoldingOption {
	return func(h *Holding) { h.CurrencyExchangeValue = &value }
}

// WithAttributes sets the attribute path used by decomposition analyses.
func WithAttributes(attributes ...string) HoldingOption {
	return func(h *Holding) { h.Attributes = attributes }
}

// WithCurrency overrides the holding currency.
func WithCurrency(currency string) HoldingOption {
	return func(h *Holding) { h.Currency = currency }
}

// WithPriceFactor sets the price scaling factor.
func WithPriceFactor(factor float64) HoldingOption {
	return func(h *Holding) { h.PriceFactor = &factor }
}

// Portfolio describes the positions submitted alongside every analysis
// request. It is a pure value object: nothing here talks to the network.
type Portfolio struct {
	Currency         string
	Holdings         []*Holding
	Type             string
	Outstanding      *float64
	CoveragePriority []string
}

// NewPortfolio creates an empty portfolio of type "quantities" denominated in
// the given currency.
func NewPortfolio(currency string) *Portfolio {
	return &Portfolio{
		Currency: currency,
		Type:     PortfolioTypeQuantities,
	}
}

// Add appends a holding with the given code and options and returns it.
func (p *Portfolio) Add(code string, opts ...HoldingOption) *Holding {
	holding := &Holding{Code: code, Quantity: 1}

	for _, opt := range opts {
		opt(holding)
	}

	p.Holdings = append(p.Holdings, holding)

	return holding
}

// Encode returns the two-element structure the server expects: a header map
// followed by the positional holding arrays.
func (p *Portfolio) Encode() []interface{} {
	holdings := make([]interface{}, 0, len(p.Holdings))
	for _, holding := range p.Holdings {
		holdings = append(holdings, holding.Encode())
	}

	header := map[string]interface{}{
		"currency":          p.Currency,
		"type":              p.Type,
		"outstanding":       p.Outstanding,
		"coverage_priority": p.CoveragePriority,
	}

	return []interface{}{header, holdings}
}

// Dump writes the portfolio to a JSON file in the server wire shape, suitable
// for LoadPortfolio.
func (p *Portfolio) Dump(fileName string) error {
	data, err := json.Marshal(p.Encode())
	if err != nil {
		return fmt.Errorf("encoding portfolio: %w", err)
	}

	err = os.WriteFile(fileName, data, 0600)
	if err != nil {
		return fmt.Errorf("writing portfolio file: %w", err)
	}

	return nil
}

// LoadPortfolio reads a portfolio previously written by Dump.
func LoadPortfolio(fileName string) (*Portfolio, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("reading portfolio file: %w", err)
	}

	return decodePortfolio(data)
}

type portfolioHeader struct {
	Currency         string   `json:"currency"`
	Type             string   `json:"type"`
	Outstanding      *float64 `json:"outstanding"`
	CoveragePriority []string `json:"coverage_priority"`
}

func decodePortfolio(data []byte) (*Portfolio, error) {
	var wire []json.RawMessage

	err := json.Unmarshal(data, &wire)
	if err != nil {
		return nil, fmt.Errorf("parsing portfolio: %w", err)
	}

	if len(wire) != 2 {
		return nil, fmt.Errorf("parsing portfolio: expected [header, holdings], got %d elements", len(wire))
	}

	var header portfolioHeader

	err = json.Unmarshal(wire[0], &header)
	if err != nil {
		return nil, fmt.Errorf("parsing portfolio header: %w", err)
	}

	var rows [][]json.RawMessage

	err = json.Unmarshal(wire[1], &rows)
	if err != nil {
		return nil, fmt.Errorf("parsing portfolio holdings: %w", err)
	}

	portfolio := &Portfolio{
		Currency:         header.Currency,
		Type:             header.Type,
		Outstanding:      header.Outstanding,
		CoveragePriority: header.CoveragePriority,
	}

	for i, row := range rows {
		holding, err := decodeHolding(row)
		if err != nil {
			return nil, fmt.Errorf("parsing holding %d: %w", i, err)
		}

		portfolio.Holdings = append(portfolio.Holdings, holding)
	}

	return portfolio, nil
}

func decodeHolding(row []json.RawMessage) (*Holding, error) {
	const holdingFields = 7

	if len(row) != holdingFields {
		return nil, fmt.Errorf("expected %d fields, got %d", holdingFields, len(row))
	}

	holding := &Holding{Quantity: 1}

	fields := []interface{}{
		&holding.Code,
		&holding.Price,
		&holding.Quantity,
		&holding.CurrencyExchangeValue,
		&holding.Attributes,
		&holding.Currency,
		&holding.PriceFactor,
	}

	for i, target := range fields {
		if string(row[i]) == "null" {
			continue
		}

		err := json.Unmarshal(row[i], target)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
	}

	return holding, nil
}

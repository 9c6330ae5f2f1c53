package riskapi

// RiskFunctions lists every risk measure the server can compute.
var RiskFunctions = []string{
	"average_potential_upside", "average_var", "diversification",
	"expected_loss", "expected_return", "expected_shortfall",
	"expected_upside", "potential_upside", "var", "volatility",
}

// DecomposableRiskFunctions lists the measures supported by the
// decomposition analyses.
var DecomposableRiskFunctions = []string{
	"expected_shortfall", "expected_upside",
	"potential_upside", "var", "volatility",
}

// Analysis defaults applied when the caller leaves options unset.
const (
	DefaultLookbackDays = 730
	DefaultHorizon      = 1
	DefaultFrequency    = 1
)

// AnalysisResult is the envelope every analysis endpoint answers with:
// per-holding coverage errors plus the server-shaped results payload. Result
// shapes vary per analysis and are passed through undecoded beyond the
// generic structure.
type AnalysisResult struct {
	Errors  [][]interface{} `json:"errors"  msgpack:"errors"`
	Results interface{}     `json:"results" msgpack:"results"`
}

// PagedResponse is the envelope of server-side paginated listings.
type PagedResponse struct {
	Count int           `json:"count" msgpack:"count"`
	Data  []interface{} `json:"data"  msgpack:"data"`
}

// RiskOptions parameterizes Client.Risk. Zero-value fields get server-side
// conventions: all risk functions, 730 lookback days, horizon 1, frequency 1.
type RiskOptions struct {
	Percentiles      []float64
	Functions        []string
	LookbackDays     []int
	Horizons         []int
	Frequencies      []int
	ExponentialDecay *float64
}

// DecompositionOptions parameterizes the decomposition analyses. Zero-value
// fields default to the decomposable functions, 730 lookback days, horizon 1,
// frequency 1, no field selection.
type DecompositionOptions struct {
	Functions    []string
	LookbackDays int
	Horizon      int
	Frequency    int
	Fields       []string
}

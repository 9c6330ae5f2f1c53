package commands

import (
	"github.com/spf13/cobra"

	"github.com/statpro-io/riskapi-client/pkg/riskapi"
)

// NewRiskCommand creates the risk command group
func NewRiskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Run risk analyses",
		Long:  "Compute risk measures and decompositions for a portfolio file",
	}

	cmd.AddCommand(newRiskRunCommand())
	cmd.AddCommand(newRiskDecomposeCommand())

	return cmd
}

func newRiskRunCommand() *cobra.Command {
	var (
		percentiles []float64
		functions   []string
		lookbacks   []int
		horizons    []int
		frequencies []int
		decay       float64
	)

	cmd := &cobra.Command{
		Use:   "run PORTFOLIO_FILE",
		Short: "Compute risk measures",
		Long:  "Compute the selected risk measures for a portfolio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			portfolio, err := riskapi.LoadPortfolio(args[0])
			if err != nil {
				return err
			}

			opts := &riskapi.RiskOptions{
				Percentiles:  percentiles,
				Functions:    functions,
				LookbackDays: lookbacks,
				Horizons:     horizons,
				Frequencies:  frequencies,
			}
			if cmd.Flags().Changed("decay") {
				opts.ExponentialDecay = &decay
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.Risk(cmd.Context(), portfolio, opts)
			if err != nil {
				return err
			}

			return renderAnalysis(result)
		},
	}

	cmd.Flags().Float64SliceVar(&percentiles, "percentile", []float64{95}, "percentiles to compute")
	cmd.Flags().StringSliceVar(&functions, "function", nil, "risk functions (default all)")
	cmd.Flags().IntSliceVar(&lookbacks, "lookback", nil, "lookback windows in days")
	cmd.Flags().IntSliceVar(&horizons, "horizon", nil, "horizons in days")
	cmd.Flags().IntSliceVar(&frequencies, "frequency", nil, "sampling frequencies in days")
	cmd.Flags().Float64Var(&decay, "decay", 0, "exponential decay factor")

	return cmd
}

//nolint:funlen // flag wiring
func newRiskDecomposeCommand() *cobra.Command {
	var (
		percentile    float64
		benchmarkFile string
		multiLevel    bool
		functions     []string
		lookback      int
		horizon       int
		frequency     int
		fields        []string
	)

	cmd := &cobra.Command{
		Use:   "decompose PORTFOLIO_FILE",
		Short: "Decompose risk by holding",
		Long:  "Decompose risk measures across the holdings of a portfolio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			portfolio, err := riskapi.LoadPortfolio(args[0])
			if err != nil {
				return err
			}

			var benchmark *riskapi.Portfolio
			if benchmarkFile != "" {
				benchmark, err = riskapi.LoadPortfolio(benchmarkFile)
				if err != nil {
					return err
				}
			}

			opts := &riskapi.DecompositionOptions{
				Functions:    functions,
				LookbackDays: lookback,
				Horizon:      horizon,
				Frequency:    frequency,
				Fields:       fields,
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			result, err := runRiskDecomposition(cmd, client, portfolio, benchmark, percentile, multiLevel, opts)
			if err != nil {
				return err
			}

			return renderAnalysis(result)
		},
	}

	cmd.Flags().Float64Var(&percentile, "percentile", 95, "percentile to decompose")
	cmd.Flags().StringVar(&benchmarkFile, "benchmark", "", "benchmark portfolio file (relative decomposition)")
	cmd.Flags().BoolVar(&multiLevel, "multi-level", false, "decompose along the attribute hierarchy")
	cmd.Flags().StringSliceVar(&functions, "function", nil, "risk functions (default decomposable set)")
	cmd.Flags().IntVar(&lookback, "lookback", 0, "lookback window in days")
	cmd.Flags().IntVar(&horizon, "horizon", 0, "horizon in days")
	cmd.Flags().IntVar(&frequency, "frequency", 0, "sampling frequency in days")
	cmd.Flags().StringSliceVar(&fields, "field", nil, "result fields to return")

	return cmd
}

func runRiskDecomposition(
	cmd *cobra.Command,
	client riskapi.Client,
	portfolio, benchmark *riskapi.Portfolio,
	percentile float64,
	multiLevel bool,
	opts *riskapi.DecompositionOptions,
) (*riskapi.AnalysisResult, error) {
	ctx := cmd.Context()

	switch {
	case benchmark != nil && multiLevel:
		return client.RelativeMultiLevelRiskDecomposition(ctx, portfolio, benchmark, percentile, opts)
	case benchmark != nil:
		return client.RelativeRiskDecomposition(ctx, portfolio, benchmark, percentile, opts)
	case multiLevel:
		return client.MultiLevelRiskDecomposition(ctx, portfolio, percentile, opts)
	default:
		return client.RiskDecomposition(ctx, portfolio, percentile, opts)
	}
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/statpro-io/riskapi-client/pkg/riskapi"
)

// NewStressTestCommand creates the stress-test command group
func NewStressTestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stress-test",
		Aliases: []string{"stress"},
		Short:   "Run stress test analyses",
		Long:    "Apply stress test scenarios to a portfolio file",
	}

	cmd.AddCommand(newStressRunCommand())
	cmd.AddCommand(newStressDecomposeCommand())

	return cmd
}

func newStressRunCommand() *cobra.Command {
	var codes []string

	cmd := &cobra.Command{
		Use:   "run PORTFOLIO_FILE",
		Short: "Apply stress test scenarios",
		Long:  "Apply the selected stress test scenarios to a portfolio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			portfolio, err := riskapi.LoadPortfolio(args[0])
			if err != nil {
				return err
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.StressTest(cmd.Context(), portfolio, codes)
			if err != nil {
				return err
			}

			return renderAnalysis(result)
		},
	}

	cmd.Flags().StringSliceVar(&codes, "scenario", nil, "scenario codes (default all)")

	return cmd
}

func newStressDecomposeCommand() *cobra.Command {
	var (
		codes         []string
		benchmarkFile string
		multiLevel    bool
	)

	cmd := &cobra.Command{
		Use:   "decompose PORTFOLIO_FILE",
		Short: "Decompose stress test results by holding",
		Long:  "Decompose stress test scenario results across the holdings of a portfolio file",
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

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			result, err := runStressDecomposition(cmd, client, portfolio, benchmark, multiLevel, codes)
			if err != nil {
				return err
			}

			return renderAnalysis(result)
		},
	}

	cmd.Flags().StringSliceVar(&codes, "scenario", nil, "scenario codes (default all)")
	cmd.Flags().StringVar(&benchmarkFile, "benchmark", "", "benchmark portfolio file (relative decomposition)")
	cmd.Flags().BoolVar(&multiLevel, "multi-level", false, "decompose along the attribute hierarchy")

	return cmd
}

func runStressDecomposition(
	cmd *cobra.Command,
	client riskapi.Client,
	portfolio, benchmark *riskapi.Portfolio,
	multiLevel bool,
	codes []string,
) (*riskapi.AnalysisResult, error) {
	ctx := cmd.Context()

	switch {
	case benchmark != nil && multiLevel:
		return client.RelativeMultiLevelStressTestDecomposition(ctx, portfolio, benchmark, codes)
	case benchmark != nil:
		return client.RelativeStressTestDecomposition(ctx, portfolio, benchmark, codes)
	case multiLevel:
		return client.MultiLevelStressTestDecomposition(ctx, portfolio, codes)
	default:
		return client.StressTestDecomposition(ctx, portfolio, codes)
	}
}

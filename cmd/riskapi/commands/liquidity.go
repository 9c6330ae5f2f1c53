package commands

import (
	"github.com/spf13/cobra"

	"github.com/statpro-io/riskapi-client/pkg/riskapi"
)

// NewLiquidityCommand creates the liquidity command group
func NewLiquidityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidity",
		Short: "Run liquidity risk analyses",
		Long:  "Compute liquidity risk figures for a portfolio file",
	}

	cmd.AddCommand(newLiquidityRunCommand())
	cmd.AddCommand(newLiquidityDecomposeCommand())

	return cmd
}

func newLiquidityRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run PORTFOLIO_FILE",
		Short: "Compute liquidity risk",
		Long:  "Compute the liquidity risk figures for a portfolio file",
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

			result, err := client.LiquidityRisk(cmd.Context(), portfolio)
			if err != nil {
				return err
			}

			return renderAnalysis(result)
		},
	}
}

func newLiquidityDecomposeCommand() *cobra.Command {
	var multiLevel bool

	cmd := &cobra.Command{
		Use:   "decompose PORTFOLIO_FILE",
		Short: "Decompose liquidity risk by holding",
		Long:  "Decompose liquidity risk figures across the holdings of a portfolio file",
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

			var result *riskapi.AnalysisResult
			if multiLevel {
				result, err = client.MultiLevelLiquidityRiskDecomposition(cmd.Context(), portfolio)
			} else {
				result, err = client.LiquidityRiskDecomposition(cmd.Context(), portfolio)
			}

			if err != nil {
				return err
			}

			return renderAnalysis(result)
		},
	}

	cmd.Flags().BoolVar(&multiLevel, "multi-level", false, "decompose along the attribute hierarchy")

	return cmd
}

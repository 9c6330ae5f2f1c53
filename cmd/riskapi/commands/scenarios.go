package commands

import (
	"github.com/spf13/cobra"
)

// NewScenariosCommand creates the scenarios command group
func NewScenariosCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scenarios",
		Aliases: []string{"scenario"},
		Short:   "Browse scenario catalogs",
		Long:    "List the stress test and liquidity risk scenarios known to the server",
	}

	cmd.AddCommand(newScenariosStressCommand())
	cmd.AddCommand(newScenariosLiquidityCommand())

	return cmd
}

func newScenariosStressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "List stress test scenarios",
		Long:  "List the stress test scenarios available for analyses",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			scenarios, err := client.StressTestScenarios(cmd.Context())
			if err != nil {
				return err
			}

			return renderValue(scenarios)
		},
	}
}

func newScenariosLiquidityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "liquidity",
		Short: "List liquidity risk scenarios",
		Long:  "List the liquidity risk scenarios available for analyses",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			scenarios, err := client.LiquidityRiskScenarios(cmd.Context())
			if err != nil {
				return err
			}

			return renderValue(scenarios)
		},
	}
}

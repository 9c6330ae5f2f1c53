package commands

import (
	"github.com/spf13/cobra"

	"github.com/statpro-io/riskapi-client/pkg/riskapi"
)

// NewInfoCommand creates the info command group
func NewInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Inspect server and dataset state",
		Long:  "Display server, dataset, and portfolio information",
	}

	cmd.AddCommand(newInfoSystemCommand())
	cmd.AddCommand(newInfoDataCommand())
	cmd.AddCommand(newInfoResourcesCommand())
	cmd.AddCommand(newInfoPortfolioCommand())

	return cmd
}

func newInfoSystemCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "system",
		Short: "Display the server dashboard",
		Long:  "Display the server dashboard payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			info, err := client.SystemInfo(cmd.Context())
			if err != nil {
				return err
			}

			return renderValue(info)
		},
	}
}

func newInfoDataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "data",
		Short: "Display dataset information",
		Long:  "Display static information about the latest loaded dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			info, err := client.DataInfo(cmd.Context())
			if err != nil {
				return err
			}

			return renderValue(info)
		},
	}
}

func newInfoResourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "Display the resource catalog",
		Long:  "Display the resource catalog advertised by the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			resources, err := client.Resources(cmd.Context())
			if err != nil {
				return err
			}

			return renderValue(resources)
		},
	}
}

func newInfoPortfolioCommand() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "portfolio PORTFOLIO_FILE",
		Short: "Display portfolio statics",
		Long:  "Display static information about the holdings of a portfolio file",
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

			result, err := client.PortfolioInfo(cmd.Context(), portfolio, fields)
			if err != nil {
				return err
			}

			return renderAnalysis(result)
		},
	}

	cmd.Flags().StringSliceVar(&fields, "field", nil, "statics fields to return")

	return cmd
}

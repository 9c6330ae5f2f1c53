package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/statpro-io/riskapi-client/cmd/riskapi/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "riskapi",
	Short: "StatPro RiskAPI CLI",
	Long: `A command-line interface for the StatPro RiskAPI analytics service.

This CLI runs risk, stress-test, and liquidity analyses against portfolios,
and browses the product and scenario catalogs exposed by the server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.riskapi.conf)")
	rootCmd.PersistentFlags().String("host", "", "server address, optionally host:port")
	rootCmd.PersistentFlags().String("customer", "", "tenant path segment")
	rootCmd.PersistentFlags().StringP("user", "u", "", "basic-auth username")
	rootCmd.PersistentFlags().String("password", "", "basic-auth password")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().String("format", "", "wire format (json, msgpack)")
	rootCmd.PersistentFlags().Bool("insecure", false, "connect over plain http")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag("customer", rootCmd.PersistentFlags().Lookup("customer"))
	_ = viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
	_ = viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("insecure", rootCmd.PersistentFlags().Lookup("insecure"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetEnvPrefix("RISKAPI")
	viper.AutomaticEnv()

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewProductsCommand())
	rootCmd.AddCommand(commands.NewScenariosCommand())
	rootCmd.AddCommand(commands.NewRiskCommand())
	rootCmd.AddCommand(commands.NewStressTestCommand())
	rootCmd.AddCommand(commands.NewLiquidityCommand())
	rootCmd.AddCommand(commands.NewInfoCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/statpro-io/riskapi-client/pkg/riskapi"
	"github.com/statpro-io/riskapi-client/pkg/riskclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	Masked = "***"
)

// loadConfig assembles the client configuration from the configuration file
// and the global flags. Flags win over file settings.
func loadConfig() (*riskapi.Config, error) {
	path := viper.GetString("config")
	if path == "" {
		path = riskclient.DefaultConfigPath()
	}

	config, err := riskclient.LoadConfigFile(path)
	if err != nil {
		return nil, err
	}

	if host := viper.GetString("host"); host != "" {
		config.Host = host
	}

	if customer := viper.GetString("customer"); customer != "" {
		config.Customer = customer
	}

	if user := viper.GetString("user"); user != "" {
		config.Username = user
	}

	if password := viper.GetString("password"); password != "" {
		config.Password = password
	}

	if viper.GetBool("insecure") {
		config.Scheme = "http"
	}

	if format := viper.GetString("format"); format != "" {
		config.RequestFormat = format
		config.ResponseFormat = format
	}

	config.Debug = viper.GetBool("verbose")
	config.SkipResourceDiscovery = true

	return config, nil
}

// newClient builds a RiskAPI client from the effective configuration.
func newClient(ctx context.Context) (riskapi.Client, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if config.Host == "" {
		config.Host = riskclient.DefaultHost
	}

	return riskclient.New(ctx, config)
}

// renderValue writes a decoded server value to stdout in the selected output
// format. Table mode falls back to indented JSON: analysis results are nested
// structures that do not fit a grid.
func renderValue(value interface{}) error {
	switch viper.GetString("output") {
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(value)
	default:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(value)
	}
}

// renderList writes a flat listing. Table mode renders a one-column grid;
// json and yaml emit the raw list.
func renderList(header string, items []interface{}) error {
	output := viper.GetString("output")
	if output == OutputFormatJSON || output == OutputFormatYAML {
		return renderValue(items)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header(header)

	for _, item := range items {
		_ = table.Append(fmt.Sprintf("%v", item))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderAnalysis prints an analysis result, surfacing coverage errors before
// the figures.
func renderAnalysis(result *riskapi.AnalysisResult) error {
	if len(result.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "Coverage errors (%d holdings):\n", len(result.Errors))

		for _, entry := range result.Errors {
			fmt.Fprintf(os.Stderr, "  %v\n", entry)
		}
	}

	return renderValue(result.Results)
}

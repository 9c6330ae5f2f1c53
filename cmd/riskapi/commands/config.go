package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/statpro-io/riskapi-client/pkg/riskapi"
	"github.com/statpro-io/riskapi-client/pkg/riskclient"
)

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Inspect the effective configuration assembled from the file and flags",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigPathCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Long:  "Display the configuration the CLI would use, with the password masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			type view struct {
				Host     string `yaml:"host"`
				Customer string `yaml:"customer"`
				User     string `yaml:"user"`
				Password string `yaml:"password"`
				Scheme   string `yaml:"scheme"`
			}

			password := ""
			if config.Password != "" {
				password = Masked
			}

			scheme := config.Scheme
			if scheme == "" {
				scheme = "https"
			}

			encoder := yaml.NewEncoder(os.Stdout)

			return encoder.Encode(view{
				Host:     config.Host,
				Customer: config.Customer,
				User:     config.Username,
				Password: password,
				Scheme:   scheme,
			})
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Display the configuration file path",
		Long:  "Display the path of the configuration file the CLI reads",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString("config")
			if path == "" {
				path = riskclient.DefaultConfigPath()
			}

			fmt.Println(path)

			return nil
		},
	}
}

// writeConfigFile persists the [client] section read back by Connect and
// loadConfig.
func writeConfigFile(path string, config *riskapi.Config) error {
	file := ini.Empty()

	section := file.Section("client")
	section.Key("host").SetValue(config.Host)
	section.Key("customer").SetValue(config.Customer)
	section.Key("user").SetValue(config.Username)
	section.Key("password").SetValue(config.Password)

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return fmt.Errorf("encoding config file: %w", err)
	}

	err := os.WriteFile(path, buf.Bytes(), 0600)
	if err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}

	return nil
}

package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/statpro-io/riskapi-client/pkg/riskclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		host     string
		customer string
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to RiskAPI",
		Long:  "Verify credentials against a RiskAPI server and save them to the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			if host != "" {
				config.Host = host
			}

			if host == "" && config.Host == "" {
				config.Host = riskclient.DefaultHost
			}

			if customer != "" {
				config.Customer = customer
			}

			if username == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Printf("Username for %s: ", config.Host)
				username, _ = reader.ReadString('\n')
				username = strings.TrimSpace(username)
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			config.Username = username
			config.Password = password

			// Verify before persisting anything
			client, err := riskclient.New(cmd.Context(), config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			if _, err := client.SystemInfo(cmd.Context()); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			path := viper.GetString("config")
			if path == "" {
				path = riskclient.DefaultConfigPath()
			}

			if err := writeConfigFile(path, config); err != nil {
				return err
			}

			fmt.Printf("Logged in to %s as %s\n", config.Host, config.Username)
			fmt.Printf("Credentials saved to %s\n", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "server address, optionally host:port")
	cmd.Flags().StringVar(&customer, "customer", "", "tenant path segment")
	cmd.Flags().StringVarP(&username, "user", "u", "", "basic-auth username")
	cmd.Flags().StringVar(&password, "password", "", "basic-auth password")

	return cmd
}

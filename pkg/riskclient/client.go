// Package riskclient provides the main entry point for creating RiskAPI
// clients.
package riskclient

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/statpro-io/riskapi-client/internal/client"
	"github.com/statpro-io/riskapi-client/pkg/riskapi"
)

// Connection defaults applied when neither the caller nor the configuration
// file provides a value.
const (
	DefaultHost     = "api.risk.statpro.com"
	DefaultCustomer = "internal"

	// ConfigFileName is the per-user configuration file read by Connect,
	// relative to the home directory.
	ConfigFileName = ".riskapi.conf"

	// configSection is the INI section holding the client settings.
	configSection = "client"
)

// New creates a RiskAPI client from explicit configuration, without
// consulting the configuration file.
func New(ctx context.Context, config *riskapi.Config) (riskapi.Client, error) {
	if config == nil {
		return nil, riskapi.ErrConfigRequired
	}

	riskClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return riskClient, nil
}

// Override mutates the configuration assembled by Connect before the client
// is built.
type Override func(*riskapi.Config)

// WithHost sets the server address, optionally with a ":port" suffix.
func WithHost(host string) Override {
	return func(config *riskapi.Config) { config.Host = host }
}

// WithCustomer sets the tenant path segment.
func WithCustomer(customer string) Override {
	return func(config *riskapi.Config) { config.Customer = customer }
}

// WithCredentials sets the basic-auth credentials.
func WithCredentials(username, password string) Override {
	return func(config *riskapi.Config) {
		config.Username = username
		config.Password = password
	}
}

// WithInsecure switches the connection to plain http.
func WithInsecure() Override {
	return func(config *riskapi.Config) { config.Scheme = "http" }
}

// WithFormats selects the request and response wire formats.
func WithFormats(request, response string) Override {
	return func(config *riskapi.Config) {
		config.RequestFormat = request
		config.ResponseFormat = response
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger riskapi.Logger) Override {
	return func(config *riskapi.Config) { config.Logger = logger }
}

// Connect creates a RiskAPI client from ~/.riskapi.conf merged with the
// given overrides. Overrides win over file settings; file settings win over
// the package defaults (https against DefaultHost as DefaultCustomer).
func Connect(ctx context.Context, overrides ...Override) (riskapi.Client, error) {
	fileConfig, err := LoadConfigFile(DefaultConfigPath())
	if err != nil {
		return nil, err
	}

	config := fileConfig
	for _, override := range overrides {
		override(config)
	}

	if config.Host == "" {
		config.Host = DefaultHost
	}

	if config.Scheme == "" {
		config.Scheme = "https"
	}

	return New(ctx, config)
}

// ConnectLocal creates an unauthenticated client against a development
// server on localhost:8000 over plain http.
func ConnectLocal(ctx context.Context, overrides ...Override) (riskapi.Client, error) {
	local := append([]Override{
		WithHost("localhost:8000"),
		WithCustomer(""),
		WithCredentials("", ""),
		WithInsecure(),
	}, overrides...)

	return Connect(ctx, local...)
}

// DefaultConfigPath returns the path of the per-user configuration file, or
// an empty string when the home directory cannot be determined.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ConfigFileName)
}

// LoadConfigFile reads an INI configuration file. A missing file is not an
// error: it yields the package defaults.
func LoadConfigFile(path string) (*riskapi.Config, error) {
	config := &riskapi.Config{Customer: DefaultCustomer}

	if path == "" {
		return config, nil
	}

	if _, err := os.Stat(path); err != nil {
		return config, nil
	}

	settings, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	section := settings.Section(configSection)

	if host := strings.TrimSpace(section.Key("host").String()); host != "" {
		config.Host = host
	}

	if section.HasKey("customer") {
		config.Customer = strings.TrimSpace(section.Key("customer").String())
	}

	config.Username = strings.TrimSpace(section.Key("user").String())
	config.Password = strings.TrimSpace(section.Key("password").String())

	return config, nil
}

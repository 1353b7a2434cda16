// Package config defines the runtime configuration for the SDK: the
// developer-platform API key, the optional dApp provider URL forwarded to
// transaction-producing endpoints, the target Cronos network, and HTTP
// timeouts. It also provides validation and defaulting helpers.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrAPIKeyRequired is returned when an operation needs the platform API key
// and none was configured.
var ErrAPIKeyRequired = errors.New("API key is required")

// Config holds all SDK settings required to call the developer-platform API.
// Use Validate to fill implicit defaults and to check for required fields.
// Build it once at startup and treat it as read-only afterwards; every facade
// keeps a reference to the same instance.
type Config struct {
	// APIKey is the developer-platform API key (required).
	APIKey string `json:"api_key" yaml:"api_key"`
	// Provider is an optional dApp provider URL. Transaction-producing
	// endpoints (transfer, wrap, swap) forward it so the platform can build
	// signing links; read-only endpoints ignore it.
	Provider string `json:"provider" yaml:"provider"`
	// Network selects the target Cronos chain. Defaults to CronosEvm.
	Network Network `json:"network" yaml:"network"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug"`
	// Timeouts configures HTTP deadlines. See Timeouts.WithDefaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts"`
}

// Network describes a Cronos network (chain ID and name). ChainID selects
// which network-scoped operations are permitted; Name is informational.
type Network struct {
	ChainID string `json:"chain_id" yaml:"chain_id"`
	Name    string `json:"network_name" yaml:"network_name"`
}

// CronosEvm is a predefined Network for the Cronos EVM mainnet.
var CronosEvm = Network{
	ChainID: "25",
	Name:    "cronos-evm",
}

// CronosEvmTestnet is a predefined Network for the Cronos EVM testnet.
var CronosEvmTestnet = Network{
	ChainID: "338",
	Name:    "cronos-evm-testnet",
}

// CronosZkEvm is a predefined Network for the Cronos zkEVM mainnet.
var CronosZkEvm = Network{
	ChainID: "388",
	Name:    "cronos-zkevm",
}

// CronosZkEvmTestnet is a predefined Network for the Cronos zkEVM testnet.
var CronosZkEvmTestnet = Network{
	ChainID: "240",
	Name:    "cronos-zkevm-testnet",
}

// Timeouts controls SDK HTTP deadlines.
// Zero values will be replaced by sane defaults in WithDefaults.
type Timeouts struct {
	HTTP time.Duration // end-to-end deadline of a single API call
}

// Validate normalizes the configuration by applying the implicit default
// Network (CronosEvm) and verifies that APIKey is provided. Returns
// ErrAPIKeyRequired when the key is empty.
func (c *Config) Validate() error {

	if c.Network.ChainID == "" {
		c.Network = CronosEvm
	}

	if c.APIKey == "" {
		return ErrAPIKeyRequired
	}

	return nil
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	HTTP: 30s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.HTTP == 0 {
		tt.HTTP = 30 * time.Second
	}
	return tt
}

// LoadConfig reads a YAML configuration file and validates it. Missing
// optional fields keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("can't parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

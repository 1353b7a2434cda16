// Package config provides configuration management for the Cronos
// developer-platform SDK.
//
// This package defines the Config structure that controls all SDK behavior:
// the platform API key, the optional dApp provider URL, the target Cronos
// network, and HTTP timeouts.
//
// # Basic Configuration
//
// The minimum required configuration is an API key:
//
//	cfg := &config.Config{
//		APIKey: "YOUR_API_KEY",
//	}
//
// Validate defaults the network to Cronos EVM mainnet when none is set.
//
// # Network Selection
//
// Four predefined networks are available:
//
//	config.CronosEvm          - Cronos EVM mainnet   (ChainID: 25)
//	config.CronosEvmTestnet   - Cronos EVM testnet   (ChainID: 338)
//	config.CronosZkEvm        - Cronos zkEVM mainnet (ChainID: 388)
//	config.CronosZkEvmTestnet - Cronos zkEVM testnet (ChainID: 240)
//
// The network gates chain-scoped features: CronosId name resolution is only
// available on the Cronos EVM networks.
//
// # Provider
//
// Provider is an optional dApp URL forwarded to transaction-producing
// endpoints (transfer, wrap, swap) so the platform can build signing links:
//
//	cfg := &config.Config{
//		APIKey:   "YOUR_API_KEY",
//		Provider: "https://my-dapp.example",
//	}
//
// Read-only endpoints ignore it. Leave it empty when unused.
//
// # File Loading
//
// Configuration can also be loaded from a YAML file:
//
//	cfg, err := config.LoadConfig("config.yml")
//
// with the layout:
//
//	api_key: YOUR_API_KEY
//	provider: https://my-dapp.example
//	network:
//	  chain_id: "25"
//	  network_name: cronos-evm
//
// # Timeouts
//
// Timeouts carries the single HTTP deadline applied to every API call.
// Zero values are replaced by WithDefaults (30s). The SDK performs exactly
// one attempt per call; there is no retry layer to configure.
//
// # See Also
//
//   - client package for SDK construction from a Config
//   - cronosid package for the chain-gated name resolution
package config

// Package client exposes the high-level SDK entry point. It validates the
// configuration once, builds the shared API dispatcher, and wires every
// domain facade (wallet, token, transaction, contract, block, cronosid,
// defi, exchange, network) to it.
package client

import (
	"github.com/crypto-com/developer-platform-client-go/pkg/api"
	"github.com/crypto-com/developer-platform-client-go/pkg/block"
	"github.com/crypto-com/developer-platform-client-go/pkg/config"
	"github.com/crypto-com/developer-platform-client-go/pkg/contract"
	"github.com/crypto-com/developer-platform-client-go/pkg/cronosid"
	"github.com/crypto-com/developer-platform-client-go/pkg/defi"
	"github.com/crypto-com/developer-platform-client-go/pkg/exchange"
	"github.com/crypto-com/developer-platform-client-go/pkg/network"
	"github.com/crypto-com/developer-platform-client-go/pkg/token"
	"github.com/crypto-com/developer-platform-client-go/pkg/transaction"
	"github.com/crypto-com/developer-platform-client-go/pkg/wallet"
	"go.uber.org/zap"
)

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// Client is the SDK. Construct it once with New and share it; every facade
// reads the same immutable configuration and dispatcher, so concurrent use
// is safe.
type Client struct {
	cfg *config.Config
	api *api.Client

	wallet      *wallet.Client
	token       *token.Client
	transaction *transaction.Client
	contract    *contract.Client
	block       *block.Client
	cronosid    *cronosid.Client
	defi        *defi.Client
	exchange    *exchange.Client
	network     *network.Client
}

// New validates the configuration, applies timeout defaults, and builds the
// SDK. It returns config.ErrAPIKeyRequired when no API key is set, so a
// misconfigured process fails at startup instead of on the first call.
func New(cfg *config.Config, opts ...api.Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Timeouts = cfg.Timeouts.WithDefaults()

	if cfg.Debug {
		c := zap.NewDevelopmentConfig()
		logger, err := c.Build()
		if err == nil {
			zap.ReplaceGlobals(logger)
		}
	}

	apiClient := api.NewClient(cfg, opts...)

	return &Client{
		cfg:         cfg,
		api:         apiClient,
		wallet:      wallet.New(apiClient),
		token:       token.New(apiClient, cfg.Provider),
		transaction: transaction.New(apiClient),
		contract:    contract.New(apiClient),
		block:       block.New(apiClient),
		cronosid:    cronosid.New(apiClient, cfg.Network),
		defi:        defi.New(apiClient),
		exchange:    exchange.New(apiClient),
		network:     network.New(apiClient),
	}, nil
}

// Config returns the configuration the SDK was built with.
func (c *Client) Config() *config.Config {
	return c.cfg
}

// API returns the underlying dispatcher for callers that need an endpoint
// the facades do not cover yet.
func (c *Client) API() *api.Client {
	return c.api
}

// Wallet returns the wallet facade.
func (c *Client) Wallet() *wallet.Client {
	return c.wallet
}

// Token returns the token facade.
func (c *Client) Token() *token.Client {
	return c.token
}

// Transaction returns the transaction facade.
func (c *Client) Transaction() *transaction.Client {
	return c.transaction
}

// Contract returns the contract facade.
func (c *Client) Contract() *contract.Client {
	return c.contract
}

// Block returns the block facade.
func (c *Client) Block() *block.Client {
	return c.block
}

// CronosId returns the name-service facade, gated on the configured network.
func (c *Client) CronosId() *cronosid.Client {
	return c.cronosid
}

// Defi returns the DeFi facade.
func (c *Client) Defi() *defi.Client {
	return c.defi
}

// Exchange returns the exchange market-data facade.
func (c *Client) Exchange() *exchange.Client {
	return c.exchange
}

// Network returns the network facade.
func (c *Client) Network() *network.Client {
	return c.network
}

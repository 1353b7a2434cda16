// Package defi exposes DeFi protocol data: whitelisted tokens and farms.
// These endpoints are public market data and carry no API key.
package defi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/crypto-com/developer-platform-client-go/pkg/api"
)

// Protocol names the DeFi protocols the platform tracks.
type Protocol string

const (
	ProtocolH2Finance Protocol = "h2finance"
	ProtocolVeno      Protocol = "veno"
)

var (
	whitelistedTokensEndpoint = api.Endpoint{
		Module:    "defi",
		Operation: "whitelisted-tokens",
		Method:    http.MethodGet,
		Path:      "/defi/whitelisted-tokens",
		Auth:      api.AuthNone,
	}
	farmsEndpoint = api.Endpoint{
		Module:    "defi",
		Operation: "farms",
		Method:    http.MethodGet,
		Path:      "/defi/farms",
		Auth:      api.AuthNone,
	}
	farmBySymbolEndpoint = api.Endpoint{
		Module:    "defi",
		Operation: "farm-by-symbol",
		Method:    http.MethodGet,
		Path:      "/defi/farms",
		Auth:      api.AuthNone,
	}
)

// Client is the DeFi facade.
type Client struct {
	api *api.Client
}

// New creates the facade bound to the given dispatcher.
func New(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// WhitelistedTokens lists the tokens a protocol accepts.
func (c *Client) WhitelistedTokens(ctx context.Context, protocol Protocol) (*api.Response, error) {
	ep := whitelistedTokensEndpoint
	ep.Path += "/" + url.PathEscape(string(protocol))
	return c.api.Call(ctx, ep, nil, nil)
}

// AllFarms lists every farm of a protocol.
func (c *Client) AllFarms(ctx context.Context, protocol Protocol) (*api.Response, error) {
	ep := farmsEndpoint
	ep.Path += "/" + url.PathEscape(string(protocol))
	return c.api.Call(ctx, ep, nil, nil)
}

// FarmBySymbol fetches one farm of a protocol by its symbol, e.g. "zkCRO-vETH".
func (c *Client) FarmBySymbol(ctx context.Context, protocol Protocol, symbol string) (*api.Response, error) {
	ep := farmBySymbolEndpoint
	ep.Path += "/" + url.PathEscape(string(protocol)) + "/" + url.PathEscape(symbol)
	return c.api.Call(ctx, ep, nil, nil)
}

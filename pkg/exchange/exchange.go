// Package exchange exposes public exchange market data. No API key is sent.
package exchange

import (
	"context"
	"net/http"
	"net/url"

	"github.com/crypto-com/developer-platform-client-go/pkg/api"
)

var (
	allTickersEndpoint = api.Endpoint{
		Module:    "exchange",
		Operation: "tickers",
		Method:    http.MethodGet,
		Path:      "/exchange/tickers",
		Auth:      api.AuthNone,
	}
	tickerByInstrumentEndpoint = api.Endpoint{
		Module:    "exchange",
		Operation: "ticker-by-instrument",
		Method:    http.MethodGet,
		Path:      "/exchange/tickers",
		Auth:      api.AuthNone,
	}
)

// Client is the exchange facade.
type Client struct {
	api *api.Client
}

// New creates the facade bound to the given dispatcher.
func New(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// AllTickers fetches the latest ticker of every instrument.
func (c *Client) AllTickers(ctx context.Context) (*api.Response, error) {
	return c.api.Call(ctx, allTickersEndpoint, nil, nil)
}

// TickerByInstrument fetches the ticker of one instrument, e.g. "CRO_USD".
func (c *Client) TickerByInstrument(ctx context.Context, instrumentName string) (*api.Response, error) {
	ep := tickerByInstrumentEndpoint
	ep.Path += "/" + url.PathEscape(instrumentName)
	return c.api.Call(ctx, ep, nil, nil)
}

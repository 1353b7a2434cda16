// Package network exposes network-level queries about the configured chain.
package network

import (
	"context"
	"net/http"

	"github.com/crypto-com/developer-platform-client-go/pkg/api"
)

var (
	infoEndpoint = api.Endpoint{
		Module:    "network",
		Operation: "info",
		Method:    http.MethodGet,
		Path:      "/network/info",
		Auth:      api.AuthHeader,
	}
	healthcheckEndpoint = api.Endpoint{
		Module:    "network",
		Operation: "healthcheck",
		Method:    http.MethodGet,
		Path:      "/network/healthcheck",
		Auth:      api.AuthNone,
	}
)

// Client is the network facade.
type Client struct {
	api *api.Client
}

// New creates the facade bound to the given dispatcher.
func New(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// Info fetches chain metadata (chain ID, client version, latest checkpoint).
func (c *Client) Info(ctx context.Context) (*api.Response, error) {
	return c.api.Call(ctx, infoEndpoint, nil, nil)
}

// Healthcheck probes platform availability. It needs no API key, so it also
// works before credentials are provisioned.
func (c *Client) Healthcheck(ctx context.Context) (*api.Response, error) {
	return c.api.Call(ctx, healthcheckEndpoint, nil, nil)
}

// Package block exposes block lookups.
package block

import (
	"context"
	"net/http"
	"net/url"

	"github.com/crypto-com/developer-platform-client-go/pkg/api"
)

// DefaultTxDetail is sent when the caller does not ask for full
// transaction objects.
const DefaultTxDetail = "false"

var (
	byTagEndpoint = api.Endpoint{
		Module:    "block",
		Operation: "block-by-tag",
		Method:    http.MethodGet,
		Path:      "/block/block-tag",
		Auth:      api.AuthHeader,
	}
	currentEndpoint = api.Endpoint{
		Module:    "block",
		Operation: "current-block",
		Method:    http.MethodGet,
		Path:      "/block/current-block",
		Auth:      api.AuthHeader,
	}
)

// Client is the block facade.
type Client struct {
	api *api.Client
}

// New creates the facade bound to the given dispatcher.
func New(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// BlockByTag fetches a block by tag ("latest", "earliest", or a number).
// txDetail chooses between transaction hashes ("false", the default) and
// full transaction objects ("true"); the parameter is always sent.
func (c *Client) BlockByTag(ctx context.Context, blockTag, txDetail string) (*api.Response, error) {
	if txDetail == "" {
		txDetail = DefaultTxDetail
	}
	query := url.Values{
		"blockTag": {blockTag},
		"txDetail": {txDetail},
	}
	return c.api.Call(ctx, byTagEndpoint, query, nil)
}

// CurrentBlock fetches the chain head.
func (c *Client) CurrentBlock(ctx context.Context) (*api.Response, error) {
	return c.api.Call(ctx, currentEndpoint, nil, nil)
}

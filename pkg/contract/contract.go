// Package contract exposes smart-contract metadata lookups.
package contract

import (
	"context"
	"net/http"
	"net/url"

	"github.com/crypto-com/developer-platform-client-go/pkg/api"
)

var (
	abiEndpoint = api.Endpoint{
		Module:    "contract",
		Operation: "abi",
		Method:    http.MethodGet,
		Path:      "/contract/abi",
		Auth:      api.AuthHeader,
	}
	codeEndpoint = api.Endpoint{
		Module:    "contract",
		Operation: "code",
		Method:    http.MethodGet,
		Path:      "/contract/code",
		Auth:      api.AuthHeader,
	}
)

// Client is the contract facade.
type Client struct {
	api *api.Client
}

// New creates the facade bound to the given dispatcher.
func New(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// ContractABI fetches the verified ABI of a contract.
func (c *Client) ContractABI(ctx context.Context, contractAddress string) (*api.Response, error) {
	query := url.Values{"contractAddress": {contractAddress}}
	return c.api.Call(ctx, abiEndpoint, query, nil)
}

// ContractCode fetches the deployed bytecode of a contract.
func (c *Client) ContractCode(ctx context.Context, contractAddress string) (*api.Response, error) {
	query := url.Values{"contractAddress": {contractAddress}}
	return c.api.Call(ctx, codeEndpoint, query, nil)
}
